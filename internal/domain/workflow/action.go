package workflow

import (
	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
)

// Action identifies an engine operation for authorization purposes.
type Action string

const (
	ActionAttendanceMark    Action = "attendance.mark"
	ActionAttendanceViewAll Action = "attendance.view_all"

	ActionLeaveSubmit  Action = "leave.submit"
	ActionLeaveApprove Action = "leave.approve"
	ActionLeaveReject  Action = "leave.reject"
	ActionLeaveViewAll Action = "leave.view_all"

	ActionMeetingSubmit   Action = "meeting.submit"
	ActionMeetingApprove  Action = "meeting.approve"
	ActionMeetingReject   Action = "meeting.reject"
	ActionMeetingConclude Action = "meeting.conclude"
	ActionMeetingViewAll  Action = "meeting.view_all"
)

// selfService marks actions an employee performs on their own record.
// They carry an ownership constraint instead of a role constraint.
var selfService = map[Action]bool{
	ActionAttendanceMark: true,
	ActionLeaveSubmit:    true,
	ActionMeetingSubmit:  true,
}

// allowedRoles is the single home of the role rules. Handlers and
// services never re-check roles on their own.
var allowedRoles = map[Action][]identity.Role{
	ActionAttendanceViewAll: {identity.RoleHR, identity.RoleAdmin},

	ActionLeaveApprove: {identity.RoleHR, identity.RoleAdmin},
	ActionLeaveReject:  {identity.RoleHR, identity.RoleAdmin},
	ActionLeaveViewAll: {identity.RoleHR, identity.RoleAdmin},

	ActionMeetingApprove:  {identity.RoleHR},
	ActionMeetingReject:   {identity.RoleHR},
	ActionMeetingConclude: {identity.RoleHR},
	ActionMeetingViewAll:  {identity.RoleHR, identity.RoleAdmin},
}

func roleAllowed(action Action, role identity.Role) bool {
	for _, allowed := range allowedRoles[action] {
		if allowed == role {
			return true
		}
	}
	return false
}
