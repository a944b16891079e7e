package workflow

import (
	"testing"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeSelfService(t *testing.T) {
	employee := identity.Actor{EmployeeID: "emp-1", Role: identity.RoleEmployee}

	assert.NoError(t, Authorize(ActionLeaveSubmit, employee, "emp-1"))
	assert.NoError(t, Authorize(ActionMeetingSubmit, employee, "emp-1"))
	assert.NoError(t, Authorize(ActionAttendanceMark, employee, "emp-1"))

	// Submitting on behalf of someone else is never allowed, whatever
	// the role.
	admin := identity.Actor{EmployeeID: "adm-1", Role: identity.RoleAdmin}
	assert.ErrorIs(t, Authorize(ActionLeaveSubmit, admin, "emp-1"), ErrForbidden)
	assert.ErrorIs(t, Authorize(ActionAttendanceMark, admin, "emp-1"), ErrForbidden)
}

func TestAuthorizeApproverRoles(t *testing.T) {
	employee := identity.Actor{EmployeeID: "emp-1", Role: identity.RoleEmployee}
	hr := identity.Actor{EmployeeID: "hr-1", Role: identity.RoleHR}
	admin := identity.Actor{EmployeeID: "adm-1", Role: identity.RoleAdmin}

	tests := []struct {
		name    string
		action  Action
		actor   identity.Actor
		ownerID string
		wantErr error
	}{
		{"employee cannot approve leave", ActionLeaveApprove, employee, "emp-2", ErrForbidden},
		{"hr approves leave", ActionLeaveApprove, hr, "emp-2", nil},
		{"admin approves leave", ActionLeaveApprove, admin, "emp-2", nil},
		{"employee cannot reject leave", ActionLeaveReject, employee, "emp-2", ErrForbidden},
		{"hr rejects leave", ActionLeaveReject, hr, "emp-2", nil},

		{"employee cannot approve meeting", ActionMeetingApprove, employee, "emp-2", ErrForbidden},
		{"hr approves meeting", ActionMeetingApprove, hr, "emp-2", nil},
		{"admin cannot approve meeting", ActionMeetingApprove, admin, "emp-2", ErrForbidden},
		{"hr concludes meeting", ActionMeetingConclude, hr, "emp-2", nil},
		{"admin cannot conclude meeting", ActionMeetingConclude, admin, "emp-2", ErrForbidden},

		{"employee cannot view all attendance", ActionAttendanceViewAll, employee, "", ErrForbidden},
		{"hr views all attendance", ActionAttendanceViewAll, hr, "", nil},
		{"admin views all attendance", ActionAttendanceViewAll, admin, "", nil},
		{"hr views leave queue", ActionLeaveViewAll, hr, "", nil},
		{"admin views meeting queue", ActionMeetingViewAll, admin, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.action, tt.actor, tt.ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeSelfApprovalForbidden(t *testing.T) {
	hr := identity.Actor{EmployeeID: "hr-1", Role: identity.RoleHR}

	// An approver never decides their own request.
	assert.ErrorIs(t, Authorize(ActionLeaveApprove, hr, "hr-1"), ErrForbidden)
	assert.ErrorIs(t, Authorize(ActionLeaveReject, hr, "hr-1"), ErrForbidden)
	assert.ErrorIs(t, Authorize(ActionMeetingApprove, hr, "hr-1"), ErrForbidden)

	// The same actor is fine on someone else's request.
	assert.NoError(t, Authorize(ActionLeaveApprove, hr, "emp-1"))
}

func TestAuthorizeAnonymousForbidden(t *testing.T) {
	anonymous := identity.Actor{}

	assert.ErrorIs(t, Authorize(ActionLeaveSubmit, anonymous, ""), ErrForbidden)
	assert.ErrorIs(t, Authorize(ActionLeaveApprove, anonymous, "emp-1"), ErrForbidden)
	assert.ErrorIs(t, Authorize(ActionAttendanceViewAll, anonymous, ""), ErrForbidden)
}
