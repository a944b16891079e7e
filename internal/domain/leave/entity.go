package leave

import (
	"time"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeUnpaid LeaveType = "UNPAID"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Transitions declares the leave request status machine. APPROVED and
// REJECTED are terminal: no re-open, no edit.
var Transitions = workflow.NewGraph(map[Status][]Status{
	StatusPending: {StatusApproved, StatusRejected},
})

// LeaveRequest entity. ApprovedBy holds the approver's employee id and
// is set iff status is APPROVED; RejectionReason is set iff REJECTED.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string

	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
