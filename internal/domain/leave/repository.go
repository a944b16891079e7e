package leave

import (
	"context"
	"time"
)

// StatusUpdate carries the fields written alongside a status change.
type StatusUpdate struct {
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
}

// LeaveRequestRepository - interface for the leave_requests store.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee returns the employee's own requests across all
	// states, most recent first by created_at.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListByStatus returns all requests in a status system-wide,
	// oldest first (the approver queue).
	ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error)

	// ListApprovedUnpaid returns approved UNPAID leave for an employee
	// overlapping [start, end].
	ListApprovedUnpaid(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)

	// TransitionStatus applies the change only if the request is still
	// in from, as one atomic conditional write. It reports false when
	// another transition already moved the request out of from; the
	// caller turns that into ErrInvalidTransition.
	TransitionStatus(ctx context.Context, id string, from, to Status, update StatusUpdate) (bool, error)
}
