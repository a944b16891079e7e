package meeting

import (
	"context"
	"time"
)

// StatusUpdate carries the fields written alongside a status change.
type StatusUpdate struct {
	ScheduledDateTime *time.Time
	ApprovedBy        *string
	ApprovedAt        *time.Time
	RejectionReason   *string
}

// MeetingRequestRepository - interface for the hr_meeting_requests store.
type MeetingRequestRepository interface {
	Create(ctx context.Context, request MeetingRequest) (MeetingRequest, error)
	GetByID(ctx context.Context, id string) (MeetingRequest, error)

	// ListByEmployee returns the employee's own requests across all
	// states, most recent first by created_at.
	ListByEmployee(ctx context.Context, employeeID string) ([]MeetingRequest, error)

	// ListByStatus returns all requests in a status system-wide,
	// oldest first (the HR queue).
	ListByStatus(ctx context.Context, status Status) ([]MeetingRequest, error)

	// TransitionStatus applies the change only if the request is still
	// in from, as one atomic conditional write. It reports false when
	// another transition already moved the request out of from; the
	// caller turns that into ErrInvalidTransition.
	TransitionStatus(ctx context.Context, id string, from, to Status, update StatusUpdate) (bool, error)
}
