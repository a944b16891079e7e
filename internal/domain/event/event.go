package event

import (
	"context"
	"time"
)

// Kind names the request kind a lifecycle event belongs to.
type Kind string

const (
	KindAttendance     Kind = "attendance"
	KindLeaveRequest   Kind = "leave_request"
	KindMeetingRequest Kind = "hr_meeting_request"
)

// LifecycleEvent describes one successful state mutation. From is empty
// for creations. EmployeeID is the request owner, used by the notifier
// to route the event; ActorID is who performed the transition.
type LifecycleEvent struct {
	Kind       Kind      `json:"kind"`
	RequestID  string    `json:"request_id"`
	EmployeeID string    `json:"employee_id"`
	From       string    `json:"from_state,omitempty"`
	To         string    `json:"to_state"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sink receives lifecycle events for notification and audit display.
// Emission is advisory: it happens after the store committed the
// transition and a sink failure never rolls the transition back, which
// is why Emit returns nothing. Sinks log their own failures.
type Sink interface {
	Emit(ctx context.Context, evt LifecycleEvent)
}
