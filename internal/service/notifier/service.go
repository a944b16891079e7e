// Package notifier is the built-in event sink: every lifecycle event
// is written to the structured audit log and pushed to the owning
// employee's notification stream. Delivery is best effort; a dropped
// push never affects the transition that produced the event.
package notifier

import (
	"context"
	"log/slog"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/event"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/sse"
)

type Service struct {
	logger *slog.Logger
	hub    *sse.Hub
}

func NewService(logger *slog.Logger, hub *sse.Hub) *Service {
	return &Service{
		logger: logger,
		hub:    hub,
	}
}

func (s *Service) Emit(ctx context.Context, evt event.LifecycleEvent) {
	s.logger.InfoContext(ctx, "request lifecycle event",
		slog.String("kind", string(evt.Kind)),
		slog.String("request_id", evt.RequestID),
		slog.String("employee_id", evt.EmployeeID),
		slog.String("from_state", evt.From),
		slog.String("to_state", evt.To),
		slog.String("actor_id", evt.ActorID),
		slog.Time("occurred_at", evt.OccurredAt),
	)

	s.hub.Publish(evt.EmployeeID, sse.Event{
		EmployeeID: evt.EmployeeID,
		Event:      string(evt.Kind),
		Data:       evt,
	})
}
