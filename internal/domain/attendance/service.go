package attendance

import (
	"context"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
)

type AttendanceService interface {
	// MarkPresent records the actor as present for the current calendar
	// day. Marking twice on the same day fails with ErrDuplicateMark.
	MarkPresent(ctx context.Context, actor identity.Actor) (AttendanceResponse, error)

	// ListByEmployee returns the records for one employee within the
	// range. EMPLOYEE callers may only ask for their own id.
	ListByEmployee(ctx context.Context, actor identity.Actor, employeeID string, filter RangeFilter) ([]AttendanceResponse, error)

	// ListAll returns records for every employee within the range.
	// HR and ADMIN only.
	ListAll(ctx context.Context, actor identity.Actor, filter RangeFilter) ([]AttendanceResponse, error)
}
