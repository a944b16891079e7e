package attendance

import (
	"context"
	"time"
)

// AttendanceRepository persists presence marks. Create must enforce the
// one-record-per-(employee, date) invariant atomically and return
// ErrDuplicateMark when a record for the day already exists.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	ListAllByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}
