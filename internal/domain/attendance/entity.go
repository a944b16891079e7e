package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLeave   Status = "LEAVE"
)

// Attendance is one presence mark for one employee on one calendar day.
// At most one record exists per (employee_id, date); records are
// immutable once created.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time // calendar day, time part zeroed
	Status      Status
	ClockInTime *time.Time
	CreatedAt   time.Time
}
