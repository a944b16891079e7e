package attendance

import "errors"

var (
	ErrDuplicateMark      = errors.New("attendance already marked for this date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
