package response

import (
	"errors"
	"net/http"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/leave"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/meeting"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Workflow guard errors
	case errors.Is(err, workflow.ErrForbidden):
		Forbidden(w, "Caller is not allowed to perform this action")
	case errors.Is(err, workflow.ErrInvalidTransition):
		Conflict(w, "Request state does not allow this transition")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateMark):
		Conflict(w, "Attendance already marked for this date")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Meeting domain errors
	case errors.Is(err, meeting.ErrMeetingRequestNotFound):
		NotFound(w, "Meeting request not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
