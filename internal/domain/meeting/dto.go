package meeting

import (
	"time"

	"github.com/hrpayroll/attendance-backend-go/internal/pkg/validator"
)

type CreateMeetingRequestRequest struct {
	EmployeeID        string `json:"-"` // set from the verified token, never from the body
	Subject           string `json:"subject"`
	Description       string `json:"description"`
	PreferredDateTime string `json:"preferred_datetime"` // RFC 3339

	Preferred time.Time `json:"-"`
}

func (r *CreateMeetingRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}

	if preferred, valid := validator.IsValidDateTime(r.PreferredDateTime); valid {
		r.Preferred = preferred
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "preferred_datetime",
			Message: "preferred_datetime must be an RFC 3339 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApproveMeetingRequest confirms the slot. The scheduled time may
// differ from the employee's preference; HR has the final word.
type ApproveMeetingRequest struct {
	ID                string `json:"-"`
	ScheduledDateTime string `json:"scheduled_datetime"` // RFC 3339

	Scheduled time.Time `json:"-"`
}

func (r *ApproveMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if scheduled, valid := validator.IsValidDateTime(r.ScheduledDateTime); valid {
		r.Scheduled = scheduled
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_datetime",
			Message: "scheduled_datetime must be an RFC 3339 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectMeetingRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MeetingRequestResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	Subject           string  `json:"subject"`
	Description       string  `json:"description,omitempty"`
	PreferredDateTime string  `json:"preferred_datetime"`
	Status            string  `json:"status"`
	ScheduledDateTime *string `json:"scheduled_datetime,omitempty"`
	ApprovedBy        *string `json:"approved_by,omitempty"`
	ApprovedAt        *string `json:"approved_at,omitempty"`
	RejectionReason   *string `json:"rejection_reason,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

func ToResponse(req MeetingRequest) MeetingRequestResponse {
	resp := MeetingRequestResponse{
		ID:                req.ID,
		EmployeeID:        req.EmployeeID,
		Subject:           req.Subject,
		Description:       req.Description,
		PreferredDateTime: req.PreferredDateTime.Format(time.RFC3339),
		Status:            string(req.Status),
		ApprovedBy:        req.ApprovedBy,
		RejectionReason:   req.RejectionReason,
		CreatedAt:         req.CreatedAt.Format(time.RFC3339),
	}
	if req.ScheduledDateTime != nil {
		scheduled := req.ScheduledDateTime.Format(time.RFC3339)
		resp.ScheduledDateTime = &scheduled
	}
	if req.ApprovedAt != nil {
		approvedAt := req.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}
