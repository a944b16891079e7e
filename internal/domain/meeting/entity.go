package meeting

import (
	"time"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusConcluded Status = "CONCLUDED"
)

// Transitions declares the HR meeting request status machine. An
// approved meeting can still be concluded; REJECTED and CONCLUDED are
// terminal.
var Transitions = workflow.NewGraph(map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusConcluded},
})

// MeetingRequest entity. ScheduledDateTime is the HR-confirmed slot
// and is set iff the request has been approved; until then only the
// employee's PreferredDateTime exists.
type MeetingRequest struct {
	ID                string
	EmployeeID        string
	Subject           string
	Description       string
	PreferredDateTime time.Time

	Status            Status
	ScheduledDateTime *time.Time
	ApprovedBy        *string
	ApprovedAt        *time.Time
	RejectionReason   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
