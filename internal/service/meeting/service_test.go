package meeting

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/event"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/meeting"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/validator"
)

type fakeMeetingRepo struct {
	mu       sync.Mutex
	requests map[string]meeting.MeetingRequest
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{requests: make(map[string]meeting.MeetingRequest)}
}

func (f *fakeMeetingRepo) Create(_ context.Context, request meeting.MeetingRequest) (meeting.MeetingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request.ID = uuid.NewString()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeMeetingRepo) GetByID(_ context.Context, id string) (meeting.MeetingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return meeting.MeetingRequest{}, meeting.ErrMeetingRequestNotFound
	}
	return request, nil
}

func (f *fakeMeetingRepo) ListByEmployee(_ context.Context, employeeID string) ([]meeting.MeetingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []meeting.MeetingRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) ListByStatus(_ context.Context, status meeting.Status) ([]meeting.MeetingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []meeting.MeetingRequest
	for _, request := range f.requests {
		if request.Status == status {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) TransitionStatus(_ context.Context, id string, from, to meeting.Status, update meeting.StatusUpdate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok || request.Status != from {
		return false, nil
	}
	request.Status = to
	if update.ScheduledDateTime != nil {
		request.ScheduledDateTime = update.ScheduledDateTime
	}
	if update.ApprovedBy != nil {
		request.ApprovedBy = update.ApprovedBy
	}
	if update.ApprovedAt != nil {
		request.ApprovedAt = update.ApprovedAt
	}
	request.RejectionReason = update.RejectionReason
	request.UpdatedAt = time.Now()
	f.requests[id] = request
	return true, nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []event.LifecycleEvent
}

func (f *fakeSink) Emit(_ context.Context, evt event.LifecycleEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
}

func (f *fakeSink) all() []event.LifecycleEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]event.LifecycleEvent(nil), f.events...)
}

var (
	employeeActor = identity.Actor{EmployeeID: "emp-1", Role: identity.RoleEmployee}
	hrActor       = identity.Actor{EmployeeID: "hr-1", Role: identity.RoleHR}
	adminActor    = identity.Actor{EmployeeID: "adm-1", Role: identity.RoleAdmin}
)

func submitMeeting(t *testing.T, svc *Service, actor identity.Actor) meeting.MeetingRequestResponse {
	t.Helper()
	created, err := svc.Submit(context.Background(), actor, meeting.CreateMeetingRequestRequest{
		EmployeeID:        actor.EmployeeID,
		Subject:           "contract question",
		Description:       "clarify the probation clause",
		PreferredDateTime: "2024-03-08T10:00:00Z",
	})
	require.NoError(t, err)
	return created
}

func TestSubmitCreatesPendingMeeting(t *testing.T) {
	sink := &fakeSink{}
	svc := NewService(newFakeMeetingRepo(), sink)

	created := submitMeeting(t, svc, employeeActor)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(meeting.StatusPending), created.Status)
	assert.Nil(t, created.ScheduledDateTime)

	events := sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, event.KindMeetingRequest, events[0].Kind)
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), &fakeSink{})

	_, err := svc.Submit(context.Background(), employeeActor, meeting.CreateMeetingRequestRequest{
		EmployeeID:        "emp-1",
		PreferredDateTime: "2024-03-08T10:00:00Z",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "subject")

	_, err = svc.Submit(context.Background(), employeeActor, meeting.CreateMeetingRequestRequest{
		EmployeeID:        "emp-1",
		Subject:           "contract question",
		PreferredDateTime: "tomorrow at ten",
	})
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "preferred_datetime")
}

// The full lifecycle: employee submits, HR approves with a confirmed
// slot, HR concludes after the meeting happened.
func TestSubmitApproveConcludeLifecycle(t *testing.T) {
	repo := newFakeMeetingRepo()
	sink := &fakeSink{}
	svc := NewService(repo, sink)

	created := submitMeeting(t, svc, employeeActor)

	approved, err := svc.Approve(context.Background(), hrActor, meeting.ApproveMeetingRequest{
		ID:                created.ID,
		ScheduledDateTime: "2024-03-09T14:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, string(meeting.StatusApproved), approved.Status)
	require.NotNil(t, approved.ScheduledDateTime)
	assert.Equal(t, "2024-03-09T14:00:00Z", *approved.ScheduledDateTime)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "hr-1", *approved.ApprovedBy)

	concluded, err := svc.Conclude(context.Background(), hrActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(meeting.StatusConcluded), concluded.Status)
	// The schedule survives conclusion.
	require.NotNil(t, concluded.ScheduledDateTime)

	events := sink.all()
	require.Len(t, events, 3)
	assert.Equal(t, string(meeting.StatusApproved), events[2].From)
	assert.Equal(t, string(meeting.StatusConcluded), events[2].To)

	// Concluded is terminal.
	_, err = svc.Conclude(context.Background(), hrActor, created.ID)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestMeetingApprovalIsHROnly(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), &fakeSink{})

	created := submitMeeting(t, svc, employeeActor)

	approve := meeting.ApproveMeetingRequest{ID: created.ID, ScheduledDateTime: "2024-03-09T14:00:00Z"}

	_, err := svc.Approve(context.Background(), employeeActor, approve)
	assert.ErrorIs(t, err, workflow.ErrForbidden)

	// ADMIN handles leave, not meetings.
	_, err = svc.Approve(context.Background(), adminActor, approve)
	assert.ErrorIs(t, err, workflow.ErrForbidden)

	_, err = svc.Conclude(context.Background(), adminActor, created.ID)
	assert.ErrorIs(t, err, workflow.ErrForbidden)
}

func TestApproveRequiresSchedule(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), &fakeSink{})

	created := submitMeeting(t, svc, employeeActor)

	_, err := svc.Approve(context.Background(), hrActor, meeting.ApproveMeetingRequest{ID: created.ID})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "scheduled_datetime")
}

func TestConcludeRequiresApprovedState(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), &fakeSink{})

	created := submitMeeting(t, svc, employeeActor)

	// PENDING cannot jump straight to CONCLUDED.
	_, err := svc.Conclude(context.Background(), hrActor, created.ID)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)

	// Rejected meetings stay rejected.
	_, err = svc.Reject(context.Background(), hrActor, meeting.RejectMeetingRequest{ID: created.ID, Reason: "handled by email"})
	require.NoError(t, err)
	_, err = svc.Conclude(context.Background(), hrActor, created.ID)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestConcurrentApproveRejectOneWinner(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := NewService(repo, &fakeSink{})

	created := submitMeeting(t, svc, employeeActor)

	hr2 := identity.Actor{EmployeeID: "hr-2", Role: identity.RoleHR}

	var wg sync.WaitGroup
	var approveErr, rejectErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, approveErr = svc.Approve(context.Background(), hrActor, meeting.ApproveMeetingRequest{
			ID:                created.ID,
			ScheduledDateTime: "2024-03-09T14:00:00Z",
		})
	}()
	go func() {
		defer wg.Done()
		_, rejectErr = svc.Reject(context.Background(), hr2, meeting.RejectMeetingRequest{ID: created.ID, Reason: "no slot"})
	}()
	wg.Wait()

	winners := 0
	if approveErr == nil {
		winners++
	} else {
		assert.ErrorIs(t, approveErr, workflow.ErrInvalidTransition)
	}
	if rejectErr == nil {
		winners++
	} else {
		assert.ErrorIs(t, rejectErr, workflow.ErrInvalidTransition)
	}
	assert.Equal(t, 1, winners)
}

func TestQueueListings(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := NewService(repo, &fakeSink{})

	created := submitMeeting(t, svc, employeeActor)
	submitMeeting(t, svc, identity.Actor{EmployeeID: "emp-2", Role: identity.RoleEmployee})

	_, err := svc.ListPending(context.Background(), employeeActor)
	assert.ErrorIs(t, err, workflow.ErrForbidden)

	pending, err := svc.ListPending(context.Background(), hrActor)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = svc.Approve(context.Background(), hrActor, meeting.ApproveMeetingRequest{
		ID:                created.ID,
		ScheduledDateTime: "2024-03-09T14:00:00Z",
	})
	require.NoError(t, err)

	scheduled, err := svc.ListScheduled(context.Background(), adminActor)
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, created.ID, scheduled[0].ID)

	mine, err := svc.ListMine(context.Background(), employeeActor)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
