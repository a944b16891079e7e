package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/event"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/meeting"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
)

type Service struct {
	meeting.MeetingRequestRepository
	sink event.Sink
}

func NewService(meetingRequestRepository meeting.MeetingRequestRepository, sink event.Sink) *Service {
	return &Service{
		MeetingRequestRepository: meetingRequestRepository,
		sink:                     sink,
	}
}

func (s *Service) Submit(ctx context.Context, actor identity.Actor, req meeting.CreateMeetingRequestRequest) (meeting.MeetingRequestResponse, error) {
	if err := workflow.Authorize(workflow.ActionMeetingSubmit, actor, req.EmployeeID); err != nil {
		return meeting.MeetingRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return meeting.MeetingRequestResponse{}, err
	}

	created, err := s.MeetingRequestRepository.Create(ctx, meeting.MeetingRequest{
		EmployeeID:        req.EmployeeID,
		Subject:           req.Subject,
		Description:       req.Description,
		PreferredDateTime: req.Preferred,
		Status:            meeting.StatusPending,
	})
	if err != nil {
		return meeting.MeetingRequestResponse{}, fmt.Errorf("failed to create meeting request: %w", err)
	}

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindMeetingRequest,
		RequestID:  created.ID,
		EmployeeID: created.EmployeeID,
		To:         string(created.Status),
		ActorID:    actor.EmployeeID,
		OccurredAt: time.Now(),
	})

	return meeting.ToResponse(created), nil
}

func (s *Service) Approve(ctx context.Context, actor identity.Actor, req meeting.ApproveMeetingRequest) (meeting.MeetingRequestResponse, error) {
	request, err := s.MeetingRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return meeting.MeetingRequestResponse{}, fmt.Errorf("failed to get meeting request: %w", err)
	}

	if err := workflow.Authorize(workflow.ActionMeetingApprove, actor, request.EmployeeID); err != nil {
		return meeting.MeetingRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return meeting.MeetingRequestResponse{}, err
	}

	if !meeting.Transitions.CanTransition(request.Status, meeting.StatusApproved) {
		return meeting.MeetingRequestResponse{}, workflow.ErrInvalidTransition
	}

	approvedAt := time.Now()
	ok, err := s.MeetingRequestRepository.TransitionStatus(ctx, request.ID, request.Status, meeting.StatusApproved, meeting.StatusUpdate{
		ScheduledDateTime: &req.Scheduled,
		ApprovedBy:        &actor.EmployeeID,
		ApprovedAt:        &approvedAt,
	})
	if err != nil {
		return meeting.MeetingRequestResponse{}, fmt.Errorf("failed to update meeting request: %w", err)
	}
	if !ok {
		return meeting.MeetingRequestResponse{}, workflow.ErrInvalidTransition
	}

	request.Status = meeting.StatusApproved
	request.ScheduledDateTime = &req.Scheduled
	request.ApprovedBy = &actor.EmployeeID
	request.ApprovedAt = &approvedAt

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindMeetingRequest,
		RequestID:  request.ID,
		EmployeeID: request.EmployeeID,
		From:       string(meeting.StatusPending),
		To:         string(meeting.StatusApproved),
		ActorID:    actor.EmployeeID,
		OccurredAt: approvedAt,
	})

	return meeting.ToResponse(request), nil
}

func (s *Service) Reject(ctx context.Context, actor identity.Actor, req meeting.RejectMeetingRequest) (meeting.MeetingRequestResponse, error) {
	request, err := s.MeetingRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return meeting.MeetingRequestResponse{}, fmt.Errorf("failed to get meeting request: %w", err)
	}

	if err := workflow.Authorize(workflow.ActionMeetingReject, actor, request.EmployeeID); err != nil {
		return meeting.MeetingRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return meeting.MeetingRequestResponse{}, err
	}

	if !meeting.Transitions.CanTransition(request.Status, meeting.StatusRejected) {
		return meeting.MeetingRequestResponse{}, workflow.ErrInvalidTransition
	}

	rejectedAt := time.Now()
	ok, err := s.MeetingRequestRepository.TransitionStatus(ctx, request.ID, request.Status, meeting.StatusRejected, meeting.StatusUpdate{
		RejectionReason: &req.Reason,
	})
	if err != nil {
		return meeting.MeetingRequestResponse{}, fmt.Errorf("failed to update meeting request: %w", err)
	}
	if !ok {
		return meeting.MeetingRequestResponse{}, workflow.ErrInvalidTransition
	}

	request.Status = meeting.StatusRejected
	request.RejectionReason = &req.Reason

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindMeetingRequest,
		RequestID:  request.ID,
		EmployeeID: request.EmployeeID,
		From:       string(meeting.StatusPending),
		To:         string(meeting.StatusRejected),
		ActorID:    actor.EmployeeID,
		OccurredAt: rejectedAt,
	})

	return meeting.ToResponse(request), nil
}

func (s *Service) Conclude(ctx context.Context, actor identity.Actor, requestID string) (meeting.MeetingRequestResponse, error) {
	request, err := s.MeetingRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return meeting.MeetingRequestResponse{}, fmt.Errorf("failed to get meeting request: %w", err)
	}

	if err := workflow.Authorize(workflow.ActionMeetingConclude, actor, request.EmployeeID); err != nil {
		return meeting.MeetingRequestResponse{}, err
	}

	if !meeting.Transitions.CanTransition(request.Status, meeting.StatusConcluded) {
		return meeting.MeetingRequestResponse{}, workflow.ErrInvalidTransition
	}

	concludedAt := time.Now()
	ok, err := s.MeetingRequestRepository.TransitionStatus(ctx, request.ID, request.Status, meeting.StatusConcluded, meeting.StatusUpdate{})
	if err != nil {
		return meeting.MeetingRequestResponse{}, fmt.Errorf("failed to update meeting request: %w", err)
	}
	if !ok {
		return meeting.MeetingRequestResponse{}, workflow.ErrInvalidTransition
	}

	request.Status = meeting.StatusConcluded

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindMeetingRequest,
		RequestID:  request.ID,
		EmployeeID: request.EmployeeID,
		From:       string(meeting.StatusApproved),
		To:         string(meeting.StatusConcluded),
		ActorID:    actor.EmployeeID,
		OccurredAt: concludedAt,
	})

	return meeting.ToResponse(request), nil
}

func (s *Service) ListMine(ctx context.Context, actor identity.Actor) ([]meeting.MeetingRequestResponse, error) {
	if actor.EmployeeID == "" {
		return nil, workflow.ErrForbidden
	}

	requests, err := s.MeetingRequestRepository.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting requests: %w", err)
	}

	return toResponses(requests), nil
}

func (s *Service) ListPending(ctx context.Context, actor identity.Actor) ([]meeting.MeetingRequestResponse, error) {
	if err := workflow.Authorize(workflow.ActionMeetingViewAll, actor, ""); err != nil {
		return nil, err
	}

	requests, err := s.MeetingRequestRepository.ListByStatus(ctx, meeting.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending meeting requests: %w", err)
	}

	return toResponses(requests), nil
}

func (s *Service) ListScheduled(ctx context.Context, actor identity.Actor) ([]meeting.MeetingRequestResponse, error) {
	if err := workflow.Authorize(workflow.ActionMeetingViewAll, actor, ""); err != nil {
		return nil, err
	}

	requests, err := s.MeetingRequestRepository.ListByStatus(ctx, meeting.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled meeting requests: %w", err)
	}

	return toResponses(requests), nil
}

func toResponses(requests []meeting.MeetingRequest) []meeting.MeetingRequestResponse {
	responses := make([]meeting.MeetingRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, meeting.ToResponse(request))
	}
	return responses
}
