package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/event"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/leave"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
)

type Service struct {
	leave.LeaveRequestRepository
	sink event.Sink
}

func NewService(leaveRequestRepository leave.LeaveRequestRepository, sink event.Sink) *Service {
	return &Service{
		LeaveRequestRepository: leaveRequestRepository,
		sink:                   sink,
	}
}

func (s *Service) Submit(ctx context.Context, actor identity.Actor, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := workflow.Authorize(workflow.ActionLeaveSubmit, actor, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  req.Start,
		EndDate:    req.End,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindLeaveRequest,
		RequestID:  created.ID,
		EmployeeID: created.EmployeeID,
		To:         string(created.Status),
		ActorID:    actor.EmployeeID,
		OccurredAt: time.Now(),
	})

	return leave.ToResponse(created), nil
}

func (s *Service) Approve(ctx context.Context, actor identity.Actor, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if err := workflow.Authorize(workflow.ActionLeaveApprove, actor, request.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !leave.Transitions.CanTransition(request.Status, leave.StatusApproved) {
		return leave.LeaveRequestResponse{}, workflow.ErrInvalidTransition
	}

	approvedAt := time.Now()
	ok, err := s.LeaveRequestRepository.TransitionStatus(ctx, request.ID, request.Status, leave.StatusApproved, leave.StatusUpdate{
		ApprovedBy: &actor.EmployeeID,
		ApprovedAt: &approvedAt,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	if !ok {
		// Another transition won the race; the request is no longer
		// PENDING.
		return leave.LeaveRequestResponse{}, workflow.ErrInvalidTransition
	}

	request.Status = leave.StatusApproved
	request.ApprovedBy = &actor.EmployeeID
	request.ApprovedAt = &approvedAt

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindLeaveRequest,
		RequestID:  request.ID,
		EmployeeID: request.EmployeeID,
		From:       string(leave.StatusPending),
		To:         string(leave.StatusApproved),
		ActorID:    actor.EmployeeID,
		OccurredAt: approvedAt,
	})

	return leave.ToResponse(request), nil
}

func (s *Service) Reject(ctx context.Context, actor identity.Actor, req leave.RejectRequestRequest) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if err := workflow.Authorize(workflow.ActionLeaveReject, actor, request.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !leave.Transitions.CanTransition(request.Status, leave.StatusRejected) {
		return leave.LeaveRequestResponse{}, workflow.ErrInvalidTransition
	}

	rejectedAt := time.Now()
	ok, err := s.LeaveRequestRepository.TransitionStatus(ctx, request.ID, request.Status, leave.StatusRejected, leave.StatusUpdate{
		RejectionReason: &req.Reason,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	if !ok {
		return leave.LeaveRequestResponse{}, workflow.ErrInvalidTransition
	}

	request.Status = leave.StatusRejected
	request.RejectionReason = &req.Reason

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindLeaveRequest,
		RequestID:  request.ID,
		EmployeeID: request.EmployeeID,
		From:       string(leave.StatusPending),
		To:         string(leave.StatusRejected),
		ActorID:    actor.EmployeeID,
		OccurredAt: rejectedAt,
	})

	return leave.ToResponse(request), nil
}

func (s *Service) ListMine(ctx context.Context, actor identity.Actor) ([]leave.LeaveRequestResponse, error) {
	if actor.EmployeeID == "" {
		return nil, workflow.ErrForbidden
	}

	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(requests), nil
}

func (s *Service) ListPending(ctx context.Context, actor identity.Actor) ([]leave.LeaveRequestResponse, error) {
	if err := workflow.Authorize(workflow.ActionLeaveViewAll, actor, ""); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	return toResponses(requests), nil
}

func (s *Service) ListApprovedUnpaid(ctx context.Context, actor identity.Actor, filter leave.UnpaidLeaveFilter) ([]leave.LeaveRequestResponse, error) {
	if err := workflow.Authorize(workflow.ActionLeaveViewAll, actor, ""); err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListApprovedUnpaid(ctx, filter.EmployeeID, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid leave requests: %w", err)
	}

	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses
}
