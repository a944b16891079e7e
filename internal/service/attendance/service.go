package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/event"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
)

type Service struct {
	attendance.AttendanceRepository
	sink event.Sink
}

func NewService(attendanceRepository attendance.AttendanceRepository, sink event.Sink) *Service {
	return &Service{
		AttendanceRepository: attendanceRepository,
		sink:                 sink,
	}
}

func (s *Service) MarkPresent(ctx context.Context, actor identity.Actor) (attendance.AttendanceResponse, error) {
	if err := workflow.Authorize(workflow.ActionAttendanceMark, actor, actor.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:  actor.EmployeeID,
		Date:        day,
		Status:      attendance.StatusPresent,
		ClockInTime: &now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	s.sink.Emit(ctx, event.LifecycleEvent{
		Kind:       event.KindAttendance,
		RequestID:  created.ID,
		EmployeeID: created.EmployeeID,
		To:         string(created.Status),
		ActorID:    actor.EmployeeID,
		OccurredAt: now,
	})

	return attendance.ToResponse(created), nil
}

func (s *Service) ListByEmployee(ctx context.Context, actor identity.Actor, employeeID string, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	// Own records are always visible; anyone else's require the
	// view-all roles.
	if actor.EmployeeID != employeeID {
		if err := workflow.Authorize(workflow.ActionAttendanceViewAll, actor, ""); err != nil {
			return nil, err
		}
	} else if actor.EmployeeID == "" {
		return nil, workflow.ErrForbidden
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}

func (s *Service) ListAll(ctx context.Context, actor identity.Actor, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := workflow.Authorize(workflow.ActionAttendanceViewAll, actor, ""); err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListAllByRange(ctx, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}
