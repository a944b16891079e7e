package postgresql

import (
	"context"
	"time"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/leave"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, reason,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate, request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
			   status, approved_by, approved_at, rejection_reason,
			   created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.LeaveType,
		&request.StartDate, &request.EndDate, &request.Reason,
		&request.Status, &request.ApprovedBy, &request.ApprovedAt, &request.RejectionReason,
		&request.CreatedAt, &request.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
			   status, approved_by, approved_at, rejection_reason,
			   created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
			   status, approved_by, approved_at, rejection_reason,
			   created_at, updated_at
		FROM leave_requests
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListApprovedUnpaid(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
			   status, approved_by, approved_at, rejection_reason,
			   created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND leave_type = $2
		  AND status = $3
		  AND start_date <= $4
		  AND end_date >= $5
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, leave.LeaveTypeUnpaid, leave.StatusApproved, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// TransitionStatus is the atomic check-then-set: the status predicate
// rides in the WHERE clause, so of two concurrent transitions exactly
// one observes RowsAffected() == 1.
func (r *leaveRequestRepositoryImpl) TransitionStatus(ctx context.Context, id string, from, to leave.Status, update leave.StatusUpdate) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by = $2,
			approved_at = $3,
			rejection_reason = $4,
			updated_at = NOW()
		WHERE id = $5 AND status = $6
	`

	commandTag, err := q.Exec(ctx, query,
		to, update.ApprovedBy, update.ApprovedAt, update.RejectionReason,
		id, from,
	)
	if err != nil {
		return false, err
	}

	return commandTag.RowsAffected() == 1, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.LeaveType,
			&request.StartDate, &request.EndDate, &request.Reason,
			&request.Status, &request.ApprovedBy, &request.ApprovedAt, &request.RejectionReason,
			&request.CreatedAt, &request.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
