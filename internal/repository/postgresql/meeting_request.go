package postgresql

import (
	"context"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/meeting"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type meetingRequestRepositoryImpl struct {
	db *database.DB
}

func NewMeetingRequestRepository(db *database.DB) meeting.MeetingRequestRepository {
	return &meetingRequestRepositoryImpl{db: db}
}

func (r *meetingRequestRepositoryImpl) Create(ctx context.Context, request meeting.MeetingRequest) (meeting.MeetingRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hr_meeting_requests (
			id, employee_id, subject, description, preferred_datetime,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Subject, request.Description, request.PreferredDateTime,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return meeting.MeetingRequest{}, err
	}

	return request, nil
}

func (r *meetingRequestRepositoryImpl) GetByID(ctx context.Context, id string) (meeting.MeetingRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, subject, description, preferred_datetime,
			   status, scheduled_datetime, approved_by, approved_at, rejection_reason,
			   created_at, updated_at
		FROM hr_meeting_requests
		WHERE id = $1
	`

	var request meeting.MeetingRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.Subject, &request.Description, &request.PreferredDateTime,
		&request.Status, &request.ScheduledDateTime, &request.ApprovedBy, &request.ApprovedAt, &request.RejectionReason,
		&request.CreatedAt, &request.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return meeting.MeetingRequest{}, meeting.ErrMeetingRequestNotFound
		}
		return meeting.MeetingRequest{}, err
	}

	return request, nil
}

func (r *meetingRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]meeting.MeetingRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, subject, description, preferred_datetime,
			   status, scheduled_datetime, approved_by, approved_at, rejection_reason,
			   created_at, updated_at
		FROM hr_meeting_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMeetingRequests(rows)
}

func (r *meetingRequestRepositoryImpl) ListByStatus(ctx context.Context, status meeting.Status) ([]meeting.MeetingRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, subject, description, preferred_datetime,
			   status, scheduled_datetime, approved_by, approved_at, rejection_reason,
			   created_at, updated_at
		FROM hr_meeting_requests
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMeetingRequests(rows)
}

// TransitionStatus is the atomic check-then-set: the status predicate
// rides in the WHERE clause, so of two concurrent transitions exactly
// one observes RowsAffected() == 1.
func (r *meetingRequestRepositoryImpl) TransitionStatus(ctx context.Context, id string, from, to meeting.Status, update meeting.StatusUpdate) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE hr_meeting_requests
		SET status = $1,
			scheduled_datetime = COALESCE($2, scheduled_datetime),
			approved_by = COALESCE($3, approved_by),
			approved_at = COALESCE($4, approved_at),
			rejection_reason = $5,
			updated_at = NOW()
		WHERE id = $6 AND status = $7
	`

	commandTag, err := q.Exec(ctx, query,
		to, update.ScheduledDateTime, update.ApprovedBy, update.ApprovedAt, update.RejectionReason,
		id, from,
	)
	if err != nil {
		return false, err
	}

	return commandTag.RowsAffected() == 1, nil
}

func scanMeetingRequests(rows pgx.Rows) ([]meeting.MeetingRequest, error) {
	var requests []meeting.MeetingRequest
	for rows.Next() {
		var request meeting.MeetingRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.Subject, &request.Description, &request.PreferredDateTime,
			&request.Status, &request.ScheduledDateTime, &request.ApprovedBy, &request.ApprovedAt, &request.RejectionReason,
			&request.CreatedAt, &request.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
