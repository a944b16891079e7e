package meeting

import (
	"context"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
)

type MeetingService interface {
	Submit(ctx context.Context, actor identity.Actor, req CreateMeetingRequestRequest) (MeetingRequestResponse, error)
	Approve(ctx context.Context, actor identity.Actor, req ApproveMeetingRequest) (MeetingRequestResponse, error)
	Reject(ctx context.Context, actor identity.Actor, req RejectMeetingRequest) (MeetingRequestResponse, error)
	Conclude(ctx context.Context, actor identity.Actor, requestID string) (MeetingRequestResponse, error)

	ListMine(ctx context.Context, actor identity.Actor) ([]MeetingRequestResponse, error)
	ListPending(ctx context.Context, actor identity.Actor) ([]MeetingRequestResponse, error)
	ListScheduled(ctx context.Context, actor identity.Actor) ([]MeetingRequestResponse, error)
}
