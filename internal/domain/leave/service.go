package leave

import (
	"context"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
)

type LeaveService interface {
	Submit(ctx context.Context, actor identity.Actor, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	Approve(ctx context.Context, actor identity.Actor, requestID string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, actor identity.Actor, req RejectRequestRequest) (LeaveRequestResponse, error)

	ListMine(ctx context.Context, actor identity.Actor) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context, actor identity.Actor) ([]LeaveRequestResponse, error)
	ListApprovedUnpaid(ctx context.Context, actor identity.Actor, filter UnpaidLeaveFilter) ([]LeaveRequestResponse, error)
}
