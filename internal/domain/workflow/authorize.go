package workflow

import (
	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
)

// Authorize is consulted before every state-mutating engine call.
//
// Self-service actions require the actor to own the record. Approver
// actions require a role from the allowed-roles table and refuse the
// actor's own requests: an approver never decides their own leave or
// meeting. ownerID may be empty for actions with no ownership
// dimension (queue listings).
func Authorize(action Action, actor identity.Actor, ownerID string) error {
	if actor.EmployeeID == "" {
		return ErrForbidden
	}

	if selfService[action] {
		if actor.EmployeeID != ownerID {
			return ErrForbidden
		}
		return nil
	}

	if !roleAllowed(action, actor.Role) {
		return ErrForbidden
	}
	if ownerID != "" && actor.EmployeeID == ownerID {
		return ErrForbidden
	}
	return nil
}
