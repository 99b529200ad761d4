// Package policy centralizes the role checks gating every mutating cart
// and order operation. It is a pure predicate over identity asserted by
// the upstream authentication layer.
package policy

import (
	"github.com/google/uuid"
	"github.com/marcheferme/marketplace_service/internal/domain/models"
)

type Action string

const (
	ActionMutateCart       Action = "cart:mutate"
	ActionCheckout         Action = "order:checkout"
	ActionCancelOrder      Action = "order:cancel"
	ActionUpdateLineStatus Action = "order:line_status"
	ActionAdjustStock      Action = "product:adjust_stock"
)

// actionRoles lists the non-admin role allowed to perform each action.
// Admin passes everything.
var actionRoles = map[Action]models.Role{
	ActionMutateCart:       models.RoleClient,
	ActionCheckout:         models.RoleClient,
	ActionCancelOrder:      models.RoleClient,
	ActionUpdateLineStatus: models.RoleProducteur,
	ActionAdjustStock:      models.RoleProducteur,
}

// CanPerform reports whether the principal may perform action on a
// resource owned by resourceOwnerUUID. For cart and order actions the
// owner is the client; for line status updates and stock adjustments it
// is the producer owning the product.
func CanPerform(p models.Principal, action Action, resourceOwnerUUID uuid.UUID) bool {
	if p.Role == models.RoleAdmin {
		return true
	}

	role, ok := actionRoles[action]
	if !ok || p.Role != role {
		return false
	}

	return p.UUID == resourceOwnerUUID
}
