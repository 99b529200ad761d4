package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
)

func TestCanPerform(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tCases := []struct {
		name      string
		principal models.Principal
		action    Action
		owner     uuid.UUID
		allowed   bool
	}{
		{
			name:      "client_mutates_own_cart",
			principal: models.Principal{UUID: owner, Role: models.RoleClient},
			action:    ActionMutateCart,
			owner:     owner,
			allowed:   true,
		},
		{
			name:      "client_cannot_cancel_foreign_order",
			principal: models.Principal{UUID: stranger, Role: models.RoleClient},
			action:    ActionCancelOrder,
			owner:     owner,
			allowed:   false,
		},
		{
			name:      "producer_updates_own_line",
			principal: models.Principal{UUID: owner, Role: models.RoleProducteur},
			action:    ActionUpdateLineStatus,
			owner:     owner,
			allowed:   true,
		},
		{
			name:      "producer_cannot_update_foreign_line",
			principal: models.Principal{UUID: stranger, Role: models.RoleProducteur},
			action:    ActionUpdateLineStatus,
			owner:     owner,
			allowed:   false,
		},
		{
			name:      "producer_cannot_checkout",
			principal: models.Principal{UUID: owner, Role: models.RoleProducteur},
			action:    ActionCheckout,
			owner:     owner,
			allowed:   false,
		},
		{
			name:      "client_cannot_update_line_status",
			principal: models.Principal{UUID: owner, Role: models.RoleClient},
			action:    ActionUpdateLineStatus,
			owner:     owner,
			allowed:   false,
		},
		{
			name:      "producer_adjusts_own_stock",
			principal: models.Principal{UUID: owner, Role: models.RoleProducteur},
			action:    ActionAdjustStock,
			owner:     owner,
			allowed:   true,
		},
		{
			name:      "client_cannot_adjust_stock",
			principal: models.Principal{UUID: owner, Role: models.RoleClient},
			action:    ActionAdjustStock,
			owner:     owner,
			allowed:   false,
		},
		{
			name:      "admin_passes_everything",
			principal: models.Principal{UUID: stranger, Role: models.RoleAdmin},
			action:    ActionCancelOrder,
			owner:     owner,
			allowed:   true,
		},
		{
			name:      "unknown_action_denied",
			principal: models.Principal{UUID: owner, Role: models.RoleClient},
			action:    Action("order:delete"),
			owner:     owner,
			allowed:   false,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			require.Equal(t, tCase.allowed, CanPerform(tCase.principal, tCase.action, tCase.owner))
		})
	}
}
