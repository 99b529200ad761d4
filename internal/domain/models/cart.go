package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one candidate purchase in a user's cart. UnitPrice is a
// snapshot taken at add time; the authoritative price is re-read at
// checkout.
type CartItem struct {
	UserUUID    uuid.UUID       `json:"user_uuid" db:"user_uuid"`
	ProductUUID uuid.UUID       `json:"product_uuid" db:"product_uuid"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
	AddedAt     time.Time       `json:"added_at" db:"added_at"`
}

type Cart struct {
	UserUUID uuid.UUID  `json:"user_uuid"`
	Items    []CartItem `json:"items"`
}

func (c *Cart) Item(productUUID uuid.UUID) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductUUID == productUUID {
			return item, true
		}
	}
	return CartItem{}, false
}
