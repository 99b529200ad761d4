package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	UUID         uuid.UUID       `json:"product_uuid" db:"uuid"`
	ProducerUUID uuid.UUID       `json:"producer_uuid" db:"producer_uuid"`
	Name         string          `json:"name" db:"name"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Available    int             `json:"available" db:"available"`
	Deleted      bool            `json:"-" db:"deleted"`
}
