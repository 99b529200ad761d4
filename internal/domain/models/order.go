package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineStatus string

const (
	LineStatusEnCours LineStatus = "en_cours"
	LineStatusPret    LineStatus = "pret"
	LineStatusLivre   LineStatus = "livre"
	LineStatusAnnulee LineStatus = "annulee"
)

func ParseLineStatus(s string) (LineStatus, bool) {
	switch LineStatus(s) {
	case LineStatusEnCours, LineStatusPret, LineStatusLivre, LineStatusAnnulee:
		return LineStatus(s), true
	}
	return "", false
}

// validNext is the forward-only line status graph. Livre and Annulee are
// terminal.
var validNext = map[LineStatus]map[LineStatus]bool{
	LineStatusEnCours: {LineStatusPret: true, LineStatusAnnulee: true},
	LineStatusPret:    {LineStatusLivre: true},
	LineStatusLivre:   {},
	LineStatusAnnulee: {},
}

func CanTransition(from, to LineStatus) bool {
	return validNext[from][to]
}

type OrderStatus string

const (
	OrderStatusEnCours               OrderStatus = "en_cours"
	OrderStatusComplete              OrderStatus = "complete"
	OrderStatusPartiellementComplete OrderStatus = "partiellement_complete"
	OrderStatusAnnulee               OrderStatus = "annulee"
)

// OrderLine quantity and unit price are fixed at checkout; only Status
// moves afterwards, guarded by Version.
type OrderLine struct {
	OrderUUID    uuid.UUID       `json:"order_uuid" db:"order_uuid"`
	ProductUUID  uuid.UUID       `json:"product_uuid" db:"product_uuid"`
	ProducerUUID uuid.UUID       `json:"producer_uuid" db:"producer_uuid"`
	Quantity     int             `json:"quantity" db:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price" db:"unit_price"`
	Status       LineStatus      `json:"status" db:"status"`
	Version      int             `json:"-" db:"version"`
}

type Order struct {
	OrderUUID   uuid.UUID       `json:"order_uuid" db:"uuid"`
	UserUUID    uuid.UUID       `json:"user_uuid" db:"user_uuid"`
	Lines       []OrderLine     `json:"lines"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// Status is always computed from the current lines, never stored.
func (o *Order) Status() OrderStatus {
	return DeriveOrderStatus(o.Lines)
}

func DeriveOrderStatus(lines []OrderLine) OrderStatus {
	var delivered, cancelled int
	for _, line := range lines {
		switch line.Status {
		case LineStatusLivre:
			delivered++
		case LineStatusAnnulee:
			cancelled++
		}
	}

	switch {
	case len(lines) == 0:
		return OrderStatusEnCours
	case delivered == len(lines):
		return OrderStatusComplete
	case cancelled == len(lines):
		return OrderStatusAnnulee
	case delivered > 0 && delivered+cancelled == len(lines):
		return OrderStatusPartiellementComplete
	default:
		return OrderStatusEnCours
	}
}

func (o *Order) Line(productUUID uuid.UUID) (*OrderLine, bool) {
	for i := range o.Lines {
		if o.Lines[i].ProductUUID == productUUID {
			return &o.Lines[i], true
		}
	}
	return nil, false
}
