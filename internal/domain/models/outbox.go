package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type EventType string

const (
	OrderCreated       EventType = "ORDER_CREATED"
	OrderStatusChanged EventType = "ORDER_STATUS_CHANGED"
	OrderCancelled     EventType = "ORDER_CANCELLED"
)

type OutboxMessage struct {
	ID        int             `json:"id" db:"id"`
	EventType EventType       `json:"event_type" db:"event_type"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	Processed bool            `json:"processed" db:"processed"`
}

type OrderEventPayload struct {
	OrderUUID uuid.UUID `json:"order_uuid"`
	UserUUID  uuid.UUID `json:"user_uuid"`
}

type LineStatusEventPayload struct {
	OrderUUID   uuid.UUID  `json:"order_uuid"`
	ProductUUID uuid.UUID  `json:"product_uuid"`
	Status      LineStatus `json:"status"`
}
