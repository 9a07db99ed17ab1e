package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderSubmitted       = "order_submitted"
	EventReservationSubmitted = "reservation_submitted"
)

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// KafkaMessage is the payload written to the submissions topic.
type KafkaMessage struct {
	Type           string          `json:"type"`
	ID             string          `json:"id"`
	Items          []EventItem     `json:"items,omitempty"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	DeliveryMethod DeliveryMethod  `json:"delivery_method,omitempty"`
	Date           string          `json:"date,omitempty"`
	Time           string          `json:"time,omitempty"`
	PartySize      int             `json:"party_size,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}
