package domain

import "time"

const (
	EventOrderSubmitted       = "order_submitted"
	EventReservationSubmitted = "reservation_submitted"
)

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// KafkaMessage mirrors what shop-svc writes to the submissions topic. Prices
// are not needed here and are left undecoded.
type KafkaMessage struct {
	Type      string      `json:"type"`
	ID        string      `json:"id"`
	Items     []EventItem `json:"items"`
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	PartySize int         `json:"party_size"`
	Timestamp time.Time   `json:"timestamp"`
}

type Period string

const (
	PeriodToday Period = "today"
	PeriodAll   Period = "all"
)

func (p Period) Valid() bool {
	return p == PeriodToday || p == PeriodAll
}

type ItemStat struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
}

type ReservationStats struct {
	Date         string `json:"date"`
	Reservations int64  `json:"reservations"`
	Guests       int64  `json:"guests"`
}
