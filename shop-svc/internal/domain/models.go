package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryNoodles Category = "noodles"
	CategorySides   Category = "sides"
	CategoryDrinks  Category = "drinks"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryNoodles, CategorySides, CategoryDrinks:
		return true
	}
	return false
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
	IsSignature bool            `json:"is_signature"`
	Available   bool            `json:"available"`
}

type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// DayHours is one row of the weekly table. Close may fall on the next calendar
// day when it is not after Open.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

type WeeklyHours map[time.Weekday]DayHours

type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type OrderLine struct {
	MenuItemID string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes"`
}

type OrderRequest struct {
	Items          []OrderLine     `json:"items"`
	Customer       *Contact        `json:"customer_info"`
	DeliveryMethod DeliveryMethod  `json:"delivery_method"`
	Notes          string          `json:"notes"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ReservationRequest carries Date as a calendar date in the store's zone
// (YYYY-MM-DD on the wire).
type ReservationRequest struct {
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	PartySize int      `json:"party_size"`
	Customer  *Contact `json:"customer_info"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	IsValid bool         `json:"is_valid"`
	Errors  []FieldError `json:"errors"`
}

func NewValidationResult(errs []FieldError) ValidationResult {
	if errs == nil {
		errs = []FieldError{}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

type OrderDetails struct {
	OrderID        string          `json:"order_id"`
	Items          []OrderLine     `json:"items"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	DeliveryMethod DeliveryMethod  `json:"delivery_method"`
	Customer       Contact         `json:"customer_info"`
	Notes          string          `json:"notes"`
	EstimatedTime  int             `json:"estimated_time"`
	Timestamp      time.Time       `json:"timestamp"`
}

type ReservationDetails struct {
	ReservationID string    `json:"reservation_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PartySize     int       `json:"party_size"`
	Customer      Contact   `json:"customer_info"`
	Timestamp     time.Time `json:"timestamp"`
}

// SubmitResult is what a submission settles to. Details is *OrderDetails or
// *ReservationDetails on success.
type SubmitResult struct {
	Success bool         `json:"success"`
	ID      string       `json:"id,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Details interface{}  `json:"details,omitempty"`
}

// CartLineRecord is the persisted form of a cart line; the menu item is
// resolved again from the catalog on load.
type CartLineRecord struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}
