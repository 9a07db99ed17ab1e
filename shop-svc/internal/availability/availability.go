// Package availability derives bookable dates and time slots from the weekly
// business hours and validates reservation requests against them.
package availability

import (
	"fmt"
	"strings"
	"time"

	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/validation"
)

const (
	DefaultWindowDays = validation.BookingDays
	SlotInterval      = 30
	DateLayout        = "2006-01-02"

	minutesPerDay = 24 * 60
)

type Calculator struct {
	hours      domain.WeeklyHours
	loc        *time.Location
	now        func() time.Time
	strictName bool
}

type Option func(*Calculator)

func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// WithStrictNames switches the contact name rule from presence-only to the
// 2-20 character rule.
func WithStrictNames(strict bool) Option {
	return func(c *Calculator) { c.strictName = strict }
}

func NewCalculator(hours domain.WeeklyHours, loc *time.Location, opts ...Option) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	c := &Calculator{hours: hours, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Today is the current calendar date in the store's zone at midnight.
func (c *Calculator) Today() time.Time {
	return validation.StartOfDay(c.now().In(c.loc))
}

func (c *Calculator) Hours(day time.Weekday) domain.DayHours {
	return c.hours[day]
}

func (c *Calculator) IsOpenOn(date time.Time) bool {
	return c.hours[date.In(c.loc).Weekday()].IsOpen
}

// AvailableDates lists today+1 through today+windowDays, keeping only open
// weekdays. A non-positive window yields nothing.
func (c *Calculator) AvailableDates(today time.Time, windowDays int) []time.Time {
	start := validation.StartOfDay(today.In(c.loc))
	dates := []time.Time{}
	for i := 1; i <= windowDays; i++ {
		d := start.AddDate(0, 0, i)
		if c.IsOpenOn(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// AvailableTimes returns HH:MM slots every SlotInterval minutes over
// [open, close). A close time at or before the open time belongs to the next
// day, so 08:30-02:30 runs through midnight.
func (c *Calculator) AvailableTimes(date time.Time) []string {
	hours := c.hours[date.In(c.loc).Weekday()]
	if !hours.IsOpen {
		return []string{}
	}

	openAt, err := validation.ParseClock(hours.Open)
	if err != nil {
		return []string{}
	}
	closeAt, err := validation.ParseClock(hours.Close)
	if err != nil {
		return []string{}
	}
	if closeAt <= openAt {
		closeAt += minutesPerDay
	}

	slots := make([]string, 0, (closeAt-openAt)/SlotInterval+1)
	for m := openAt; m < closeAt; m += SlotInterval {
		wall := m % minutesPerDay
		slots = append(slots, fmt.Sprintf("%02d:%02d", wall/60, wall%60))
	}
	return slots
}

func (c *Calculator) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), c.loc)
}

// ValidateReservation checks every rule and reports all failures at once.
func (c *Calculator) ValidateReservation(req domain.ReservationRequest) domain.ValidationResult {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	var (
		date    time.Time
		hasDate bool
	)
	if !validation.Required(req.Date) {
		add("date", "please choose a reservation date")
	} else if d, err := c.ParseDate(req.Date); err != nil {
		add("date", "reservation date must look like YYYY-MM-DD")
	} else {
		date, hasDate = d, true
		if !validation.DateInRange(date, c.Today()) {
			add("date", validation.MsgDateRange)
		}
		if !c.IsOpenOn(date) {
			add("date", "the shop is closed on the selected date")
		}
	}

	if !validation.Required(req.Time) {
		add("time", "please choose a reservation time")
	} else if hasDate && !contains(c.AvailableTimes(date), req.Time) {
		add("time", validation.MsgTimeRange)
	}

	switch {
	case req.PartySize > validation.MaxPartySize:
		add("partySize", fmt.Sprintf("parties are limited to %d guests; please call us to book a larger gathering", validation.MaxPartySize))
	case !validation.PartySize(req.PartySize):
		add("partySize", validation.MsgPartySize)
	}

	if req.Customer == nil {
		add("customerInfo", "please fill in contact details")
	} else {
		if msg, ok := c.checkName(req.Customer.Name); !ok {
			add("name", msg)
		}
		if !validation.Phone(req.Customer.Phone) {
			add("phone", validation.MsgPhone)
		}
	}

	return domain.NewValidationResult(errs)
}

func (c *Calculator) checkName(name string) (string, bool) {
	if !validation.Required(name) {
		return validation.RequiredMessage("contact name"), false
	}
	if c.strictName && !validation.Name(name) {
		return validation.MsgName, false
	}
	return "", true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
