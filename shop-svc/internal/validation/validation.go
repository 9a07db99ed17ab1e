// Package validation holds the field rules shared by the cart, order and
// reservation flows. Every rule reports a bool; callers turn failures into
// field errors so that all of them can be collected in one pass.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
	MinQuantity  = 1
	MaxQuantity  = 99
	BookingDays  = 7
)

var (
	mobilePattern    = regexp.MustCompile(`^1[3-9]\d{9}$`)
	phoneSeparators  = regexp.MustCompile(`[\s-]`)
	nameCharsPattern = regexp.MustCompile(`^[\p{Han}a-zA-Z0-9\s]+$`)
)

// NormalizePhone drops spaces and hyphens.
func NormalizePhone(phone string) string {
	return phoneSeparators.ReplaceAllString(phone, "")
}

// Phone accepts mainland mobile numbers: 11 digits, leading 1, second digit 3-9.
func Phone(phone string) bool {
	if phone == "" {
		return false
	}
	return mobilePattern.MatchString(NormalizePhone(phone))
}

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Name is the strict rule: 2-20 characters of Han, latin letters, digits or spaces.
func Name(name string) bool {
	trimmed := strings.TrimSpace(name)
	n := utf8.RuneCountInString(trimmed)
	if n < 2 || n > 20 {
		return false
	}
	return nameCharsPattern.MatchString(trimmed)
}

func Address(address string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(address))
	return n >= 5 && n <= 100
}

func PartySize(size int) bool {
	return size >= MinPartySize && size <= MaxPartySize
}

func Quantity(q int) bool {
	return q >= MinQuantity && q <= MaxQuantity
}

// DateInRange reports whether date falls within [today, today+BookingDays] by
// calendar day. Both values are compared in date's location.
func DateInRange(date, today time.Time) bool {
	d := StartOfDay(date)
	t := StartOfDay(today.In(date.Location()))
	if d.Before(t) {
		return false
	}
	return !d.After(t.AddDate(0, 0, BookingDays))
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseClock turns "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

const (
	MsgPhone     = "please enter a valid mobile number (11 digits starting with 1)"
	MsgName      = "name must be 2-20 characters"
	MsgAddress   = "address must be 5-100 characters"
	MsgDateRange = "please choose a date within the next 7 days"
	MsgTimeRange = "please choose a time within business hours"
	MsgPartySize = "party size must be between 1 and 20"
	MsgQuantity  = "quantity must be a whole number from 1 to 99"
)

func RequiredMessage(field string) string {
	return "please fill in " + field
}
