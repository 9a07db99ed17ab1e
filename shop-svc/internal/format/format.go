package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

type PhoneStyle int

const (
	PhonePlain PhoneStyle = iota
	PhoneDashed
	PhoneSpaced
)

func Price(p decimal.Decimal) string {
	return "¥" + p.StringFixed(2)
}

// Phone strips every non-digit and regroups 10 or 11 digit numbers as 3-4-rest.
// Other lengths come back as bare digits.
func Phone(raw string, style PhoneStyle) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	if (len(digits) != 10 && len(digits) != 11) || style == PhonePlain {
		return digits
	}
	sep := "-"
	if style == PhoneSpaced {
		sep = " "
	}
	return digits[:3] + sep + digits[3:7] + sep + digits[7:]
}

func EstimatedTime(minutes int) string {
	if minutes <= 0 {
		return "unknown"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours, rest := minutes/60, minutes%60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, rest)
}

// Date renders a calendar date as "January 2, 2006 (Mon)".
func Date(t time.Time) string {
	return t.Format("January 2, 2006 (Mon)")
}
