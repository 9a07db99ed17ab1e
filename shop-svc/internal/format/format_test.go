package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "¥28.00", Price(decimal.NewFromInt(28)))
	assert.Equal(t, "¥0.50", Price(decimal.RequireFromString("0.5")))
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		style PhoneStyle
		want  string
	}{
		{name: "dashed mobile", raw: "13800138000", style: PhoneDashed, want: "138-0013-8000"},
		{name: "spaced mobile", raw: "138-0013-8000", style: PhoneSpaced, want: "138 0013 8000"},
		{name: "plain strips separators", raw: "138 0013 8000", style: PhonePlain, want: "13800138000"},
		{name: "landline", raw: "0101234567", style: PhoneDashed, want: "010-1234-567"},
		{name: "odd length untouched", raw: "12345", style: PhoneDashed, want: "12345"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Phone(testCase.raw, testCase.style))
		})
	}
}

func TestEstimatedTime(t *testing.T) {
	assert.Equal(t, "20 minutes", EstimatedTime(20))
	assert.Equal(t, "1h", EstimatedTime(60))
	assert.Equal(t, "1h30m", EstimatedTime(90))
	assert.Equal(t, "unknown", EstimatedTime(0))
}

func TestDate(t *testing.T) {
	d := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "October 17, 2026 (Sat)", Date(d))
}
