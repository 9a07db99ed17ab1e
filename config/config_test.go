package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SHOP_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("SHOP_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SHOP_TEST_MISSING", "fallback"))
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "true", value: "true", want: true},
		{name: "one", value: "1", want: true},
		{name: "false", value: "false", want: false},
		{name: "garbage falls back", value: "maybe", want: true},
		{name: "empty falls back", value: "", want: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("SHOP_TEST_BOOL", testCase.value)
			assert.Equal(t, testCase.want, GetBool("SHOP_TEST_BOOL", true))
		})
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("SHOP_TEST_DELAY", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetDuration("SHOP_TEST_DELAY", time.Second))

	t.Setenv("SHOP_TEST_DELAY", "soon")
	assert.Equal(t, time.Second, GetDuration("SHOP_TEST_DELAY", time.Second))
}

func TestStoreLocationFallback(t *testing.T) {
	t.Setenv("STORE_TIMEZONE", "Not/AZone")

	loc := StoreLocation()
	_, offset := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 8*60*60, offset)
}

func TestSubmissionsTopicDefault(t *testing.T) {
	t.Setenv("SUBMISSIONS_TOPIC", "")
	assert.Equal(t, DefaultSubmissionsTopic, SubmissionsTopic())
}
