package tests

import (
	"context"
	"testing"
	"time"

	"tiedan-noodle/stats-svc/internal/domain"
	"tiedan-noodle/stats-svc/internal/mocks"
	"tiedan-noodle/stats-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Popular(t *testing.T) {
	now := time.Date(2026, time.October, 16, 21, 40, 0, 0, time.UTC)
	top := []domain.ItemStat{{MenuItemID: "noodle-1", Quantity: 3}}

	tests := []struct {
		name      string
		period    domain.Period
		limit     int
		wantLimit int
		wantErr   error
	}{
		{name: "default limit", period: domain.PeriodToday, limit: 0, wantLimit: service.DefaultLimit},
		{name: "explicit limit", period: domain.PeriodAll, limit: 3, wantLimit: 3},
		{name: "capped limit", period: domain.PeriodAll, limit: 500, wantLimit: service.MaxLimit},
		{name: "bad period", period: "week", wantErr: service.ErrInvalidPeriod},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			if testCase.wantErr == nil {
				mockStore.On("TopItems", mock.Anything, testCase.period, now, testCase.wantLimit).Return(top, nil).Once()
			}

			svc := service.NewStatsService(mockStore).WithClock(func() time.Time { return now })
			got, err := svc.Popular(context.Background(), testCase.period, testCase.limit)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, top, got)
		})
	}
}

func TestStatsService_Reservations(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	want := domain.ReservationStats{Date: "2026-10-18", Reservations: 2, Guests: 10}
	mockStore.On("Reservations", mock.Anything, "2026-10-18").Return(want, nil).Once()

	svc := service.NewStatsService(mockStore)
	got, err := svc.Reservations(context.Background(), "2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Reservations(context.Background(), "18/10/2026")
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}
