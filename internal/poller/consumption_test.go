package poller

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/clambin/remeha-exporter/internal/remeha/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_beforeDate(t *testing.T) {
	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Skip("no timezone data")
	}
	now := time.Date(2024, time.March, 15, 0, 30, 0, 0, amsterdam)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "same time", t: now, want: false},
		{name: "earlier same day", t: now.Add(-20 * time.Minute), want: false},
		{name: "yesterday", t: now.Add(-time.Hour), want: true},
		{name: "same local date, different UTC date", t: time.Date(2024, time.March, 14, 23, 45, 0, 0, time.UTC), want: false},
		{name: "previous year", t: now.AddDate(-1, 0, 0), want: true},
		{name: "tomorrow", t: now.Add(24 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, beforeDate(tt.t, now))
		})
	}
}

func TestApplianceState_Due(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	s := newApplianceState()
	assert.True(t, s.totalsDue(now))
	assert.True(t, s.todayDue(now))

	s.lastTotalsRefresh = now
	s.lastTodayRefresh = now
	assert.False(t, s.totalsDue(now.Add(13*time.Hour)))
	assert.True(t, s.totalsDue(now.Add(14*time.Hour)))
	assert.False(t, s.todayDue(now.Add(todayRefreshInterval-time.Nanosecond)))
	assert.True(t, s.todayDue(now.Add(todayRefreshInterval)))
}

func TestApplianceState_refreshTotals(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	source := mocks.NewDataSource(t)
	s := newApplianceState()

	// a failing fetch stops the remaining fetches and commits nothing
	source.EXPECT().GetLifetimeConsumption(mock.Anything, "1").Return(remeha.PowerRecord{HeatingEnergyConsumed: 100}, nil).Once()
	source.EXPECT().GetYearConsumption(mock.Anything, "1").Return(remeha.PowerRecord{}, errors.New("remote failure")).Once()
	assert.Error(t, s.refreshTotals(context.Background(), source, "1", now))
	assert.Equal(t, remeha.ZeroPowerRecord(), s.lifetime)
	assert.True(t, s.lastTotalsRefresh.IsZero())

	source.EXPECT().GetLifetimeConsumption(mock.Anything, "1").Return(remeha.PowerRecord{HeatingEnergyConsumed: 100, HeatingEnergyDelivered: 400}, nil).Once()
	source.EXPECT().GetYearConsumption(mock.Anything, "1").Return(remeha.PowerRecord{HeatingEnergyConsumed: 20}, nil).Once()
	source.EXPECT().GetMonthConsumption(mock.Anything, "1").Return(remeha.PowerRecord{HeatingEnergyConsumed: 2}, nil).Once()
	assert.NoError(t, s.refreshTotals(context.Background(), source, "1", now))
	assert.Equal(t, remeha.COP(4), s.lifetime.HeatingCOP)
	assert.Equal(t, 20.0, s.thisYear.HeatingEnergyConsumed)
	assert.Equal(t, 2.0, s.thisMonth.HeatingEnergyConsumed)
	assert.Equal(t, now, s.lastTotalsRefresh)
}

func TestApplianceState_refreshToday(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	source := mocks.NewDataSource(t)
	s := newApplianceState()

	source.EXPECT().GetTodayConsumption(mock.Anything, "1").Return(&remeha.PowerRecord{HotWaterEnergyConsumed: 3, HotWaterEnergyDelivered: 6}, nil).Once()
	assert.NoError(t, s.refreshToday(context.Background(), source, "1", now))
	assert.Equal(t, remeha.COP(2), s.today.HotWaterCOP)
	assert.Equal(t, s.today, s.increase)

	// no data for today: today drops back to zero and the increase is the absolute difference
	source.EXPECT().GetTodayConsumption(mock.Anything, "1").Return(nil, nil).Once()
	assert.NoError(t, s.refreshToday(context.Background(), source, "1", now.Add(time.Hour)))
	assert.Equal(t, remeha.ZeroPowerRecord(), s.today)
	assert.Equal(t, 3.0, s.increase.HotWaterEnergyConsumed)
	assert.Equal(t, 6.0, s.increase.HotWaterEnergyDelivered)

	s.lastTotalsRefresh = now
	source.EXPECT().GetTodayConsumption(mock.Anything, "1").Return(nil, errors.New("remote failure")).Once()
	s.refreshConsumption(context.Background(), source, "1", now.Add(2*time.Hour), slog.Default())
	assert.Equal(t, remeha.ZeroPowerRecord(), s.today)
	assert.Equal(t, now.Add(time.Hour), s.lastTodayRefresh)
}
