package poller_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/clambin/remeha-exporter/internal/poller"
	pollerMocks "github.com/clambin/remeha-exporter/internal/poller/mocks"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/clambin/remeha-exporter/internal/remeha/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectHealthyAppliance(source *mocks.DataSource, id string) {
	source.EXPECT().GetTechnicalInfo(mock.Anything, id).Return(testTechnicalInfo, nil).Once()
	source.EXPECT().GetLifetimeConsumption(mock.Anything, id).Return(remeha.PowerRecord{HeatingEnergyConsumed: 100}, nil).Maybe()
	source.EXPECT().GetYearConsumption(mock.Anything, id).Return(remeha.PowerRecord{HeatingEnergyConsumed: 10}, nil).Maybe()
	source.EXPECT().GetMonthConsumption(mock.Anything, id).Return(remeha.PowerRecord{HeatingEnergyConsumed: 1}, nil).Maybe()
	source.EXPECT().GetTodayConsumption(mock.Anything, id).Return(&remeha.PowerRecord{HeatingEnergyConsumed: 0.5}, nil).Maybe()
}

func TestRemehaPoller_Run(t *testing.T) {
	source := mocks.NewDataSource(t)
	source.EXPECT().GetDashboard(mock.Anything).RunAndReturn(returnDashboard("1"))
	expectHealthyAppliance(source, "1")

	p := poller.New(source, time.Hour, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())

	ch := p.Subscribe()
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()

	// the first cycle runs immediately
	update := <-ch
	require.Len(t, update.Dashboard.Appliances, 1)
	assert.Equal(t, "home 1", update.Dashboard.Appliances[0].HouseName)
	assert.Equal(t, 100.5, update.Dashboard.Appliances[0].TotalConsumptionData.HeatingEnergyConsumed)
	assert.Len(t, update.Devices, 3)
	assert.False(t, update.Timestamp.IsZero())

	p.Refresh()
	update = <-ch
	require.Len(t, update.Dashboard.Appliances, 1)

	p.Unsubscribe(ch)
	assert.Zero(t, p.Subscribers())

	cancel()
	assert.NoError(t, <-errCh)
}

func TestRemehaPoller_Run_AuthRequired(t *testing.T) {
	source := mocks.NewDataSource(t)
	source.EXPECT().GetDashboard(mock.Anything).Return(remeha.Dashboard{}, fmt.Errorf("token: %w", remeha.ErrUnauthorized)).Once()

	n := pollerMocks.NewNotifier(t)
	paused := make(chan struct{})
	n.EXPECT().Notify(mock.MatchedBy(func(e poller.Event) bool {
		return e.Kind == poller.Paused && e.Err != nil
	})).Run(func(poller.Event) { close(paused) }).Once()

	p := poller.New(source, 10*time.Millisecond, slog.Default())
	p.Notifier = n
	ch := p.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()

	<-paused
	assert.True(t, p.Paused())

	// scheduled cycles are skipped while paused
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, ch)

	// a refresh resumes polling
	source.EXPECT().GetDashboard(mock.Anything).RunAndReturn(returnDashboard("1"))
	expectHealthyAppliance(source, "1")
	n.EXPECT().Notify(poller.Event{Kind: poller.Resumed}).Once()
	p.Refresh()

	update := <-ch
	assert.Len(t, update.Dashboard.Appliances, 1)
	assert.False(t, p.Paused())

	cancel()
	assert.NoError(t, <-errCh)
}

func TestRemehaPoller_Run_UpdateFailed(t *testing.T) {
	source := mocks.NewDataSource(t)
	source.EXPECT().GetDashboard(mock.Anything).Return(remeha.Dashboard{}, &remeha.StatusError{StatusCode: 503, Status: "503 Service Unavailable"}).Once()
	source.EXPECT().GetDashboard(mock.Anything).RunAndReturn(returnDashboard("1"))
	expectHealthyAppliance(source, "1")

	p := poller.New(source, 10*time.Millisecond, slog.Default())
	ch := p.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()

	// a failed cycle doesn't pause polling: the next tick succeeds
	update := <-ch
	assert.Len(t, update.Dashboard.Appliances, 1)
	assert.False(t, p.Paused())

	cancel()
	assert.NoError(t, <-errCh)
}

func TestRemehaPoller_Refresh(t *testing.T) {
	p := poller.New(mocks.NewDataSource(t), time.Hour, slog.Default())

	// refresh requests are coalesced and never block
	p.Refresh()
	p.Refresh()
}
