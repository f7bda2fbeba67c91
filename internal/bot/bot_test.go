package bot

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/remeha-exporter/internal/bot/mocks"
	"github.com/clambin/remeha-exporter/internal/poller"
	mockPoller "github.com/clambin/remeha-exporter/internal/poller/mocks"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBot_Run(t *testing.T) {
	b := mocks.NewSlackBot(t)
	b.EXPECT().Add(mock.Anything)

	ch := make(chan poller.Update)
	p := mockPoller.NewPoller(t)
	p.EXPECT().Subscribe().Return(ch).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Return().Once()

	c := New(b, p, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- c.Run(ctx) }()

	ch <- poller.Update{}

	assert.Eventually(t, func() bool {
		c.lock.RLock()
		defer c.lock.RUnlock()
		return c.updated
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
}

func TestBot_Add(t *testing.T) {
	b := mocks.NewSlackBot(t)
	var commands slackbot.Commands
	b.EXPECT().Add(mock.AnythingOfType("slackbot.Commands")).Run(func(c slackbot.Commands) {
		commands = c
	}).Once()

	p := mockPoller.NewPoller(t)
	p.EXPECT().Refresh().Once()

	_ = New(b, p, slog.Default())
	assert.Equal(t, []string{"appliances", "consumption", "refresh", "zones"}, commands.GetCommands())

	attachments := commands.Handle(context.Background(), "appliances")
	require.Len(t, attachments, 1)
	assert.Equal(t, "no updates yet. please check back later", attachments[0].Text)

	attachments = commands.Handle(context.Background(), "refresh")
	require.Len(t, attachments, 1)
	assert.Equal(t, "refreshing Remeha data", attachments[0].Text)
}

func ptr[T any](v T) *T { return &v }

func testUpdate() poller.Update {
	return poller.Update{Dashboard: remeha.Dashboard{Appliances: []remeha.Appliance{
		{
			ApplianceID:        "a1",
			HouseName:          "Home",
			ErrorStatus:        "Running",
			WaterPressure:      1.8,
			WaterPressureOK:    true,
			OutdoorTemperature: ptr(7.5),
			ClimateZones: []remeha.ClimateZone{
				{ClimateZoneID: "cz1", Name: "Living room", ZoneMode: "Scheduling", RoomTemperature: ptr(20.5), SetPoint: 21, ActiveComfortDemand: "RequestingHeat"},
				{ClimateZoneID: "cz2", Name: "Attic", ZoneMode: "Manual", SetPoint: 15, ActiveComfortDemand: "Idle"},
			},
			HotWaterZones: []remeha.HotWaterZone{
				{HotWaterZoneID: "hw1", Name: "DHW", DHWStatus: "ProducingHeat", DHWTemperature: 48.2, TargetSetpoint: 55},
			},
			ConsumptionData:      ptr(remeha.PowerRecord{HeatingEnergyConsumed: 4, HeatingEnergyDelivered: 12, HotWaterEnergyConsumed: 1}.WithCOP()),
			TotalConsumptionData: ptr(remeha.PowerRecord{HeatingEnergyConsumed: 1000, HeatingEnergyDelivered: 3500}.WithCOP()),
		},
		{
			ApplianceID:     "a2",
			HouseName:       "Cabin",
			ErrorStatus:     "Error",
			WaterPressure:   0.4,
			WaterPressureOK: false,
		},
	}}}
}

func TestBot_Reports(t *testing.T) {
	b := mocks.NewSlackBot(t)
	b.EXPECT().Add(mock.Anything)
	c := New(b, mockPoller.NewPoller(t), slog.Default())

	tests := []struct {
		name   string
		report slackbot.HandlerFunc
		title  string
		text   string
	}{
		{
			name:   "appliances",
			report: c.ReportAppliances,
			title:  "appliances:",
			text:   "Cabin: 0.4 bar (LOW), status: Error\nHome: 1.8 bar, outside: 7.5ºC",
		},
		{
			name:   "zones",
			report: c.ReportZones,
			title:  "zones:",
			text:   "Attic: n/a (target: 15.0, Manual)\nDHW: 48.2ºC (target: 55.0, heating)\nLiving room: 20.5ºC (target: 21.0, Scheduling, heating)",
		},
		{
			name:   "consumption",
			report: c.ReportConsumption,
			title:  "consumption:",
			text:   "Home: today: 5.0 kWh (COP: 3.00), total: 1000 kWh (COP: 3.50)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.lock.Lock()
			c.update, c.updated = poller.Update{}, false
			c.lock.Unlock()

			attachments := tt.report(context.Background())
			require.Len(t, attachments, 1)
			assert.Equal(t, "bad", attachments[0].Color)
			assert.Equal(t, "no updates yet. please check back later", attachments[0].Text)

			c.lock.Lock()
			c.update, c.updated = testUpdate(), true
			c.lock.Unlock()

			attachments = tt.report(context.Background())
			require.Len(t, attachments, 1)
			assert.Equal(t, "good", attachments[0].Color)
			assert.Equal(t, tt.title, attachments[0].Title)
			assert.Equal(t, tt.text, attachments[0].Text)
		})
	}
}

func TestBot_Reports_Empty(t *testing.T) {
	b := mocks.NewSlackBot(t)
	b.EXPECT().Add(mock.Anything)
	c := New(b, mockPoller.NewPoller(t), slog.Default())
	c.updated = true

	attachments := c.ReportZones(context.Background())
	require.Len(t, attachments, 1)
	assert.Equal(t, "no zones found", attachments[0].Text)

	attachments = c.ReportConsumption(context.Background())
	require.Len(t, attachments, 1)
	assert.Equal(t, "no consumption data found", attachments[0].Text)
}

func TestBot_DoRefresh(t *testing.T) {
	b := mocks.NewSlackBot(t)
	b.EXPECT().Add(mock.Anything)
	p := mockPoller.NewPoller(t)
	p.EXPECT().Refresh().Once()

	c := New(b, p, slog.Default())
	attachments := c.DoRefresh(context.Background())
	require.Len(t, attachments, 1)
	assert.Equal(t, "refreshing Remeha data", attachments[0].Text)
}
