package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/clambin/go-common/set"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/google/uuid"
)

// DefaultDashboardTimeout is the maximum time to wait for the dashboard call.
const DefaultDashboardTimeout = 30 * time.Second

// Coordinator runs one update cycle at a time: it gets the dashboard, refreshes the cached technical information and
// consumption data of each appliance and merges everything into the returned dashboard.
//
// Update must not be called concurrently. GetItem and GetDeviceInfo may be called at any time.
type Coordinator struct {
	DataSource       remeha.DataSource
	Now              func() time.Time
	DashboardTimeout time.Duration
	logger           *slog.Logger

	appliances map[string]*applianceState
	reported   set.Set[string]

	lock    sync.RWMutex
	items   map[string]remeha.Item
	devices map[string]DeviceInfo
}

func NewCoordinator(source remeha.DataSource, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		DataSource:       source,
		Now:              time.Now,
		DashboardTimeout: DefaultDashboardTimeout,
		logger:           logger,
		appliances:       make(map[string]*applianceState),
		reported:         set.Create[string](),
		items:            make(map[string]remeha.Item),
		devices:          make(map[string]DeviceInfo),
	}
}

// Update runs one update cycle. It returns ErrAuthRequired if the API rejected the credentials and ErrUpdateFailed
// if the dashboard or an appliance's technical information could not be retrieved.
func (c *Coordinator) Update(ctx context.Context) (remeha.Dashboard, error) {
	dashboard, _, err := c.cycle(ctx)
	return dashboard, err
}

// Snapshot runs one update cycle, like Update, and returns its result as an Update.
// The timestamp is the time the cycle based its refresh decisions on.
func (c *Coordinator) Snapshot(ctx context.Context) (Update, error) {
	dashboard, now, err := c.cycle(ctx)
	if err != nil {
		return Update{}, err
	}
	return Update{Timestamp: now, Dashboard: dashboard, Devices: c.DeviceInfos()}, nil
}

func (c *Coordinator) cycle(ctx context.Context) (remeha.Dashboard, time.Time, error) {
	dashboard, err := c.getDashboard(ctx)
	if err != nil {
		return remeha.Dashboard{}, time.Time{}, err
	}

	now := c.Now()
	logger := c.logger.With(slog.String("cycle", uuid.NewString()))
	reported := set.Create[string]()

	for i := range dashboard.Appliances {
		appliance := &dashboard.Appliances[i]
		reported.Add(appliance.ApplianceID)
		if err = c.updateAppliance(ctx, appliance, now, logger); err != nil {
			return remeha.Dashboard{}, time.Time{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
		}
	}

	for _, id := range c.reported.List() {
		if !reported.Contains(id) {
			logger.Info("appliance no longer reported", slog.String("appliance", id))
		}
	}
	c.reported = reported

	return dashboard, now, nil
}

// GetItem returns the last known appliance, climate zone or hot water zone with the specified id.
func (c *Coordinator) GetItem(id string) (remeha.Item, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// GetDeviceInfo returns the last known device information for the specified id.
func (c *Coordinator) GetDeviceInfo(id string) (DeviceInfo, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	info, ok := c.devices[id]
	return info, ok
}

// DeviceInfos returns the device information of all known appliances and zones.
func (c *Coordinator) DeviceInfos() map[string]DeviceInfo {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return maps.Clone(c.devices)
}

type dashboardResult struct {
	dashboard remeha.Dashboard
	err       error
}

// getDashboard stops waiting for the dashboard once DashboardTimeout expires, even if the call itself does not return.
func (c *Coordinator) getDashboard(ctx context.Context) (remeha.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, c.DashboardTimeout)
	defer cancel()

	ch := make(chan dashboardResult, 1)
	go func() {
		dashboard, err := c.DataSource.GetDashboard(ctx)
		ch <- dashboardResult{dashboard: dashboard, err: err}
	}()

	var result dashboardResult
	select {
	case <-ctx.Done():
		result.err = ctx.Err()
	case result = <-ch:
	}

	switch {
	case result.err == nil:
		return result.dashboard, nil
	case errors.Is(result.err, remeha.ErrUnauthorized):
		return remeha.Dashboard{}, fmt.Errorf("%w: %w", ErrAuthRequired, result.err)
	default:
		return remeha.Dashboard{}, fmt.Errorf("%w: dashboard: %w", ErrUpdateFailed, result.err)
	}
}

func (c *Coordinator) updateAppliance(ctx context.Context, appliance *remeha.Appliance, now time.Time, logger *slog.Logger) error {
	id := appliance.ApplianceID
	raw := *appliance
	c.setItem(&raw)

	state, ok := c.appliances[id]
	if !ok {
		state = newApplianceState()
		c.appliances[id] = state
	}

	if state.technicalInfo == nil {
		info, err := c.DataSource.GetTechnicalInfo(ctx, id)
		if err != nil {
			return fmt.Errorf("technical info %s: %w", id, err)
		}
		state.technicalInfo = &info
		logger.Debug("requested technical information", slog.String("appliance", id), slog.Any("info", info))
	}

	state.refreshConsumption(ctx, c.DataSource, id, now, logger)
	state.apply(appliance)
	c.setItem(appliance)

	gateway := resolveGateway(id, *state.technicalInfo, logger)
	c.setDevice(applianceDevice(appliance, *state.technicalInfo, gateway))

	for i := range appliance.ClimateZones {
		zone := &appliance.ClimateZones[i]
		c.setItem(zone)
		c.setDevice(climateZoneDevice(id, zone, gateway))
	}
	for i := range appliance.HotWaterZones {
		zone := &appliance.HotWaterZones[i]
		c.setItem(zone)
		c.setDevice(hotWaterZoneDevice(id, zone))
	}
	return nil
}

func (c *Coordinator) setItem(item remeha.Item) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.items[item.ItemID()] = item
}

func (c *Coordinator) setDevice(info DeviceInfo) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.devices[info.Identifier] = info
}
