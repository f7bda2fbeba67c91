package collector

import (
	"context"
	"log/slog"
	"sync"

	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	applianceLabels = []string{"appliance", "id"}
	energyLabels    = []string{"appliance", "id", "period", "mode"}
	zoneLabels      = []string{"appliance", "zone", "id"}

	remehaWaterPressure = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "appliance", "water_pressure_bar"),
		"Water pressure of the appliance in bar",
		applianceLabels,
		nil,
	)
	remehaWaterPressureOK = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "appliance", "water_pressure_ok"),
		"1 if the appliance reports its water pressure as OK",
		applianceLabels,
		nil,
	)
	remehaOutdoorTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "appliance", "outdoor_temperature_celsius"),
		"Outdoor temperature measured by the appliance's sensor in degrees celsius",
		applianceLabels,
		nil,
	)
	remehaCloudOutdoorTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "appliance", "cloud_outdoor_temperature_celsius"),
		"Outdoor temperature reported by the weather service in degrees celsius",
		applianceLabels,
		nil,
	)
	remehaEnergyConsumed = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "appliance", "energy_consumed_kwh"),
		"Energy consumed by the appliance in kWh. See labels 'period' and 'mode'",
		energyLabels,
		nil,
	)
	remehaEnergyDelivered = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "appliance", "energy_delivered_kwh"),
		"Energy delivered by the appliance in kWh. See labels 'period' and 'mode'",
		energyLabels,
		nil,
	)
	remehaCOP = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "appliance", "cop"),
		"Coefficient of performance (delivered / consumed). Not reported if no energy was consumed",
		energyLabels,
		nil,
	)

	remehaZoneRoomTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "climate_zone", "room_temperature_celsius"),
		"Room temperature of the climate zone in degrees celsius",
		zoneLabels,
		nil,
	)
	remehaZoneSetpoint = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "climate_zone", "setpoint_celsius"),
		"Target temperature of the climate zone in degrees celsius",
		zoneLabels,
		nil,
	)
	remehaZoneScheduleSetpoint = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "climate_zone", "schedule_setpoint_celsius"),
		"Target temperature of the climate zone's current schedule in degrees celsius",
		zoneLabels,
		nil,
	)
	remehaZoneNextSetpoint = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "climate_zone", "next_setpoint_celsius"),
		"Next scheduled target temperature of the climate zone in degrees celsius",
		zoneLabels,
		nil,
	)
	remehaZoneDemand = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "climate_zone", "heat_demand"),
		"1 if the climate zone is requesting heat",
		zoneLabels,
		nil,
	)

	remehaHotWaterTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "hot_water_zone", "temperature_celsius"),
		"Water temperature of the hot water zone in degrees celsius",
		zoneLabels,
		nil,
	)
	remehaHotWaterTarget = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "hot_water_zone", "target_setpoint_celsius"),
		"Target water temperature of the hot water zone in degrees celsius",
		zoneLabels,
		nil,
	)
	remehaHotWaterHeating = prometheus.NewDesc(
		prometheus.BuildFQName("remeha", "hot_water_zone", "heating"),
		"1 if the hot water zone is being heated",
		zoneLabels,
		nil,
	)
)

// periods maps the consumption blocks of an appliance to the value of the 'period' label.
var periods = []struct {
	label  string
	record func(*remeha.Appliance) *remeha.PowerRecord
}{
	{label: "today", record: func(a *remeha.Appliance) *remeha.PowerRecord { return a.ConsumptionData }},
	{label: "increase", record: func(a *remeha.Appliance) *remeha.PowerRecord { return a.IncreaseConsumptionData }},
	{label: "total", record: func(a *remeha.Appliance) *remeha.PowerRecord { return a.TotalConsumptionData }},
	{label: "year", record: func(a *remeha.Appliance) *remeha.PowerRecord { return a.YearlyConsumptionData }},
	{label: "month", record: func(a *remeha.Appliance) *remeha.PowerRecord { return a.MonthlyConsumptionData }},
}

// modes maps the counters of a PowerRecord to the value of the 'mode' label.
var modes = []struct {
	label     string
	consumed  func(remeha.PowerRecord) float64
	delivered func(remeha.PowerRecord) float64
	cop       func(remeha.PowerRecord) remeha.COP
}{
	{
		label:     "heating",
		consumed:  func(r remeha.PowerRecord) float64 { return r.HeatingEnergyConsumed },
		delivered: func(r remeha.PowerRecord) float64 { return r.HeatingEnergyDelivered },
		cop:       func(r remeha.PowerRecord) remeha.COP { return r.HeatingCOP },
	},
	{
		label:     "hot_water",
		consumed:  func(r remeha.PowerRecord) float64 { return r.HotWaterEnergyConsumed },
		delivered: func(r remeha.PowerRecord) float64 { return r.HotWaterEnergyDelivered },
		cop:       func(r remeha.PowerRecord) remeha.COP { return r.HotWaterCOP },
	},
	{
		label:     "cooling",
		consumed:  func(r remeha.PowerRecord) float64 { return r.CoolingEnergyConsumed },
		delivered: func(r remeha.PowerRecord) float64 { return r.CoolingEnergyDelivered },
		cop:       func(r remeha.PowerRecord) remeha.COP { return r.CoolingCOP },
	},
}

type Collector struct {
	Poller     poller.Poller
	Logger     *slog.Logger
	lock       sync.RWMutex
	lastUpdate *poller.Update
}

func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			c.process(update)
		}
	}
}

func (c *Collector) process(update poller.Update) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.lastUpdate = &update
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- remehaWaterPressure
	ch <- remehaWaterPressureOK
	ch <- remehaOutdoorTemperature
	ch <- remehaCloudOutdoorTemperature
	ch <- remehaEnergyConsumed
	ch <- remehaEnergyDelivered
	ch <- remehaCOP
	ch <- remehaZoneRoomTemperature
	ch <- remehaZoneSetpoint
	ch <- remehaZoneScheduleSetpoint
	ch <- remehaZoneNextSetpoint
	ch <- remehaZoneDemand
	ch <- remehaHotWaterTemperature
	ch <- remehaHotWaterTarget
	ch <- remehaHotWaterHeating
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.lastUpdate == nil {
		return
	}
	for i := range c.lastUpdate.Dashboard.Appliances {
		appliance := &c.lastUpdate.Dashboard.Appliances[i]
		c.collectAppliance(ch, appliance)
		c.collectConsumption(ch, appliance)
		for j := range appliance.ClimateZones {
			c.collectClimateZone(ch, appliance, &appliance.ClimateZones[j])
		}
		for j := range appliance.HotWaterZones {
			c.collectHotWaterZone(ch, appliance, &appliance.HotWaterZones[j])
		}
	}
}

func (c *Collector) collectAppliance(ch chan<- prometheus.Metric, appliance *remeha.Appliance) {
	ch <- prometheus.MustNewConstMetric(remehaWaterPressure, prometheus.GaugeValue, appliance.WaterPressure, appliance.HouseName, appliance.ApplianceID)
	ch <- prometheus.MustNewConstMetric(remehaWaterPressureOK, prometheus.GaugeValue, boolValue(appliance.WaterPressureOK), appliance.HouseName, appliance.ApplianceID)
	if appliance.OutdoorTemperature != nil {
		ch <- prometheus.MustNewConstMetric(remehaOutdoorTemperature, prometheus.GaugeValue, *appliance.OutdoorTemperature, appliance.HouseName, appliance.ApplianceID)
	}
	if cloud := appliance.OutdoorTemperatureInformation.CloudOutdoorTemperature; cloud != nil {
		ch <- prometheus.MustNewConstMetric(remehaCloudOutdoorTemperature, prometheus.GaugeValue, *cloud, appliance.HouseName, appliance.ApplianceID)
	}
}

func (c *Collector) collectConsumption(ch chan<- prometheus.Metric, appliance *remeha.Appliance) {
	for _, period := range periods {
		record := period.record(appliance)
		if record == nil {
			c.Logger.Debug("no consumption data", "appliance", appliance.ApplianceID, "period", period.label)
			continue
		}
		for _, mode := range modes {
			labels := []string{appliance.HouseName, appliance.ApplianceID, period.label, mode.label}
			ch <- prometheus.MustNewConstMetric(remehaEnergyConsumed, prometheus.GaugeValue, mode.consumed(*record), labels...)
			ch <- prometheus.MustNewConstMetric(remehaEnergyDelivered, prometheus.GaugeValue, mode.delivered(*record), labels...)
			if cop := mode.cop(*record); cop.Defined() {
				ch <- prometheus.MustNewConstMetric(remehaCOP, prometheus.GaugeValue, float64(cop), labels...)
			}
		}
	}
}

func (c *Collector) collectClimateZone(ch chan<- prometheus.Metric, appliance *remeha.Appliance, zone *remeha.ClimateZone) {
	labels := []string{appliance.HouseName, zone.Name, zone.ClimateZoneID}
	if zone.RoomTemperature != nil {
		ch <- prometheus.MustNewConstMetric(remehaZoneRoomTemperature, prometheus.GaugeValue, *zone.RoomTemperature, labels...)
	}
	ch <- prometheus.MustNewConstMetric(remehaZoneSetpoint, prometheus.GaugeValue, zone.SetPoint, labels...)
	ch <- prometheus.MustNewConstMetric(remehaZoneScheduleSetpoint, prometheus.GaugeValue, zone.CurrentScheduleSetPoint, labels...)
	ch <- prometheus.MustNewConstMetric(remehaZoneNextSetpoint, prometheus.GaugeValue, zone.NextSetpoint, labels...)
	ch <- prometheus.MustNewConstMetric(remehaZoneDemand, prometheus.GaugeValue, boolValue(zone.Demanding()), labels...)
}

func (c *Collector) collectHotWaterZone(ch chan<- prometheus.Metric, appliance *remeha.Appliance, zone *remeha.HotWaterZone) {
	labels := []string{appliance.HouseName, zone.Name, zone.HotWaterZoneID}
	ch <- prometheus.MustNewConstMetric(remehaHotWaterTemperature, prometheus.GaugeValue, zone.DHWTemperature, labels...)
	ch <- prometheus.MustNewConstMetric(remehaHotWaterTarget, prometheus.GaugeValue, zone.TargetSetpoint, labels...)
	ch <- prometheus.MustNewConstMetric(remehaHotWaterHeating, prometheus.GaugeValue, boolValue(zone.Heating()), labels...)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
