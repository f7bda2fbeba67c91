package poller

import (
	"log/slog"
	"time"

	"github.com/clambin/remeha-exporter/internal/remeha"
)

// Update is the result of a successful update cycle.
type Update struct {
	Timestamp time.Time             `json:"timestamp" yaml:"timestamp"`
	Dashboard remeha.Dashboard      `json:"dashboard" yaml:"dashboard"`
	Devices   map[string]DeviceInfo `json:"devices" yaml:"devices"`
}

// GetAppliance returns the appliance with the specified name.
func (u Update) GetAppliance(name string) (*remeha.Appliance, bool) {
	for i := range u.Dashboard.Appliances {
		if u.Dashboard.Appliances[i].HouseName == name {
			return &u.Dashboard.Appliances[i], true
		}
	}
	return nil, false
}

// Items returns all appliances and zones in the update, each appliance followed by its zones.
func (u Update) Items() []remeha.Item {
	var items []remeha.Item
	for i := range u.Dashboard.Appliances {
		appliance := &u.Dashboard.Appliances[i]
		items = append(items, appliance)
		for j := range appliance.ClimateZones {
			items = append(items, &appliance.ClimateZones[j])
		}
		for j := range appliance.HotWaterZones {
			items = append(items, &appliance.HotWaterZones[j])
		}
	}
	return items
}

func (u Update) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 1+len(u.Dashboard.Appliances))
	attrs = append(attrs, slog.Time("timestamp", u.Timestamp))
	for _, appliance := range u.Dashboard.Appliances {
		attrs = append(attrs, slog.Group("appliance_"+appliance.ApplianceID,
			slog.String("name", appliance.HouseName),
			slog.Int("climateZones", len(appliance.ClimateZones)),
			slog.Int("hotWaterZones", len(appliance.HotWaterZones)),
		))
	}
	return slog.GroupValue(attrs...)
}
