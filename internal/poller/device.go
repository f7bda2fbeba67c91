package poller

import (
	"log/slog"

	"github.com/clambin/remeha-exporter/internal/remeha"
)

const (
	manufacturer      = "Remeha"
	unknown           = "Unknown"
	hotWaterZoneModel = "Hot Water Zone"
)

// DeviceInfo describes an appliance, climate zone or hot water zone as a device.
// Zones refer to their appliance through ViaDevice.
type DeviceInfo struct {
	Identifier   string `json:"identifier" yaml:"identifier"`
	Name         string `json:"name" yaml:"name"`
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Model        string `json:"model" yaml:"model"`
	HWVersion    string `json:"hwVersion,omitempty" yaml:"hwVersion,omitempty"`
	SWVersion    string `json:"swVersion,omitempty" yaml:"swVersion,omitempty"`
	ViaDevice    string `json:"viaDevice,omitempty" yaml:"viaDevice,omitempty"`
}

func (d DeviceInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", d.Identifier),
		slog.String("name", d.Name),
		slog.String("model", d.Model),
	)
}

// resolveGateway returns the gateway whose versions are reported for the appliance and its climate zones.
// All climate zones of an appliance are assumed to share the first gateway.
func resolveGateway(applianceID string, info remeha.TechnicalInfo, logger *slog.Logger) remeha.Gateway {
	switch gateways := info.InternetConnectedGateways; len(gateways) {
	case 0:
		logger.Warn("appliance has no gateways, using unknown values", slog.String("appliance", applianceID))
		return remeha.Gateway{Name: unknown, HardwareVersion: unknown, SoftwareVersion: unknown}
	case 1:
		return gateways[0]
	default:
		logger.Warn("appliance has more than one gateway, using technical information from the first one",
			slog.String("appliance", applianceID),
			slog.Int("gateways", len(gateways)),
		)
		return gateways[0]
	}
}

func applianceDevice(appliance *remeha.Appliance, info remeha.TechnicalInfo, gateway remeha.Gateway) DeviceInfo {
	return DeviceInfo{
		Identifier:   appliance.ApplianceID,
		Name:         appliance.HouseName,
		Manufacturer: manufacturer,
		Model:        info.ApplianceName,
		HWVersion:    gateway.HardwareVersion,
		SWVersion:    gateway.SoftwareVersion,
	}
}

func climateZoneDevice(applianceID string, zone *remeha.ClimateZone, gateway remeha.Gateway) DeviceInfo {
	return DeviceInfo{
		Identifier:   zone.ClimateZoneID,
		Name:         zone.Name,
		Manufacturer: manufacturer,
		Model:        gateway.Name,
		HWVersion:    gateway.HardwareVersion,
		SWVersion:    gateway.SoftwareVersion,
		ViaDevice:    applianceID,
	}
}

func hotWaterZoneDevice(applianceID string, zone *remeha.HotWaterZone) DeviceInfo {
	return DeviceInfo{
		Identifier:   zone.HotWaterZoneID,
		Name:         zone.Name,
		Manufacturer: manufacturer,
		Model:        hotWaterZoneModel,
		ViaDevice:    applianceID,
	}
}
