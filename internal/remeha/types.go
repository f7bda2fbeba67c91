package remeha

import (
	"encoding/json"
	"errors"
	"time"
)

// Item is any record of the dashboard that carries its own identifier: appliances, climate zones and hot water zones.
type Item interface {
	ItemID() string
	ItemName() string
}

var (
	_ Item = &Appliance{}
	_ Item = &ClimateZone{}
	_ Item = &HotWaterZone{}
)

// Dashboard is the response of the dashboard call: all appliances of the account, with their zones.
type Dashboard struct {
	Appliances []Appliance `json:"appliances" yaml:"appliances"`
}

// Appliance is a physical heating unit. The consumption blocks are not part of the dashboard call:
// they are filled in by the poller.
type Appliance struct {
	ApplianceID                   string                        `json:"applianceId" yaml:"applianceId"`
	HouseName                     string                        `json:"houseName" yaml:"houseName"`
	ErrorStatus                   string                        `json:"errorStatus,omitempty" yaml:"errorStatus,omitempty"`
	WaterPressure                 float64                       `json:"waterPressure" yaml:"waterPressure"`
	WaterPressureOK               bool                          `json:"waterPressureOK" yaml:"waterPressureOK"`
	OutdoorTemperature            *float64                      `json:"outdoorTemperature" yaml:"outdoorTemperature"`
	OutdoorTemperatureInformation OutdoorTemperatureInformation `json:"outdoorTemperatureInformation" yaml:"outdoorTemperatureInformation"`
	ClimateZones                  []ClimateZone                 `json:"climateZones" yaml:"climateZones"`
	HotWaterZones                 []HotWaterZone                `json:"hotWaterZones" yaml:"hotWaterZones"`

	ConsumptionData         *PowerRecord `json:"consumptionData,omitempty" yaml:"consumptionData,omitempty"`
	IncreaseConsumptionData *PowerRecord `json:"increaseConsumptionData,omitempty" yaml:"increaseConsumptionData,omitempty"`
	TotalConsumptionData    *PowerRecord `json:"totalConsumptionData,omitempty" yaml:"totalConsumptionData,omitempty"`
	YearlyConsumptionData   *PowerRecord `json:"yearlyConsumptionData,omitempty" yaml:"yearlyConsumptionData,omitempty"`
	MonthlyConsumptionData  *PowerRecord `json:"monthlyConsumptionData,omitempty" yaml:"monthlyConsumptionData,omitempty"`
}

func (a *Appliance) ItemID() string   { return a.ApplianceID }
func (a *Appliance) ItemName() string { return a.HouseName }

func (a *Appliance) UnmarshalJSON(b []byte) error {
	type raw Appliance
	if err := json.Unmarshal(b, (*raw)(a)); err != nil {
		return err
	}
	if a.ApplianceID == "" {
		return errors.New("appliance: missing applianceId")
	}
	return nil
}

type OutdoorTemperatureInformation struct {
	CloudOutdoorTemperature       *float64 `json:"cloudOutdoorTemperature" yaml:"cloudOutdoorTemperature"`
	CloudOutdoorTemperatureStatus string   `json:"cloudOutdoorTemperatureStatus,omitempty" yaml:"cloudOutdoorTemperatureStatus,omitempty"`
}

// ClimateZone is a heating zone of an appliance.
type ClimateZone struct {
	ClimateZoneID           string     `json:"climateZoneId" yaml:"climateZoneId"`
	Name                    string     `json:"name" yaml:"name"`
	ZoneMode                string     `json:"zoneMode" yaml:"zoneMode"`
	RoomTemperature         *float64   `json:"roomTemperature" yaml:"roomTemperature"`
	SetPoint                float64    `json:"setPoint" yaml:"setPoint"`
	CurrentScheduleSetPoint float64    `json:"currentScheduleSetPoint" yaml:"currentScheduleSetPoint"`
	NextSetpoint            float64    `json:"nextSetpoint" yaml:"nextSetpoint"`
	NextSwitchTime          *time.Time `json:"nextSwitchTime,omitempty" yaml:"nextSwitchTime,omitempty"`
	ActiveComfortDemand     string     `json:"activeComfortDemand" yaml:"activeComfortDemand"`
	FirePlaceModeActive     bool       `json:"firePlaceModeActive" yaml:"firePlaceModeActive"`
}

func (z *ClimateZone) ItemID() string   { return z.ClimateZoneID }
func (z *ClimateZone) ItemName() string { return z.Name }

// Demanding reports whether the zone is currently asking for heat.
func (z *ClimateZone) Demanding() bool {
	return z.ActiveComfortDemand == "ProducingHeat" || z.ActiveComfortDemand == "RequestingHeat"
}

func (z *ClimateZone) UnmarshalJSON(b []byte) error {
	type raw ClimateZone
	if err := json.Unmarshal(b, (*raw)(z)); err != nil {
		return err
	}
	if z.ClimateZoneID == "" {
		return errors.New("climate zone: missing climateZoneId")
	}
	return nil
}

// HotWaterZone is a domestic hot water zone of an appliance.
type HotWaterZone struct {
	HotWaterZoneID string  `json:"hotWaterZoneId" yaml:"hotWaterZoneId"`
	Name           string  `json:"name" yaml:"name"`
	DHWZoneMode    string  `json:"dhwZoneMode" yaml:"dhwZoneMode"`
	DHWStatus      string  `json:"dhwStatus" yaml:"dhwStatus"`
	DHWTemperature float64 `json:"dhwTemperature" yaml:"dhwTemperature"`
	TargetSetpoint float64 `json:"targetSetpoint" yaml:"targetSetpoint"`
}

func (z *HotWaterZone) ItemID() string   { return z.HotWaterZoneID }
func (z *HotWaterZone) ItemName() string { return z.Name }

// Heating reports whether the hot water zone is currently being heated.
func (z *HotWaterZone) Heating() bool {
	return z.DHWStatus == "ProducingHeat"
}

func (z *HotWaterZone) UnmarshalJSON(b []byte) error {
	type raw HotWaterZone
	if err := json.Unmarshal(b, (*raw)(z)); err != nil {
		return err
	}
	if z.HotWaterZoneID == "" {
		return errors.New("hot water zone: missing hotWaterZoneId")
	}
	return nil
}

// TechnicalInfo holds the static metadata of an appliance.
type TechnicalInfo struct {
	ApplianceName             string    `json:"applianceName" yaml:"applianceName"`
	InternetConnectedGateways []Gateway `json:"internetConnectedGateways" yaml:"internetConnectedGateways"`
}

// Gateway is the internet-connected module of an appliance.
type Gateway struct {
	Name            string `json:"name" yaml:"name"`
	HardwareVersion string `json:"hardwareVersion" yaml:"hardwareVersion"`
	SoftwareVersion string `json:"softwareVersion" yaml:"softwareVersion"`
}
