package remeha

import (
	"math"
	"strconv"
)

// PowerRecord holds the energy counters (in kWh) reported for a consumption window.
// The COP fields are derived from the counters by WithCOP and are never set independently.
type PowerRecord struct {
	HeatingEnergyConsumed   float64 `json:"heatingEnergyConsumed" yaml:"heatingEnergyConsumed"`
	HotWaterEnergyConsumed  float64 `json:"hotWaterEnergyConsumed" yaml:"hotWaterEnergyConsumed"`
	CoolingEnergyConsumed   float64 `json:"coolingEnergyConsumed" yaml:"coolingEnergyConsumed"`
	HeatingEnergyDelivered  float64 `json:"heatingEnergyDelivered" yaml:"heatingEnergyDelivered"`
	HotWaterEnergyDelivered float64 `json:"hotWaterEnergyDelivered" yaml:"hotWaterEnergyDelivered"`
	CoolingEnergyDelivered  float64 `json:"coolingEnergyDelivered" yaml:"coolingEnergyDelivered"`
	HeatingCOP              COP     `json:"heatingCOP" yaml:"heatingCOP"`
	CoolingCOP              COP     `json:"coolingCOP" yaml:"coolingCOP"`
	HotWaterCOP             COP     `json:"hotWaterCOP" yaml:"hotWaterCOP"`
}

// ZeroPowerRecord returns a record with all counters at zero. All COPs are undefined (+Inf).
func ZeroPowerRecord() PowerRecord {
	return PowerRecord{}.WithCOP()
}

// WithCOP returns a copy of the record with the COP fields computed from its energy counters.
func (r PowerRecord) WithCOP() PowerRecord {
	r.HeatingCOP = NewCOP(r.HeatingEnergyDelivered, r.HeatingEnergyConsumed)
	r.CoolingCOP = NewCOP(r.CoolingEnergyDelivered, r.CoolingEnergyConsumed)
	r.HotWaterCOP = NewCOP(r.HotWaterEnergyDelivered, r.HotWaterEnergyConsumed)
	return r
}

// Add returns the field-wise sum of both records.
func (r PowerRecord) Add(o PowerRecord) PowerRecord {
	return PowerRecord{
		HeatingEnergyConsumed:   r.HeatingEnergyConsumed + o.HeatingEnergyConsumed,
		HotWaterEnergyConsumed:  r.HotWaterEnergyConsumed + o.HotWaterEnergyConsumed,
		CoolingEnergyConsumed:   r.CoolingEnergyConsumed + o.CoolingEnergyConsumed,
		HeatingEnergyDelivered:  r.HeatingEnergyDelivered + o.HeatingEnergyDelivered,
		HotWaterEnergyDelivered: r.HotWaterEnergyDelivered + o.HotWaterEnergyDelivered,
		CoolingEnergyDelivered:  r.CoolingEnergyDelivered + o.CoolingEnergyDelivered,
	}.WithCOP()
}

// Diff returns the field-wise absolute difference between both records.
func (r PowerRecord) Diff(o PowerRecord) PowerRecord {
	return PowerRecord{
		HeatingEnergyConsumed:   math.Abs(r.HeatingEnergyConsumed - o.HeatingEnergyConsumed),
		HotWaterEnergyConsumed:  math.Abs(r.HotWaterEnergyConsumed - o.HotWaterEnergyConsumed),
		CoolingEnergyConsumed:   math.Abs(r.CoolingEnergyConsumed - o.CoolingEnergyConsumed),
		HeatingEnergyDelivered:  math.Abs(r.HeatingEnergyDelivered - o.HeatingEnergyDelivered),
		HotWaterEnergyDelivered: math.Abs(r.HotWaterEnergyDelivered - o.HotWaterEnergyDelivered),
		CoolingEnergyDelivered:  math.Abs(r.CoolingEnergyDelivered - o.CoolingEnergyDelivered),
	}.WithCOP()
}

// COP is a coefficient of performance. +Inf means undefined (nothing consumed).
type COP float64

// NewCOP returns delivered/consumed, or +Inf if consumed is zero (either sign).
func NewCOP(delivered, consumed float64) COP {
	if consumed == 0 {
		return COP(math.Inf(1))
	}
	return COP(delivered / consumed)
}

// Defined reports whether the COP has a finite value.
func (c COP) Defined() bool {
	return !math.IsInf(float64(c), 0) && !math.IsNaN(float64(c))
}

// MarshalJSON encodes an undefined COP as null, as JSON has no representation for infinity.
func (c COP) MarshalJSON() ([]byte, error) {
	if !c.Defined() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(c), 'f', -1, 64), nil
}

// UnmarshalJSON decodes null as an undefined COP.
func (c *COP) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = COP(math.Inf(1))
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err == nil {
		*c = COP(f)
	}
	return err
}

func (c COP) String() string {
	if !c.Defined() {
		return "n/a"
	}
	return strconv.FormatFloat(float64(c), 'f', 2, 64)
}
