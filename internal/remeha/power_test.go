package remeha

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCOP(t *testing.T) {
	tests := []struct {
		name      string
		delivered float64
		consumed  float64
		want      COP
		defined   bool
	}{
		{name: "regular", delivered: 30, consumed: 10, want: 3, defined: true},
		{name: "nothing delivered", delivered: 0, consumed: 4, want: 0, defined: true},
		{name: "nothing consumed", delivered: 12, consumed: 0, want: COP(math.Inf(1))},
		{name: "negative zero", delivered: 12, consumed: math.Copysign(0, -1), want: COP(math.Inf(1))},
		{name: "all zero", want: COP(math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCOP(tt.delivered, tt.consumed)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.defined, got.Defined())
		})
	}
}

func TestZeroPowerRecord(t *testing.T) {
	r := ZeroPowerRecord()
	assert.Zero(t, r.HeatingEnergyConsumed)
	assert.Zero(t, r.CoolingEnergyDelivered)
	assert.True(t, math.IsInf(float64(r.HeatingCOP), 1))
	assert.True(t, math.IsInf(float64(r.CoolingCOP), 1))
	assert.True(t, math.IsInf(float64(r.HotWaterCOP), 1))
}

func TestPowerRecord_Add(t *testing.T) {
	a := PowerRecord{HeatingEnergyConsumed: 4, HeatingEnergyDelivered: 12, HotWaterEnergyConsumed: 1, HotWaterEnergyDelivered: 2}
	b := PowerRecord{HeatingEnergyConsumed: 6, HeatingEnergyDelivered: 18, CoolingEnergyDelivered: 5}

	sum := a.Add(b)
	assert.Equal(t, sum, b.Add(a))
	assert.Equal(t, 10.0, sum.HeatingEnergyConsumed)
	assert.Equal(t, 30.0, sum.HeatingEnergyDelivered)
	assert.Equal(t, 1.0, sum.HotWaterEnergyConsumed)
	assert.Equal(t, 5.0, sum.CoolingEnergyDelivered)

	// COP is recomputed from the summed counters, not summed itself
	assert.Equal(t, COP(3), sum.HeatingCOP)
	assert.Equal(t, COP(2), sum.HotWaterCOP)
	assert.False(t, sum.CoolingCOP.Defined())
}

func TestPowerRecord_Diff(t *testing.T) {
	current := PowerRecord{HeatingEnergyConsumed: 10, HeatingEnergyDelivered: 30, HotWaterEnergyConsumed: 2}
	previous := PowerRecord{HeatingEnergyConsumed: 4, HeatingEnergyDelivered: 12, HotWaterEnergyConsumed: 3}

	diff := current.Diff(previous)
	assert.Equal(t, diff, previous.Diff(current))
	assert.Equal(t, 6.0, diff.HeatingEnergyConsumed)
	assert.Equal(t, 18.0, diff.HeatingEnergyDelivered)
	assert.Equal(t, 1.0, diff.HotWaterEnergyConsumed)
	assert.Equal(t, COP(3), diff.HeatingCOP)
	assert.Equal(t, COP(0), diff.HotWaterCOP)
	assert.False(t, diff.CoolingCOP.Defined())
}

func TestCOP_JSON(t *testing.T) {
	r := PowerRecord{HeatingEnergyConsumed: 2, HeatingEnergyDelivered: 5}.WithCOP()
	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
	"heatingEnergyConsumed":2, "hotWaterEnergyConsumed":0, "coolingEnergyConsumed":0,
	"heatingEnergyDelivered":5, "hotWaterEnergyDelivered":0, "coolingEnergyDelivered":0,
	"heatingCOP":2.5, "coolingCOP":null, "hotWaterCOP":null
}`, string(body))

	var decoded PowerRecord
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, r, decoded)
}

func TestCOP_String(t *testing.T) {
	assert.Equal(t, "2.50", COP(2.5).String())
	assert.Equal(t, "n/a", COP(math.Inf(1)).String())
}
