package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-zone-gateway/internal/upstream"
)

func TestFanOutRates_BaseRate(t *testing.T) {
	rates := []upstream.Rate{
		{ID: "r1", Type: "NORMAL", HourlyRate: 100, Description: "Standard parking"},
	}

	out := FanOutRates(rates)
	require.Len(t, out, 3)

	byType := make(map[string]EffectiveRate, len(out))
	for _, r := range out {
		assert.True(t, r.Derived)
		assert.Equal(t, "r1", r.RateID)
		assert.Equal(t, "NORMAL", r.Type)
		byType[r.VehicleType] = r
	}

	assert.Equal(t, 100.0, byType[VehicleTypeTruck].HourlyRate)
	assert.Equal(t, 90.0, byType[VehicleTypeCar].HourlyRate)
	assert.Equal(t, 80.0, byType[VehicleTypeMotorcycle].HourlyRate)
}

func TestFanOutRates_ExplicitRatePassesThrough(t *testing.T) {
	rates := []upstream.Rate{
		{ID: "r2", Type: "VIP", VehicleType: "bike", HourlyRate: 55, Description: "VIP bike"},
	}

	out := FanOutRates(rates)
	require.Len(t, out, 1)
	assert.Equal(t, 55.0, out[0].HourlyRate, "explicit rate must not be multiplied")
	assert.Equal(t, VehicleTypeMotorcycle, out[0].VehicleType)
	assert.False(t, out[0].Derived)
}

func TestFanOutRates_Mixed(t *testing.T) {
	rates := []upstream.Rate{
		{ID: "r1", Type: "NORMAL", HourlyRate: 10},
		{ID: "r2", Type: "VIP", VehicleType: "car", HourlyRate: 20},
		{ID: "r3", Type: "VVIP", HourlyRate: 30},
	}

	out := FanOutRates(rates)
	assert.Len(t, out, 7, "two base rates fan out to three each, one passes through")
}

func TestNormalizeVehicleType(t *testing.T) {
	assert.Equal(t, VehicleTypeMotorcycle, NormalizeVehicleType("bike"))
	assert.Equal(t, VehicleTypeMotorcycle, NormalizeVehicleType("Motorcycle"))
	assert.Equal(t, VehicleTypeCar, NormalizeVehicleType(" CAR "))
	assert.Equal(t, VehicleTypeTruck, NormalizeVehicleType("truck"))
	assert.Equal(t, "", NormalizeVehicleType(""))
}
