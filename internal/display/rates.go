package display

import "parking-zone-gateway/internal/upstream"

// fanOutMultipliers scales a base rate into per-vehicle-type rates.
// Trucks pay the full rate, cars 90%, motorcycles 80%.
var fanOutMultipliers = []struct {
	vehicleType string
	factor      float64
}{
	{VehicleTypeTruck, 1.0},
	{VehicleTypeCar, 0.9},
	{VehicleTypeMotorcycle, 0.8},
}

// EffectiveRate is a per-vehicle-type rate ready for rendering. Derived
// marks rates produced by fanning out a base rate; these never exist
// upstream and are never written back.
type EffectiveRate struct {
	RateID      string  `json:"rateId"`
	Type        string  `json:"type"`
	VehicleType string  `json:"vehicleType"`
	HourlyRate  float64 `json:"hourlyRate"`
	Description string  `json:"description"`
	Derived     bool    `json:"derived"`
}

// FanOutRates expands base rates (no vehicle type) into one effective rate
// per vehicle type using the fixed multipliers. Rates that already name a
// vehicle type pass through unmodified.
func FanOutRates(rates []upstream.Rate) []EffectiveRate {
	out := make([]EffectiveRate, 0, len(rates))
	for _, rate := range rates {
		if rate.VehicleType != "" {
			out = append(out, EffectiveRate{
				RateID:      rate.ID,
				Type:        rate.Type,
				VehicleType: NormalizeVehicleType(rate.VehicleType),
				HourlyRate:  rate.HourlyRate,
				Description: rate.Description,
			})
			continue
		}
		for _, m := range fanOutMultipliers {
			out = append(out, EffectiveRate{
				RateID:      rate.ID,
				Type:        rate.Type,
				VehicleType: m.vehicleType,
				HourlyRate:  rate.HourlyRate * m.factor,
				Description: rate.Description,
				Derived:     true,
			})
		}
	}
	return out
}
