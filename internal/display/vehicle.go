package display

import "strings"

// Canonical vehicle types as the backend stores them.
const (
	VehicleTypeCar        = "car"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeTruck      = "truck"
)

// DefaultVehicleType is applied when a slot record carries no vehicle type.
// Two variants of the upstream feed disagree here; the documented behavior is
// to group untyped slots as car slots.
const DefaultVehicleType = VehicleTypeCar

// NormalizeVehicleType folds case and the "bike" alias the rate feed uses
// into the canonical vehicle type names.
func NormalizeVehicleType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bike", VehicleTypeMotorcycle:
		return VehicleTypeMotorcycle
	case VehicleTypeTruck:
		return VehicleTypeTruck
	case VehicleTypeCar:
		return VehicleTypeCar
	case "":
		return ""
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}
