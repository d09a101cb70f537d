package display

import (
	"fmt"

	"parking-zone-gateway/internal/upstream"
)

// MismatchError is a local pre-submission rejection: the chosen vehicle
// cannot use the chosen slot. Nothing is sent upstream when this fires.
type MismatchError struct {
	VehicleType string
	SlotType    string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("selected vehicle type %q does not match the slot's vehicle type %q", e.VehicleType, e.SlotType)
}

// CheckVehicleSlot verifies the vehicle's type equals the slot's type before
// a booking or parking request is submitted. This is the only client-side
// correctness check; everything else (availability races, double booking,
// pricing) is the backend's, and its rejections are final.
func CheckVehicleSlot(vehicle *upstream.Vehicle, slot *upstream.Slot) error {
	vt := NormalizeVehicleType(vehicle.VehicleType)
	st := NormalizeVehicleType(slot.VehicleType)
	if st == "" {
		st = DefaultVehicleType
	}
	if vt != st {
		return &MismatchError{VehicleType: vehicle.VehicleType, SlotType: st}
	}
	return nil
}
