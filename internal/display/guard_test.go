package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-zone-gateway/internal/upstream"
)

func TestCheckVehicleSlot(t *testing.T) {
	testCases := []struct {
		name        string
		vehicleType string
		slotType    string
		wantErr     bool
	}{
		{name: "Matching types", vehicleType: "car", slotType: "car", wantErr: false},
		{name: "Car into truck slot", vehicleType: "car", slotType: "truck", wantErr: true},
		{name: "Truck into car slot", vehicleType: "truck", slotType: "car", wantErr: true},
		{name: "Bike alias matches motorcycle slot", vehicleType: "bike", slotType: "motorcycle", wantErr: false},
		{name: "Untyped slot treated as car slot", vehicleType: "car", slotType: "", wantErr: false},
		{name: "Motorcycle into untyped slot", vehicleType: "motorcycle", slotType: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vehicle := &upstream.Vehicle{VehicleType: tc.vehicleType}
			slot := &upstream.Slot{VehicleType: tc.slotType}
			err := CheckVehicleSlot(vehicle, slot)
			if tc.wantErr {
				require.Error(t, err)
				var mismatch *MismatchError
				assert.ErrorAs(t, err, &mismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
