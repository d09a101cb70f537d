package upstream

import "time"

// User is the account record as the backend reports it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Vehicle is a registered vehicle.
type Vehicle struct {
	ID           string `json:"_id"`
	LicensePlate string `json:"licensePlate"`
	VehicleType  string `json:"vehicleType"`
	Make         string `json:"make"`
	Owner        string `json:"owner"`
	IsRegular    bool   `json:"isRegular"`
	IsActive     bool   `json:"isActive"`
}

// Block is a named grouping of slots.
type Block struct {
	ID        string `json:"_id"`
	BlockName string `json:"blockName"`
}

// Slot is a physical parking space. Read-only from this side; grouping for
// display happens in the display package.
type Slot struct {
	ID          string `json:"_id"`
	SlotNumber  string `json:"slotNumber"`
	Block       Block  `json:"block"`
	Floor       int    `json:"floor"`
	VehicleType string `json:"vehicleType"`
	RateType    string `json:"rateType"`
	Status      string `json:"status"`
}

// Booking is a confirmed parking session. EntryTime and ExitTime are set by
// the backend as the vehicle passes QR verification.
type Booking struct {
	ID          string     `json:"_id"`
	Vehicle     *Vehicle   `json:"vehicle"`
	ParkingSlot *Slot      `json:"parkingSlot"`
	BookingTime time.Time  `json:"bookingTime"`
	EntryTime   *time.Time `json:"entryTime"`
	ExitTime    *time.Time `json:"exitTime"`
	Status      string     `json:"status"`
	Amount      float64    `json:"amount"`
	QRCode      string     `json:"qrCode,omitempty"`
}

// Rate is a pricing record. An empty VehicleType marks a base rate that the
// display layer fans out into per-vehicle-type effective rates.
type Rate struct {
	ID          string  `json:"_id"`
	Type        string  `json:"type"`
	VehicleType string  `json:"vehicleType,omitempty"`
	HourlyRate  float64 `json:"hourlyRate"`
	Description string  `json:"description"`
}

// Request is a user-initiated hold on a slot pending admin approval. Only the
// backend transitions its status.
type Request struct {
	ID             string    `json:"_id"`
	Vehicle        *Vehicle  `json:"vehicle"`
	ParkingSlot    *Slot     `json:"parkingSlot"`
	RequestedBy    *User     `json:"requestedBy"`
	RequestTime    time.Time `json:"requestTime"`
	Status         string    `json:"status"`
	Reason         string    `json:"reason,omitempty"`
	ParkingSession *Booking  `json:"parkingSession,omitempty"`
}

// QRVerification is the backend's answer to an entry/exit scan.
type QRVerification struct {
	Valid   bool     `json:"valid"`
	Action  string   `json:"action"`
	Message string   `json:"message"`
	Session *Booking `json:"session,omitempty"`
}
