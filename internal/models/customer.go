package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a registered workshop customer. The vehicle number is
// the correlation key used by bookings and billing; it is not unique, and
// several customers may share one.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	VehicleNo string    `json:"vehicle_no"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer constructs a Customer with a fresh ID.
func NewCustomer(name, contact, vehicleNo string) Customer {
	return Customer{
		ID:        uuid.New(),
		Name:      name,
		Contact:   contact,
		VehicleNo: vehicleNo,
		CreatedAt: time.Now().UTC(),
	}
}
