package models

import (
	"time"

	"github.com/google/uuid"
)

// Statuses the system assigns itself. The update-status operation accepts
// arbitrary free text, so Booking.Status stays a plain string.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// ServiceRecord captures the outcome of a completed service: the mechanic's
// notes, the final billed total and the spare part that was fitted.
type ServiceRecord struct {
	MechanicNotes string  `json:"mechanic_notes"`
	ServiceCost   float64 `json:"service_cost"`
	SparePart     Part    `json:"spare_part"`
}

// serviceRecordJSON is the wire shape of a ServiceRecord; the Part interface
// is flattened into its kind-tagged envelope.
type serviceRecordJSON struct {
	MechanicNotes string       `json:"mechanic_notes"`
	ServiceCost   float64      `json:"service_cost"`
	SparePart     partEnvelope `json:"spare_part"`
}

// MarshalJSON encodes the spare part with its kind tag.
func (r ServiceRecord) MarshalJSON() ([]byte, error) {
	env, err := envelopeFor(r.SparePart)
	if err != nil {
		return nil, err
	}
	return json.Marshal(serviceRecordJSON{
		MechanicNotes: r.MechanicNotes,
		ServiceCost:   r.ServiceCost,
		SparePart:     env,
	})
}

// UnmarshalJSON restores the concrete part variant from the kind tag.
func (r *ServiceRecord) UnmarshalJSON(data []byte) error {
	var aux serviceRecordJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	part, err := aux.SparePart.part()
	if err != nil {
		return err
	}
	r.MechanicNotes = aux.MechanicNotes
	r.ServiceCost = aux.ServiceCost
	r.SparePart = part
	return nil
}

// Booking is a service job booked against a vehicle. Record is nil until the
// booking is billed and completed.
type Booking struct {
	ID           uuid.UUID      `json:"id"`
	VehicleNo    string         `json:"vehicle_no"`
	CustomerName string         `json:"customer_name"`
	ServiceType  string         `json:"service_type"`
	Technician   string         `json:"technician"`
	Status       string         `json:"status"`
	Record       *ServiceRecord `json:"record,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// NewBooking constructs a pending Booking for the given vehicle.
func NewBooking(vehicleNo, customerName, serviceType, technician string) *Booking {
	return &Booking{
		ID:           uuid.New(),
		VehicleNo:    vehicleNo,
		CustomerName: customerName,
		ServiceType:  serviceType,
		Technician:   technician,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}
