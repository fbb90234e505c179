// Package store holds the in-memory state of the workshop: registered
// customers, active bookings, the service-history ledger and the cumulative
// revenue. The driver owns a single Store and passes it to the workflow
// layer; persistence is layered on top of it, not inside it.
package store

import "github.com/NayanikaSethi/workshop/internal/models"

// Store keeps all three sequences in insertion order. Lookups are linear
// scans with case-sensitive equality; on duplicate vehicle numbers the first
// insertion-order match wins. At workshop scale this is intentional.
type Store struct {
	customers []models.Customer
	active    []*models.Booking
	history   []*models.Booking
	revenue   float64
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// FromSnapshot rebuilds a Store from previously persisted state.
func FromSnapshot(customers []models.Customer, active, history []*models.Booking, revenue float64) *Store {
	return &Store{
		customers: customers,
		active:    active,
		history:   history,
		revenue:   revenue,
	}
}

// AddCustomer appends a customer.
func (s *Store) AddCustomer(c models.Customer) {
	s.customers = append(s.customers, c)
}

// AddBooking appends a booking to the active list.
func (s *Store) AddBooking(b *models.Booking) {
	s.active = append(s.active, b)
}

// FindActiveBooking returns the first active booking for the vehicle number,
// in insertion order.
func (s *Store) FindActiveBooking(vehicleNo string) (*models.Booking, bool) {
	for _, b := range s.active {
		if b.VehicleNo == vehicleNo {
			return b, true
		}
	}
	return nil, false
}

// CompleteBooking attaches the record, marks the booking completed, moves it
// from the active list into history and accumulates the revenue. The caller
// sees this as one logical step; the booking is never in both lists.
func (s *Store) CompleteBooking(b *models.Booking, record *models.ServiceRecord, total float64) {
	b.Record = record
	b.Status = models.StatusCompleted
	for i, active := range s.active {
		if active == b {
			s.active = append(s.active[:i], s.active[i+1:]...)
			break
		}
	}
	s.history = append(s.history, b)
	s.revenue += total
}

// UpdateStatus sets a new status on the booking.
func (s *Store) UpdateStatus(b *models.Booking, newStatus string) {
	b.Status = newStatus
}

// Customers returns the registered customers in insertion order.
func (s *Store) Customers() []models.Customer { return s.customers }

// ActiveBookings returns the active bookings in insertion order.
func (s *Store) ActiveBookings() []*models.Booking { return s.active }

// History returns the completed bookings in insertion order.
func (s *Store) History() []*models.Booking { return s.history }

// TotalRevenue returns the cumulative billed revenue.
func (s *Store) TotalRevenue() float64 { return s.revenue }
