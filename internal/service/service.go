// Package service implements the workshop workflow operations over the
// in-memory store, writing through to the snapshot files on every mutation.
// Persistence failures are logged and swallowed: the in-memory state stays
// authoritative and the operation completes.
package service

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/NayanikaSethi/workshop/internal/db"
	"github.com/NayanikaSethi/workshop/internal/models"
	"github.com/NayanikaSethi/workshop/internal/store"
)

var (
	// ErrNotFound means no active booking matches the vehicle number.
	ErrNotFound = errors.New("no active booking found for vehicle")
	// ErrInvalidNumeric means the operator typed a non-numeric value where a
	// number was required. The driver maps parse failures to this.
	ErrInvalidNumeric = errors.New("invalid numeric input")
)

// Workshop orchestrates the workflow operations.
type Workshop struct {
	store *store.Store
	db    *db.DB
	audit *db.AuditLog
}

// New constructs a Workshop over its store and persistence sinks.
func New(st *store.Store, database *db.DB, audit *db.AuditLog) *Workshop {
	return &Workshop{store: st, db: database, audit: audit}
}

// RegisterCustomer appends a new customer and saves the data snapshot.
func (w *Workshop) RegisterCustomer(name, contact, vehicleNo string) models.Customer {
	c := models.NewCustomer(name, contact, vehicleNo)
	w.store.AddCustomer(c)
	w.saveData()
	log.WithFields(log.Fields{"name": name, "vehicle_no": vehicleNo}).Info("customer registered")
	return c
}

// BookService creates a pending booking with an auto-assigned technician and
// saves the data snapshot.
func (w *Workshop) BookService(vehicleNo, customerName, serviceType string) *models.Booking {
	technician := AssignTechnician(serviceType)
	b := models.NewBooking(vehicleNo, customerName, serviceType, technician)
	w.store.AddBooking(b)
	w.saveData()
	log.WithFields(log.Fields{
		"vehicle_no":   vehicleNo,
		"service_type": serviceType,
		"technician":   technician,
	}).Info("service booked")
	return b
}

// CheckStatus reports the status and technician of the first active booking
// for the vehicle.
func (w *Workshop) CheckStatus(vehicleNo string) (status, technician string, err error) {
	b, ok := w.store.FindActiveBooking(vehicleNo)
	if !ok {
		return "", "", ErrNotFound
	}
	return b.Status, b.Technician, nil
}

// GenerateBill bills the first active booking for the vehicle: it resolves
// the spare part, applies any VIP discount, attaches the service record,
// moves the booking into history and accumulates revenue, then persists both
// snapshots and appends the audit block.
func (w *Workshop) GenerateBill(vehicleNo string, partChoice int, serviceCharge float64, notes string) (*Bill, error) {
	b, ok := w.store.FindActiveBooking(vehicleNo)
	if !ok {
		return nil, ErrNotFound
	}

	part := CatalogPart(partChoice)
	discount := discountFor(w.store.Customers(), vehicleNo)
	total := computeTotal(part, serviceCharge, discount)

	record := &models.ServiceRecord{
		MechanicNotes: notes,
		ServiceCost:   total,
		SparePart:     part,
	}
	w.store.CompleteBooking(b, record, total)

	w.saveData()
	w.saveHistory()
	if err := w.audit.Append(b); err != nil {
		log.WithError(err).Error("audit log append failed")
	}

	log.WithFields(log.Fields{
		"vehicle_no": vehicleNo,
		"part":       part.Name(),
		"discount":   discount,
		"total":      total,
	}).Info("bill generated")

	return &Bill{
		PartName:      part.Name(),
		PartPrice:     part.Price(),
		LaborCost:     part.LaborCost(),
		ServiceCharge: serviceCharge,
		DiscountPct:   discount * 100,
		Total:         total,
		Notes:         notes,
	}, nil
}

// UpdateStatus sets a new status on the first active booking for the vehicle
// and saves the data snapshot. The booking stays active whatever the value.
func (w *Workshop) UpdateStatus(vehicleNo, newStatus string) error {
	b, ok := w.store.FindActiveBooking(vehicleNo)
	if !ok {
		return ErrNotFound
	}
	w.store.UpdateStatus(b, newStatus)
	w.saveData()
	log.WithFields(log.Fields{"vehicle_no": vehicleNo, "status": newStatus}).Info("booking status updated")
	return nil
}

// DashboardSummary is the admin dashboard snapshot.
type DashboardSummary struct {
	Customers         int
	ActiveBookings    int
	CompletedServices int
	TotalRevenue      float64
}

// Dashboard returns the current counters.
func (w *Workshop) Dashboard() DashboardSummary {
	return DashboardSummary{
		Customers:         len(w.store.Customers()),
		ActiveBookings:    len(w.store.ActiveBookings()),
		CompletedServices: len(w.store.History()),
		TotalRevenue:      w.store.TotalRevenue(),
	}
}

// ServiceHistory returns the completed bookings in insertion order.
func (w *Workshop) ServiceHistory() []*models.Booking {
	return w.store.History()
}

// Flush writes both snapshots; called at orderly exit.
func (w *Workshop) Flush() {
	w.saveData()
	w.saveHistory()
}

func (w *Workshop) saveData() {
	if err := w.db.SaveData(w.store.Customers(), w.store.ActiveBookings(), w.store.TotalRevenue()); err != nil {
		log.WithError(err).Error("data snapshot save failed")
	}
}

func (w *Workshop) saveHistory() {
	if err := w.db.SaveHistory(w.store.History()); err != nil {
		log.WithError(err).Error("history snapshot save failed")
	}
}
