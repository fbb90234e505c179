package db

import (
	"fmt"
	"os"

	"github.com/NayanikaSethi/workshop/internal/models"
)

// AuditLog appends one human-readable block per completed billing. The file
// is opened in append mode per event and never read back by the system.
type AuditLog struct {
	path string
}

// NewAuditLog returns an AuditLog writing to the given path.
func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path}
}

// Append writes one record block for a completed booking. The booking must
// carry its service record.
func (a *AuditLog) Append(b *models.Booking) error {
	if b.Record == nil {
		return fmt.Errorf("booking %s has no service record", b.VehicleNo)
	}
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log %s: %w", a.path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f,
		"Customer: %s\nVehicle: %s\nService Type: %s\nTechnician: %s\nBill: ₹%.2f\nNotes: %s\nStatus: %s\n----------------------------------\n",
		b.CustomerName, b.VehicleNo, b.ServiceType, b.Technician,
		b.Record.ServiceCost, b.Record.MechanicNotes, b.Status)
	if err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}
