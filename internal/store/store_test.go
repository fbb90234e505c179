package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NayanikaSethi/workshop/internal/models"
)

func TestFindActiveBookingFirstMatchWins(t *testing.T) {
	s := New()
	first := models.NewBooking("MH01", "Alice", "engine tuning", "Rahul - Engine Specialist")
	second := models.NewBooking("MH01", "Alice", "paint", "Suresh - General Service")
	s.AddBooking(first)
	s.AddBooking(second)

	got, ok := s.FindActiveBooking("MH01")
	assert.True(t, ok)
	assert.Same(t, first, got)
}

func TestFindActiveBookingCaseSensitive(t *testing.T) {
	s := New()
	s.AddBooking(models.NewBooking("MH01", "Alice", "paint", "Suresh - General Service"))

	_, ok := s.FindActiveBooking("mh01")
	assert.False(t, ok)
}

func TestCompleteBookingMovesToHistory(t *testing.T) {
	s := New()
	b := models.NewBooking("KA02", "VIP Bob", "engine tuning", "Rahul - Engine Specialist")
	s.AddBooking(b)

	record := &models.ServiceRecord{
		MechanicNotes: "ok",
		ServiceCost:   7200,
		SparePart:     models.NewEnginePart("Turbo Booster", 5000, 25),
	}
	s.CompleteBooking(b, record, 7200)

	assert.Empty(t, s.ActiveBookings(), "completed booking must leave the active list")
	assert.Len(t, s.History(), 1)
	assert.Equal(t, models.StatusCompleted, b.Status)
	assert.Same(t, record, b.Record)
	assert.Equal(t, 7200.0, s.TotalRevenue())
}

func TestRevenueEqualsHistorySum(t *testing.T) {
	s := New()
	totals := []float64{7200, 3200, 1500}
	for i, total := range totals {
		b := models.NewBooking("V"+string(rune('A'+i)), "c", "paint", "Suresh - General Service")
		s.AddBooking(b)
		s.CompleteBooking(b, &models.ServiceRecord{
			ServiceCost: total,
			SparePart:   models.NewBodyPart("Front Bumper", 2000, "Black"),
		}, total)
	}

	var sum float64
	for _, b := range s.History() {
		assert.Equal(t, models.StatusCompleted, b.Status)
		assert.NotNil(t, b.Record)
		assert.GreaterOrEqual(t, b.Record.ServiceCost, 0.0)
		sum += b.Record.ServiceCost
	}
	assert.Equal(t, sum, s.TotalRevenue())
}

func TestUpdateStatusIdempotent(t *testing.T) {
	s := New()
	b := models.NewBooking("DL03", "Carol", "paint", "Suresh - General Service")
	s.AddBooking(b)

	s.UpdateStatus(b, "In Progress")
	s.UpdateStatus(b, "In Progress")

	assert.Equal(t, "In Progress", b.Status)
	assert.Len(t, s.ActiveBookings(), 1, "update must not move the booking")
	assert.Empty(t, s.History())
}

func TestFromSnapshotPreservesOrder(t *testing.T) {
	customers := []models.Customer{
		models.NewCustomer("Alice", "999", "MH01"),
		models.NewCustomer("VIP Bob", "111", "KA02"),
	}
	active := []*models.Booking{
		models.NewBooking("MH01", "Alice", "AC cooling", "Vikram - AC Repair"),
	}
	s := FromSnapshot(customers, active, nil, 42)

	assert.Equal(t, customers, s.Customers())
	assert.Equal(t, active, s.ActiveBookings())
	assert.Empty(t, s.History())
	assert.Equal(t, 42.0, s.TotalRevenue())
}
