package service

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/NayanikaSethi/workshop/internal/models"
)

// Spare-part catalog choices presented at billing time.
const (
	PartChoiceEngine = 1
	PartChoiceBody   = 2
)

// vipDiscount is the flat discount for customers whose name marks them VIP.
const vipDiscount = 0.10

// CatalogPart resolves the operator's part choice. The catalog is closed at
// two entries; anything other than the engine choice falls back to the body
// part.
func CatalogPart(choice int) models.Part {
	if choice == PartChoiceEngine {
		return models.NewEnginePart("Turbo Booster", 5000, 25)
	}
	return models.NewBodyPart("Front Bumper", 2000, "Black")
}

// discountFor scans the customers in insertion order; the first one with a
// matching vehicle number decides the discount. No customer, no discount.
func discountFor(customers []models.Customer, vehicleNo string) float64 {
	for _, c := range customers {
		if c.VehicleNo != vehicleNo {
			continue
		}
		if strings.Contains(strings.ToLower(c.Name), "vip") {
			return vipDiscount
		}
		return 0
	}
	return 0
}

// computeTotal applies the bill formula: part price plus labor plus service
// charge, minus the discount on that subtotal.
func computeTotal(part models.Part, serviceCharge, discount float64) float64 {
	subtotal := part.Price() + part.LaborCost() + serviceCharge
	return subtotal - subtotal*discount
}

// ParseChoice converts raw operator input to a catalog choice.
func ParseChoice(input string) (int, error) {
	n, err := cast.ToIntE(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidNumeric
	}
	return n, nil
}

// ParseAmount converts raw operator input to a monetary amount.
func ParseAmount(input string) (float64, error) {
	f, err := cast.ToFloat64E(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidNumeric
	}
	return f, nil
}

// Bill is the final-bill breakdown returned to the driver for display.
type Bill struct {
	PartName      string
	PartPrice     float64
	LaborCost     float64
	ServiceCharge float64
	DiscountPct   float64
	Total         float64
	Notes         string
}
