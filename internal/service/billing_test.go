package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NayanikaSethi/workshop/internal/models"
)

func TestCatalogPart(t *testing.T) {
	engine := CatalogPart(PartChoiceEngine)
	assert.Equal(t, "Turbo Booster", engine.Name())
	assert.Equal(t, 5000.0, engine.Price())
	assert.Equal(t, 1000.0, engine.LaborCost())

	body := CatalogPart(PartChoiceBody)
	assert.Equal(t, "Front Bumper", body.Name())
	assert.Equal(t, 2000.0, body.Price())
	assert.Equal(t, 700.0, body.LaborCost())

	// the catalog is closed: any other choice falls back to the body part
	for _, choice := range []int{0, 3, -1, 99} {
		assert.Equal(t, "Front Bumper", CatalogPart(choice).Name(), "choice %d", choice)
	}
}

func TestComputeTotal(t *testing.T) {
	engine := models.NewEnginePart("Turbo Booster", 5000, 25)
	body := models.NewBodyPart("Front Bumper", 2000, "Black")

	// 5000 + 1000 + 2000 = 8000, minus 10% = 7200
	assert.Equal(t, 7200.0, computeTotal(engine, 2000, 0.10))
	// 2000 + 700 + 500 = 3200, no discount
	assert.Equal(t, 3200.0, computeTotal(body, 500, 0))
}

func TestDiscountFor(t *testing.T) {
	customers := []models.Customer{
		models.NewCustomer("Alice", "999", "MH01"),
		models.NewCustomer("VIP Bob", "111", "KA02"),
		models.NewCustomer("vip carol", "222", "DL03"),
		models.NewCustomer("Dave", "333", "KA02"), // later duplicate never consulted
	}

	tests := []struct {
		name      string
		vehicleNo string
		expected  float64
	}{
		{"plain customer", "MH01", 0},
		{"vip uppercase prefix", "KA02", vipDiscount},
		{"vip lowercase", "DL03", vipDiscount},
		{"unknown vehicle", "XX99", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, discountFor(customers, tt.vehicleNo))
		})
	}
}

func TestParseChoice(t *testing.T) {
	n, err := ParseChoice(" 1 ")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, input := range []string{"abc", "", "1.5x"} {
		_, err := ParseChoice(input)
		assert.ErrorIs(t, err, ErrInvalidNumeric, "input %q", input)
	}
}

func TestParseAmount(t *testing.T) {
	f, err := ParseAmount("2000")
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, f)

	f, err = ParseAmount("500.50")
	assert.NoError(t, err)
	assert.Equal(t, 500.5, f)

	_, err = ParseAmount("five hundred")
	assert.ErrorIs(t, err, ErrInvalidNumeric)
}

func TestDiscountForFirstMatchDecides(t *testing.T) {
	customers := []models.Customer{
		models.NewCustomer("Plain Eve", "444", "TN04"),
		models.NewCustomer("VIP Eve", "444", "TN04"),
	}
	// the first insertion-order match is not a VIP, so no discount even
	// though a later customer with the same vehicle is
	assert.Equal(t, 0.0, discountFor(customers, "TN04"))
}
