package generator

import (
	"errors"
	"fmt"

	"order-datagen/internal/identity"
	"order-datagen/internal/models"
)

const (
	minQuantity  = 1
	maxQuantity  = 8
	minUnitPrice = 5.0
	maxUnitPrice = 800.0
	maxProductID = 9999
)

// Synthesizer builds order records over a fixed window and distribution
type Synthesizer struct {
	vocab  *Vocabulary
	window Window
	mode   Mode
}

// NewSynthesizer validates the window and mode once so Row never sees bad input
func NewSynthesizer(vocab *Vocabulary, window Window, mode Mode) (*Synthesizer, error) {
	if vocab == nil || len(vocab.Suppliers) == 0 || len(vocab.Manufacturers) == 0 {
		return nil, errors.New("vocabulary has no suppliers or manufacturers")
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	return &Synthesizer{vocab: vocab, window: window, mode: mode}, nil
}

// Row synthesizes the record at index. index only feeds order_id; all
// randomness comes from src, in this order: quantity, unit price, discount,
// order date, payment delay, status, customer name, email, city, state,
// product id, product name, category, supplier, manufacturer, payment method.
func (s *Synthesizer) Row(src Source, index int) (models.Record, error) {
	quantity := int64(src.IntRange(minQuantity, maxQuantity))
	unitPrice := RoundCents(src.Float64Range(minUnitPrice, maxUnitPrice))
	discount := pick(src, discountPool)

	orderedAt, err := Sample(src, s.window.Start, s.window.End, s.mode)
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to sample order date for row %d: %w", index, err)
	}

	delay := pick(src, delayPool)
	paidAt := PaymentDate(orderedAt, delay, s.window.End)

	gross := GrossValue(quantity, unitPrice)
	net := NetValue(gross, discount)

	status := src.RandomString(OrderStatuses)
	name := identity.Name(src)
	email, err := identity.Email(src)
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to build customer email for row %d: %w", index, err)
	}
	city := identity.City(src)
	state := identity.StateAbbr(src)

	return models.Record{
		SchemaVersion:      models.SchemaVersion,
		OrderID:            fmt.Sprintf("P%07d", index),
		OrderDateTimeUTC:   FormatTimestamp(orderedAt),
		Status:             status,
		CustomerName:       name,
		CustomerEmail:      email,
		CustomerCity:       city,
		CustomerState:      state,
		ProductID:          fmt.Sprintf("PRD%06d", src.IntRange(0, maxProductID)),
		ProductName:        src.RandomString(Products),
		ProductCategory:    src.RandomString(ProductCategories),
		SupplierName:       src.RandomString(s.vocab.Suppliers),
		ManufacturerName:   src.RandomString(s.vocab.Manufacturers),
		Quantity:           quantity,
		UnitPrice:          unitPrice,
		Discount:           discount,
		GrossValue:         gross,
		NetValue:           net,
		PaymentMethod:      src.RandomString(PaymentMethods),
		PaymentDateTimeUTC: FormatTimestamp(paidAt),
		IsLate:             delay > 0,
	}, nil
}
