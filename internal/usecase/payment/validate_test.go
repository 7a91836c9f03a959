package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	paymentdto "github.com/metalaloud/royalty-service/internal/usecase/dto/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passes the Luhn checksum
const validCardNumber = "4532015112830366"

func validInput() *paymentdto.ProcessPaymentInput {
	return &paymentdto.ProcessPaymentInput{
		UserID: "user-1",
		Amount: 50,
		Card: domain.CardDetails{
			Number:      validCardNumber,
			ExpiryMonth: 12,
			ExpiryYear:  2030,
			CVV:         "123",
			HolderName:  "Rob Halford",
		},
		Items: []paymentdto.ItemInput{{ProductID: "prod-1", Quantity: 2}},
		ShippingAddress: domain.ShippingAddress{
			FullName:   "Rob Halford",
			Street:     "1 Steel Mill Rd",
			City:       "Birmingham",
			PostalCode: "B1 1AA",
			Country:    "UK",
		},
	}
}

func assertCategory(t *testing.T, err error, want domain.ValidationCategory) {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	assert.Equal(t, want, verr.Category)
}

func TestValidatePaymentInput(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("valid input passes", func(t *testing.T) {
		assert.NoError(t, validatePaymentInput(validInput(), now))
	})

	t.Run("zero amount", func(t *testing.T) {
		input := validInput()
		input.Amount = 0
		assertCategory(t, validatePaymentInput(input, now), domain.CategoryAmount)
	})

	t.Run("amount above cap", func(t *testing.T) {
		input := validInput()
		input.Amount = 10000.01
		assertCategory(t, validatePaymentInput(input, now), domain.CategoryAmount)
	})

	t.Run("empty cart", func(t *testing.T) {
		input := validInput()
		input.Items = nil
		assertCategory(t, validatePaymentInput(input, now), domain.CategoryGeneric)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		input := validInput()
		input.Items[0].Quantity = 0
		assertCategory(t, validatePaymentInput(input, now), domain.CategoryGeneric)
	})
}

func TestValidateCard(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("spaced number accepted", func(t *testing.T) {
		card := validInput().Card
		card.Number = "4532 0151 1283 0366"
		assert.NoError(t, validateCard(card, now))
	})

	t.Run("short number", func(t *testing.T) {
		card := validInput().Card
		card.Number = "4532015112830"
		assertCategory(t, validateCard(card, now), domain.CategoryCard)
	})

	t.Run("non-digit number", func(t *testing.T) {
		card := validInput().Card
		card.Number = "4532a15112830366"
		assertCategory(t, validateCard(card, now), domain.CategoryCard)
	})

	t.Run("checksum failure", func(t *testing.T) {
		card := validInput().Card
		card.Number = "4532015112830367"
		assertCategory(t, validateCard(card, now), domain.CategoryCard)
	})

	t.Run("expiry month out of range", func(t *testing.T) {
		card := validInput().Card
		card.ExpiryMonth = 13
		assertCategory(t, validateCard(card, now), domain.CategoryCard)
	})

	t.Run("card valid through its expiry month", func(t *testing.T) {
		card := validInput().Card
		card.ExpiryMonth = 3
		card.ExpiryYear = 2026
		assert.NoError(t, validateCard(card, now))
	})

	t.Run("card expired last month", func(t *testing.T) {
		card := validInput().Card
		card.ExpiryMonth = 2
		card.ExpiryYear = 2026
		assertCategory(t, validateCard(card, now), domain.CategoryCard)
	})

	t.Run("CVV length", func(t *testing.T) {
		card := validInput().Card
		card.CVV = "12"
		assertCategory(t, validateCard(card, now), domain.CategoryCard)

		card.CVV = "12345"
		assertCategory(t, validateCard(card, now), domain.CategoryCard)

		card.CVV = "1234"
		assert.NoError(t, validateCard(card, now))
	})
}

func TestValidateShipping(t *testing.T) {
	address := validInput().ShippingAddress
	assert.NoError(t, validateShipping(address))

	address.City = "   "
	assertCategory(t, validateShipping(address), domain.CategoryShipping)
}

func TestCheckAmountMatch(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		assert.NoError(t, checkAmountMatch(50.00, 50.00))
	})

	t.Run("one cent drift tolerated", func(t *testing.T) {
		assert.NoError(t, checkAmountMatch(50.01, 50.00))
		assert.NoError(t, checkAmountMatch(49.99, 50.00))
	})

	t.Run("two cents rejected", func(t *testing.T) {
		assertCategory(t, checkAmountMatch(50.02, 50.00), domain.CategoryAmount)
	})
}

func TestLuhnValid(t *testing.T) {
	assert.True(t, luhnValid("4532015112830366"))
	assert.False(t, luhnValid("4532015112830367"))
	assert.True(t, luhnValid("0000000000000000"))
}
