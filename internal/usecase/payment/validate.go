package usecase

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/metalaloud/royalty-service/internal/domain"
	paymentdto "github.com/metalaloud/royalty-service/internal/usecase/dto/payment"
)

const (
	maxPaymentAmount = 10000.0

	// amountTolerance absorbs client-side float drift when cross-checking
	// the requested amount against the recomputed cart total.
	amountTolerance = 0.01
)

func validatePaymentInput(input *paymentdto.ProcessPaymentInput, now time.Time) error {
	if input.Amount <= 0 || input.Amount > maxPaymentAmount {
		return domain.NewValidationError(domain.CategoryAmount,
			"amount must be between 0 and %.0f, got %.2f", maxPaymentAmount, input.Amount)
	}
	if len(input.Items) == 0 {
		return domain.NewValidationError(domain.CategoryGeneric, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return domain.NewValidationError(domain.CategoryGeneric,
				"item %s has non-positive quantity %d", item.ProductID, item.Quantity)
		}
	}
	if err := validateCard(input.Card, now); err != nil {
		return err
	}
	return validateShipping(input.ShippingAddress)
}

func validateCard(card domain.CardDetails, now time.Time) error {
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) != 16 || !allDigits(number) {
		return domain.NewValidationError(domain.CategoryCard, "card number must be 16 digits")
	}
	if !luhnValid(number) {
		return domain.NewValidationError(domain.CategoryCard, "card number failed checksum")
	}
	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return domain.NewValidationError(domain.CategoryCard, "invalid expiry month %d", card.ExpiryMonth)
	}
	// Card stays valid through the last day of its expiry month.
	expiry := time.Date(card.ExpiryYear, time.Month(card.ExpiryMonth)+1, 1, 0, 0, 0, 0, now.Location())
	if !expiry.After(now) {
		return domain.NewValidationError(domain.CategoryCard, "card expired %02d/%d", card.ExpiryMonth, card.ExpiryYear)
	}
	if l := len(card.CVV); l < 3 || l > 4 || !allDigits(card.CVV) {
		return domain.NewValidationError(domain.CategoryCard, "CVV must be 3 or 4 digits")
	}
	return nil
}

func validateShipping(address domain.ShippingAddress) error {
	fields := map[string]string{
		"full_name":   address.FullName,
		"street":      address.Street,
		"city":        address.City,
		"postal_code": address.PostalCode,
		"country":     address.Country,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return domain.NewValidationError(domain.CategoryShipping, "missing %s", name)
		}
	}
	return nil
}

// checkAmountMatch guards against client-side tampering with displayed
// totals: the requested amount must equal the server-side cart total
// within one cent.
func checkAmountMatch(requested, computed float64) error {
	if math.Abs(requested-computed) > amountTolerance+1e-9 {
		return domain.NewValidationError(domain.CategoryAmount,
			"order amount mismatch: requested %.2f, cart total %.2f", requested, computed)
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
