package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/shopspring/decimal"
)

// ValidateMerchant checks the fields required before a config may be saved.
func ValidateMerchant(shopName, upiID string) error {
	if strings.TrimSpace(shopName) == "" || strings.TrimSpace(upiID) == "" {
		return apperror.ErrMissingFields()
	}
	if err := ValidateShopName(shopName); err != nil {
		return err
	}
	return ValidateUPI(upiID)
}

func ValidateShopName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return apperror.Validation("shop name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return apperror.Validation(fmt.Sprintf("shop name too long (max %d characters)", constants.MaxNameLen))
	}
	return nil
}

// upiReserved would break the pa= parameter of the payment link.
const upiReserved = " \t&?=#"

// ValidateUPI accepts a VPA of the form handle@provider.
func ValidateUPI(upiID string) error {
	upiID = strings.TrimSpace(upiID)

	if upiID == "" {
		return apperror.Validation("UPI ID can't be empty")
	}

	handle, provider, found := strings.Cut(upiID, "@")
	if !found || handle == "" || provider == "" || strings.ContainsAny(upiID, upiReserved) {
		return apperror.ErrInvalidUPI()
	}
	return nil
}

func ValidateItemName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return apperror.Validation("item name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return apperror.Validation(fmt.Sprintf("item name too long (max %d characters)", constants.MaxNameLen))
	}
	return nil
}

// ValidatePrice accepts a non-negative decimal.
func ValidatePrice(price string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return apperror.Validation(fmt.Sprintf("invalid price: %s", price))
	}
	if d.IsNegative() {
		return apperror.Validation("price can't be negative")
	}
	return nil
}

// ParseQuickAmounts parses a comma separated preset list such as "10, 20, 50".
func ParseQuickAmounts(input string) ([]float64, error) {
	var amounts []float64

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		d, err := decimal.NewFromString(part)
		if err != nil || !d.IsPositive() {
			return nil, apperror.Validation(fmt.Sprintf("quick amount '%s' must be a positive number", part))
		}
		amounts = append(amounts, d.InexactFloat64())
	}

	if len(amounts) == 0 {
		return nil, apperror.Validation("at least one quick amount is required")
	}
	return amounts, nil
}
