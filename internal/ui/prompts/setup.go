package prompts

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/validation"
)

const (
	SetupScan   = "scan"
	SetupManual = "manual"
)

// PromptSetupMethod is step one of setup: read the shop's QR or type it in.
func PromptSetupMethod() (string, error) {
	return PromptChoice("Set up your shop", []Choice{
		{Label: "Scan my payment QR (photo)", Value: SetupScan},
		{Label: "Enter manually instead", Value: SetupManual},
	}, SetupScan)
}

// PromptImagePath asks for a photo of the merchant's QR code.
func PromptImagePath() (string, error) {
	return PromptInput("Path to QR code image (png/jpeg):", "", func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return apperror.ErrMissingFields()
		}
		if _, err := os.Stat(s); err != nil {
			return apperror.Validation("file not found")
		}
		return nil
	})
}

// PromptMerchantDetails is step two of setup. guess pre-fills whatever the
// image extraction found.
func PromptMerchantDetails(guess *model.MerchantGuess) (shopName, upiID, category string, err error) {
	category = constants.CategoryOther
	if guess != nil {
		shopName = guess.ShopName
		upiID = guess.UPIID
		if guess.Category != "" {
			category = guess.Category
		}
	}

	var opts []huh.Option[string]
	for _, c := range constants.Categories {
		opts = append(opts, huh.NewOption(constants.CategoryLabels[c], c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shop Name").
				Value(&shopName).
				Validate(validation.ValidateShopName),
			huh.NewInput().
				Title("UPI ID").
				Description("e.g. shopname@okaxis").
				Value(&upiID).
				Validate(validation.ValidateUPI),
			huh.NewSelect[string]().
				Title("Shop Category").
				Description("Used to suggest presets & items").
				Options(opts...).
				Value(&category),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(shopName), strings.TrimSpace(upiID), category, nil
}
