package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/utils"
	"github.com/hance08/fixpay/internal/validation"
)

const (
	SettingsProfile      = "profile"
	SettingsQuickAmounts = "quick_amounts"
	SettingsAddItem      = "add_item"
	SettingsRemoveItem   = "remove_item"
	SettingsSave         = "save"
	SettingsDiscard      = "discard"
	SettingsReset        = "reset"
)

func PromptSettingsMenu() (string, error) {
	return PromptChoice("Settings", []Choice{
		{Label: "Edit shop profile", Value: SettingsProfile},
		{Label: "Edit quick amounts", Value: SettingsQuickAmounts},
		{Label: "Add catalog item", Value: SettingsAddItem},
		{Label: "Remove catalog item", Value: SettingsRemoveItem},
		{Label: "Save changes", Value: SettingsSave},
		{Label: "Back without saving", Value: SettingsDiscard},
		{Label: "Factory reset", Value: SettingsReset},
	}, SettingsSave)
}

func PromptProfile(current model.AppConfig) (shopName, upiID string, err error) {
	shopName = current.ShopName
	upiID = current.UPIID

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Shop Name").Value(&shopName).Validate(validation.ValidateShopName),
			huh.NewInput().Title("UPI ID").Value(&upiID).Validate(validation.ValidateUPI),
		),
	).Run()
	return shopName, upiID, err
}

// PromptQuickAmounts edits the presets as a comma separated list.
func PromptQuickAmounts(current []float64) (string, error) {
	parts := make([]string, 0, len(current))
	for _, v := range current {
		parts = append(parts, utils.FormatPlain(v))
	}
	value := strings.Join(parts, ", ")

	err := huh.NewInput().
		Title("Quick Amounts").
		Description("Comma separated, e.g. 10, 20, 50, 100").
		Value(&value).
		Validate(func(s string) error {
			_, err := validation.ParseQuickAmounts(s)
			return err
		}).
		Run()
	return value, err
}

func PromptNewItem() (name, price string, err error) {
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Item Name").Value(&name).Validate(validation.ValidateItemName),
			huh.NewInput().Title("Price").Value(&price).Validate(validation.ValidatePrice),
		),
	).Run()
	return name, price, err
}

// PromptRemoveItem returns the id of the item to drop, or "" when the
// catalog is empty.
func PromptRemoveItem(catalog []model.CatalogItem) (string, error) {
	if len(catalog) == 0 {
		return "", nil
	}

	choices := make([]Choice, 0, len(catalog))
	for _, item := range catalog {
		choices = append(choices, Choice{
			Label: fmt.Sprintf("%s (₹%s)", item.Name, utils.FormatPlain(item.Price)),
			Value: item.ID,
		})
	}
	return PromptChoice("Remove which item?", choices, catalog[0].ID)
}
