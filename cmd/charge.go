package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/pos"
	"github.com/hance08/fixpay/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type chargeFlags struct {
	Items []string
}

type chargeRunner struct {
	app   *app.App
	flags *chargeFlags
}

func NewChargeCmd(provide func() *app.App) *cobra.Command {
	flags := &chargeFlags{}

	cmd := &cobra.Command{
		Use:   "charge [amount]",
		Short: "Record a charge and show its payment QR code",
		Long: `Record a charge and print the UPI QR code for the customer to scan.

The amount follows the keypad rules: at most 9 characters and 2 decimals.
Catalog items given with --item are added on top of the amount.

	Examples:
	fixpay charge 45.50
	fixpay charge --item Tea --item Samosa`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &chargeRunner{
				app:   provide(),
				flags: flags,
			}
			amount := ""
			if len(args) == 1 {
				amount = args[0]
			}
			return runner.Run(amount)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.Items, "item", "i", nil, "Catalog item to add (repeatable)")

	return cmd
}

func (r *chargeRunner) Run(amount string) error {
	cfg, err := r.app.Service.Merchant.Load()
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("shop is not set up yet, run fixpay first")
	}

	term := pos.NewTerminal(r.app.Service.Ledger, nil)
	term.SetCurrency(r.app.Service.Config.Defaults.Currency)

	if err := typeAmount(term, amount); err != nil {
		return err
	}

	for _, name := range r.flags.Items {
		item, ok := findItem(cfg.Catalog, name)
		if !ok {
			return apperror.Validation(fmt.Sprintf("no catalog item named %q", name))
		}
		term.PickItem(item)
	}

	receipt, err := term.Charge(*cfg)
	if err != nil {
		return err
	}

	views.RenderPaymentCode(os.Stdout, cfg.ShopName, cfg.UPIID, receipt.Transaction.Amount, receipt.URI)
	pterm.Success.Printf("Transaction %s recorded\n", receipt.Transaction.ID)
	printSeparator()
	return nil
}

// typeAmount enters amount key by key so the keypad rules apply.
func typeAmount(term *pos.Terminal, amount string) error {
	for _, c := range amount {
		term.Press(string(c))
	}
	if amount != "" && term.Buffer() != amount && term.Buffer() != strings.TrimLeft(amount, "0") {
		return apperror.Validation(fmt.Sprintf("invalid amount: %s", amount))
	}
	return nil
}

func findItem(catalog []model.CatalogItem, name string) (model.CatalogItem, bool) {
	for _, item := range catalog {
		if strings.EqualFold(item.Name, strings.TrimSpace(name)) {
			return item, true
		}
	}
	return model.CatalogItem{}, false
}
