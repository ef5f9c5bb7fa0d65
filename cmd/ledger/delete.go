package ledger

import (
	"time"

	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/ui"
	"github.com/hance08/fixpay/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

func NewDeleteCmd(provide func() *app.App) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction from the ledger. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(provide(), args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(a *app.App, id string, flags *deleteFlags) error {
	tx, ok := a.Service.Ledger.Find(id)
	if !ok {
		return apperror.Validation("transaction " + id + " not found")
	}

	views.RenderDeletePreview(tx, time.Now())
	pending := a.Service.Ledger.RequestDelete(id)

	confirmed := flags.Yes
	if !confirmed {
		var err error
		if confirmed, err = ui.Confirm(pending.Description); err != nil {
			return err
		}
	}

	if !confirmed {
		_ = pending.Cancel()
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	if err := pending.Confirm(); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s deleted successfully\n", id)
	ui.Separator()
	return nil
}
