package ledger

import (
	"time"

	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/service"
	"github.com/hance08/fixpay/internal/ui/prompts"
	"github.com/hance08/fixpay/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Window string
}

type listRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(provide func() *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions with the window total",
		Long: `List recorded transactions, most recent first.

--window limits the list to today, the last 7 days (week) or the last 30
days (month), counted from local midnight.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app:   provide(),
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Window, "window", "w", constants.WindowAll, "all, today, week or month")

	return cmd
}

func (r *listRunner) Run() error {
	window, err := service.ParseWindow(r.flags.Window)
	if err != nil {
		return err
	}

	txns := r.app.Service.Ledger.Filter(window)
	return views.RenderLedger(txns, views.LedgerSummary{
		WindowLabel: prompts.WindowLabel(window),
		Total:       service.TotalOf(txns),
		Count:       len(txns),
	}, time.Now())
}
