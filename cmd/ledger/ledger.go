package ledger

import (
	"github.com/hance08/fixpay/internal/app"
	"github.com/spf13/cobra"
)

// NewLedgerCmd groups the ledger subcommands. provide returns the
// application once the root command has initialised it.
func NewLedgerCmd(provide func() *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ledger",
		Aliases: []string{"lg"},
		Short:   "View, export, import or delete recorded transactions",
	}

	cmd.AddCommand(NewListCmd(provide))
	cmd.AddCommand(NewExportCmd(provide))
	cmd.AddCommand(NewImportCmd(provide))
	cmd.AddCommand(NewDeleteCmd(provide))

	return cmd
}
