package ledger

import (
	"fmt"
	"os"

	"github.com/hance08/fixpay/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Output string
}

func NewExportCmd(provide func() *app.App) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every transaction to CSV",
		Long: `Export the whole ledger to CSV, ignoring any filter.

Fields are not quoted, so a comma inside a shop name or description will
shift columns when the file is imported again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := provide()
			path := flags.Output
			if path == "" {
				path = a.Service.Ledger.ExportFileName()
			}
			return ExportTo(a, path)
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default ledger_<date>.csv)")

	return cmd
}

// ExportTo writes the ledger CSV to path.
func ExportTo(a *app.App, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := a.Service.Ledger.Export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	pterm.Success.Printf("Exported %d transactions to %s\n", len(a.Service.Ledger.All()), path)
	return nil
}
