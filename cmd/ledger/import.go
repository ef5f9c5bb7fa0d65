package ledger

import (
	"fmt"
	"os"

	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewImportCmd(provide func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge transactions from a CSV export",
		Long: `Merge transactions from a CSV file in the export format.

Rows whose Transaction ID is already in the ledger are skipped. The merged
ledger is re-sorted by date, newest first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ImportFrom(provide(), args[0])
		},
	}
}

// ImportFrom merges the CSV at path into the ledger.
func ImportFrom(a *app.App, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	res, err := a.Service.Ledger.Import(f)
	if err != nil {
		return err
	}

	views.RenderImportResult(res.Added, res.Parsed, res.Dropped)
	return nil
}
