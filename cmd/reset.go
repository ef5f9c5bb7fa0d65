package cmd

import (
	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type resetFlags struct {
	Yes bool
}

func NewResetCmd(provide func() *app.App) *cobra.Command {
	flags := &resetFlags{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Factory reset: delete login, shop settings and the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(provide(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runReset(a *app.App, flags *resetFlags) error {
	pending := a.Service.RequestFactoryReset()

	confirmed := flags.Yes
	if !confirmed {
		pterm.Warning.Println("This will permanently erase all local data.")
		ok, err := ui.Confirm(pending.Description)
		if err != nil {
			return err
		}
		confirmed = ok
	}

	if !confirmed {
		_ = pending.Cancel()
		pterm.Info.Println("Reset cancelled")
		return nil
	}

	if err := pending.Confirm(); err != nil {
		return err
	}

	pterm.Success.Println("All data deleted")
	printSeparator()
	return nil
}
