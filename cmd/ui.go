package cmd

import "github.com/hance08/fixpay/internal/ui"

// printSeparator prints a green separator line to the console.
func printSeparator() {
	ui.Separator()
}
