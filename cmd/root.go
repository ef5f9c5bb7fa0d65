package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/fixpay/cmd/ledger"
	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/config"
	"github.com/hance08/fixpay/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	var (
		application *app.App
		cleanup     func()
	)
	provide := func() *app.App { return application }

	rootCmd := &cobra.Command{
		Use:   "fixpay",
		Short: "fixpay is a terminal point-of-sale for UPI payments",
		Long: `fixpay is a terminal point-of-sale for small merchants.

Enter an amount, show the customer a UPI QR code and keep a ledger of
every charge. Run without a subcommand to open the interactive app.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}

			application, cleanup, err = app.NewApp(cfg, migrations)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &interactiveRunner{app: application}
			return runner.Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(ledger.NewLedgerCmd(provide))
	rootCmd.AddCommand(NewChargeCmd(provide))
	rootCmd.AddCommand(NewResetCmd(provide))
	rootCmd.AddCommand(NewInfoCmd(provide))

	err := rootCmd.Execute()
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		errhandler.HandleError(err)
	}
}

func initConfig() (*config.Config, error) {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("FIXPAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	var err error
	if cfg.Database.Path, err = expandPath(cfg.Database.Path); err != nil {
		return nil, err
	}
	if cfg.Log.File, err = expandPath(cfg.Log.File); err != nil {
		return nil, err
	}

	return cfg, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
