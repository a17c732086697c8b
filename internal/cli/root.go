package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"atcmoney/internal/config"
	"atcmoney/internal/logging"
	"atcmoney/internal/provider"
	"atcmoney/internal/store"
)

// Version information
const Version = "0.2.0"

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Provider provider.Provider
	Store    store.PositionStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	quoteProvider, err := provider.New(cfg.ProviderSettings())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize quote provider")
	} else {
		app.Provider = quoteProvider
	}

	positionStore, err := store.New(cfg.StoreSettings(), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize position store")
	} else {
		app.Store = positionStore
	}

	rootCmd := &cobra.Command{
		Use:   "atcmoney",
		Short: "atcmoney - personal portfolio bookkeeping CLI",
		Long: `atcmoney tracks your trading positions across assets, computes
realized and unrealized profit/loss as trades are registered, and
fetches live market quotes to value open positions.

Use 'atcmoney help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.atcmoney)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newInitCmd(app))
	rootCmd.AddCommand(newQuoteCmd(app))
	rootCmd.AddCommand(newPositionCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("atcmoney v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Provider")
			output.Printf("  Type:    %s\n", app.Config.Provider.Type)
			output.Println()
			output.Bold("Storage")
			output.Printf("  Backend: %s\n", app.Config.Storage.Backend)
			output.Printf("  Path:    %s\n", app.Config.Storage.Path)
			output.Println()
			output.Bold("Logging")
			output.Printf("  Level:   %s\n", app.Config.Logging.Level)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": app.Config.Dir()})
			} else {
				output.Println(app.Config.Dir())
			}
		},
	})

	return cmd
}

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and template files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			dir, _ := cmd.Flags().GetString("config-dir")
			cfg, err := config.Load(dir)
			if err != nil {
				output.Error("Failed to initialize configuration: %v", err)
				return err
			}
			output.Success("Configuration initialized in %s", cfg.Dir())
			return nil
		},
	}
	cmd.Flags().StringP("config-dir", "c", "", "path to the config directory, default is $HOME/.atcmoney")
	return cmd
}
