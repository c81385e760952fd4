package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mspro-labs/lunch-picker/internal/app"
	"mspro-labs/lunch-picker/internal/config"
	"mspro-labs/lunch-picker/internal/logging"
	"mspro-labs/lunch-picker/internal/prompt"
	"mspro-labs/lunch-picker/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lunch-picker",
	Short: "Pick today's lunch from your own restaurant list",
	Long: `Interactive lunch selector. Filter your saved restaurants by category,
price and taste, get a random pick, or add new places to the list.

The list is kept in menu_data.json (override with LUNCH_DATA_FILE).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

// Execute runs the root command with an interrupt-aware context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Failures are logged, never turned into a non-zero exit status.
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("lunch-picker failed")
	}
}

type environment struct {
	store    *store.Store
	settings *config.Settings
}

// setup resolves configuration, logging and storage shared by all commands.
func setup() (*environment, error) {
	appCfg, err := config.GetAppConfig()
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(appCfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	settings.Merge(appCfg)
	logging.Init(logging.Config{Level: settings.LogLevel, Format: settings.LogFormat})

	return &environment{store: store.New(appCfg.DataFile), settings: settings}, nil
}

func runInteractive(ctx context.Context) error {
	env, err := setup()
	if err != nil {
		return err
	}

	p := prompt.New(os.Stdin, os.Stdout)
	session, err := app.New(p, env.store, env.settings.BudgetCeiling)
	if err != nil {
		return err
	}
	return session.Run(ctx)
}
