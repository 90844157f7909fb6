package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bjaus/ngmat/internal/config"
	"github.com/bjaus/ngmat/internal/logging"
)

func newRootCmd(app *App) *cobra.Command {
	var (
		configPath string
		envFile    string
		debugMode  bool
		logFormat  string
	)

	rootCmd := &cobra.Command{
		Use:           "ngmat",
		Short:         "Render Angular Material markup from tag attributes",
		Version:       app.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(envFile); err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debugMode
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if err := logging.Setup(cfg.LogFormat, cfg.Debug, app.Stderr); err != nil {
				return &usageError{err: err}
			}
			slog.Debug("config loaded", "path", configPath, "fixed_id", cfg.ID != "", "defaults", len(cfg.Defaults))
			app.cfg = cfg
			return nil
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/ngmat/config.yaml)")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(newRenderCmd(app))
	rootCmd.AddCommand(newKindsCmd(app))
	return rootCmd
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
