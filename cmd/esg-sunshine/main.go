package main

import (
	"os"

	"github.com/spf13/cobra"

	"esg-sunshine/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var envFile string

	root := &cobra.Command{
		Use:           "esg-sunshine",
		Short:         "ESG Sunshine dashboard backend",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	serve.Flags().Int("port", 8080, "HTTP listen port (ESG_PORT)")
	serve.Flags().String("log-level", "info", "debug|info|warn|error (LOG_LEVEL)")
	serve.Flags().Bool("require-login", false, "gate screens behind the login action (ESG_REQUIRE_LOGIN)")
	_ = v.BindPFlag(config.KeyPort, serve.Flags().Lookup("port"))
	_ = v.BindPFlag(config.KeyLogLevel, serve.Flags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyRequireLogin, serve.Flags().Lookup("require-login"))

	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print diagnostic events from NATS as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			return runTail(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	root.AddCommand(serve, tail)
	return root
}
