package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"inmo-assistant/internal/config"
	"inmo-assistant/internal/logger"
	"inmo-assistant/internal/repository"
	"inmo-assistant/internal/service"

	"github.com/spf13/cobra"
)

func main() {
	var (
		csvPath  string
		logLevel string
		timeout  time.Duration
	)

	rootCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Chat with the assistant from the terminal",
		Long: `Reads one message per line from stdin, resolves it with the configured
generation backend and prints the plan and the matching listings.
Type q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath != "" {
				os.Setenv("CATALOG_SOURCE", "csv")
				os.Setenv("CANONICAL_CSV_PATH", csvPath)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.LLM.Enabled {
				return fmt.Errorf("LLM not configured: set LLM_BASE_URL and LLM_API_KEY")
			}

			log, err := logger.New(logLevel, "console")
			if err != nil {
				return err
			}
			defer log.Sync()
			for _, warning := range cfg.Warnings {
				log.Warn(warning)
			}

			source, err := repository.NewSource(cfg)
			if err != nil {
				return err
			}
			catalog := repository.NewCatalog(log)
			n, err := catalog.Load(cmd.Context(), source)
			if err != nil {
				return err
			}

			validator, err := service.NewPlanValidator()
			if err != nil {
				return err
			}
			resolver := service.NewResolver(service.NewOpenAIClient(&cfg.LLM, log), validator, log)
			assistant := service.NewAssistant(resolver, service.NewMatcher(catalog), catalog, cfg.Search.MaxLimit, log)

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d listings from %s\n", n, source.Name())
			return runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), assistant, timeout)
		},
	}

	rootCmd.Flags().StringVar(&csvPath, "csv", "", "catalog CSV path (defaults to CANONICAL_CSV_PATH)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout for each generation call")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
