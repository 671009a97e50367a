// cmd/assistant/main.go
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movie-assistant/internal/assistant"
	"movie-assistant/internal/catalog"
	"movie-assistant/internal/classifier"
	"movie-assistant/internal/common/config"
	"movie-assistant/internal/common/logger"
	"movie-assistant/internal/intent"
)

var rootCmd = &cobra.Command{
	Use:   "movie-assistant",
	Short: "Conversational movie assistant backed by the TMDB catalog",
	Long: "movie-assistant answers free-form movie questions by classifying them\n" +
		"with a language model and running the matching catalog workflow.",
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting movie assistant",
		zap.String("environment", cfg.App.Environment),
		zap.String("model", cfg.Classifier.Model),
	)

	if cfg.Metrics.ListenAddress != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.ListenAddress, mux); err != nil {
				zapLog.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
		zapLog.Info("metrics listener started", zap.String("address", cfg.Metrics.ListenAddress))
	}

	provider, err := classifier.NewAnthropicProvider(cfg.Classifier, log)
	if err != nil {
		return err
	}

	catalogClient := catalog.NewClient(cfg.TMDB, log)
	registry := assistant.BuildRegistry(catalogClient, log)
	parser := intent.NewParser(log)

	session := assistant.NewSession(provider, parser, registry, log, os.Stdin, os.Stdout)
	return session.Run(context.Background())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
