package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pushrec-dev/pushrec/internal/config"
	"github.com/pushrec-dev/pushrec/internal/dataset"
	"github.com/pushrec-dev/pushrec/internal/pipeline"
	"github.com/pushrec-dev/pushrec/internal/runlog"
)

func newRunCommand() *cobra.Command {
	var configPath string
	var dataDir string
	var output string
	var clients int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Score all clients and write the recommendations table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("clients") {
				cfg.Clients = clients
			}
			return runBatch(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "pushrec.yaml", "config file")
	cmd.Flags().StringVar(&dataDir, "data", "", "input data directory")
	cmd.Flags().StringVar(&output, "output", "", "output CSV path")
	cmd.Flags().IntVar(&clients, "clients", 0, "number of client IDs to process")

	return cmd
}

func runBatch(cfg *config.Config) error {
	log := newLogger(cfg.LogLevel)
	log.WithField("clients", cfg.Clients).Info("starting batch")

	runner := &pipeline.Runner{
		DataDir: cfg.DataDir,
		Clients: cfg.Clients,
		Log:     log,
	}
	results, skipped := runner.Run()

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if err := dataset.WriteRecommendations(f, results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		Clients:   cfg.Clients,
		Processed: len(results),
		Skipped:   skipped,
		Output:    cfg.Output,
	}
	if err := runlog.Append(".", entry); err != nil {
		log.WithError(err).Warn("could not append run log")
	}

	log.WithFields(logrus.Fields{
		"processed": len(results),
		"skipped":   skipped,
		"output":    cfg.Output,
	}).Info("batch complete")
	return nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
