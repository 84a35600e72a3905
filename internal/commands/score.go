package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pushrec-dev/pushrec/internal/config"
	"github.com/pushrec-dev/pushrec/internal/pipeline"
)

func newScoreCommand() *cobra.Command {
	var configPath string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "score <client-id>",
		Short: "Show the full product score table for one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing client ID %q: %w", args[0], err)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data") {
				cfg.DataDir = dataDir
			}

			return runScore(cfg.DataDir, code)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "pushrec.yaml", "config file")
	cmd.Flags().StringVar(&dataDir, "data", "", "input data directory")

	return cmd
}

func runScore(dataDir string, code int) error {
	rec, scores, err := pipeline.ProcessClient(dataDir, code)
	if err != nil {
		return fmt.Errorf("client %d: %w", code, err)
	}

	for _, s := range scores {
		marker := " "
		if s.Product == rec.Product {
			marker = "*"
		}
		fmt.Printf("%s %-45s %s\n", marker, s.Product, s.Score.StringFixed(2))
	}
	fmt.Printf("\n%s\n", rec.Push)
	return nil
}
