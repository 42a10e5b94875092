package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/promptdeck/internal/config"
	"github.com/dshills/promptdeck/internal/output"
	"github.com/dshills/promptdeck/internal/session"
)

var flagSessionFile string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a review session into a risk report",
	Long:  "Score replays a session findings file against the registry, finalizes the session, and prints severity counts, checklist percentage, and the risk level.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&flagSessionFile, "session", "", "Session findings file (YAML)")
	scoreCmd.Flags().StringVar(&flagManifest, "manifest", "", "Module manifest file (default from config)")
	scoreCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	scoreCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	_ = scoreCmd.MarkFlagRequired("session")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	logger := newLogger()

	reg, err := loadRegistry(cfg, logger)
	if err != nil {
		return err
	}

	file, err := session.LoadFile(flagSessionFile)
	if err != nil {
		return err
	}

	sess := session.New(reg)
	for i, f := range file.Findings {
		if err := sess.Record(f); err != nil {
			return fmt.Errorf("recording finding %d: %w", i, err)
		}
	}

	rep, err := sess.Finalize()
	if err != nil {
		return err
	}
	logger.Debug("session scored",
		"findings", rep.TotalFindings,
		"risk", string(rep.Risk))

	return output.WriteReport(rep, cfg.Format, flagOut)
}
