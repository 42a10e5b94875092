package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/promptdeck/internal/config"
	"github.com/dshills/promptdeck/internal/output"
	"github.com/dshills/promptdeck/internal/registry"
	"github.com/dshills/promptdeck/internal/resolver"
)

// Shared selection flags
var (
	flagManifest   string
	flagExplicit   string
	flagGoal       string
	flagBudget     int
	flagMaxModules int
	flagFormat     string
	flagOut        string
)

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagManifest, "manifest", "", "Module manifest file (default from config)")
	cmd.Flags().StringVar(&flagExplicit, "explicit", "", "Module ids to include (comma-separated)")
	cmd.Flags().StringVar(&flagGoal, "goal", "", "Goal tags to seed module selection (comma-separated)")
	cmd.Flags().IntVar(&flagBudget, "budget", 0, "Token budget for the composed artifact")
	cmd.Flags().IntVar(&flagMaxModules, "max-modules", 0, "Maximum number of modules in the plan")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagManifest != "" {
		m["manifest"] = flagManifest
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagBudget > 0 {
		m["tokenBudget"] = fmt.Sprintf("%d", flagBudget)
	}
	if flagMaxModules > 0 {
		m["maxModules"] = fmt.Sprintf("%d", flagMaxModules)
	}
	return m
}

// splitList parses a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func criteriaFromFlags(cfg config.Config) resolver.Criteria {
	return resolver.Criteria{
		ExplicitIDs: splitList(flagExplicit),
		GoalTags:    splitList(flagGoal),
		TokenBudget: cfg.TokenBudget,
		MaxModules:  cfg.MaxModules,
	}
}

func loadRegistry(cfg config.Config, logger *slog.Logger) (*registry.Registry, error) {
	return registry.LoadManifest(cfg.Manifest, logger)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve selection criteria into an execution plan",
	Long:  "Resolve computes a deterministic, dependency-correct, budget-constrained module plan from explicit ids and goal tags.",
	RunE:  runResolve,
}

func init() {
	addSelectionFlags(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	logger := newLogger()

	reg, err := loadRegistry(cfg, logger)
	if err != nil {
		return err
	}

	plan, err := resolver.Resolve(reg, criteriaFromFlags(cfg))
	if err != nil {
		return err
	}
	logger.Debug("plan resolved",
		slog.Int("modules", len(plan.Modules)),
		slog.Int("tokens", plan.TotalTokens),
		slog.Int("dropped", len(plan.Dropped)))

	return output.WritePlan(plan, cfg.Format, flagOut)
}
