package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/promptdeck/internal/composer"
	"github.com/dshills/promptdeck/internal/config"
	"github.com/dshills/promptdeck/internal/resolver"
)

var (
	flagPlanFile   string
	flagContentDir string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a resolved plan into a single prompt artifact",
	Long: "Compose concatenates module content in plan order. The plan comes either " +
		"from --plan (a JSON file produced by `resolve --format json`) or from the " +
		"same selection flags resolve accepts. The artifact goes to stdout or --out; " +
		"warnings go to stderr.",
	RunE: runCompose,
}

func init() {
	addSelectionFlags(composeCmd)
	composeCmd.Flags().StringVar(&flagPlanFile, "plan", "", "Plan JSON file (skips resolution)")
	composeCmd.Flags().StringVar(&flagContentDir, "content", "", "Module content directory (default from config)")
}

func runCompose(cmd *cobra.Command, args []string) error {
	overrides := buildOverrides()
	if flagContentDir != "" {
		overrides["contentDir"] = flagContentDir
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}
	logger := newLogger()

	var plan *resolver.Plan
	if flagPlanFile != "" {
		plan, err = loadPlanFile(flagPlanFile)
	} else {
		reg, regErr := loadRegistry(cfg, logger)
		if regErr != nil {
			return regErr
		}
		plan, err = resolver.Resolve(reg, criteriaFromFlags(cfg))
	}
	if err != nil {
		return err
	}

	comp, err := composer.Compose(plan, composer.NewDirLoader(cfg.ContentDir))
	if err != nil {
		return err
	}

	for _, warn := range comp.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warn)
	}
	logger.Debug("artifact composed",
		"sections", len(comp.Sections),
		"measuredTokens", comp.MeasuredTokens,
		"declaredTokens", comp.DeclaredTokens)

	if flagOut != "" {
		return os.WriteFile(flagOut, []byte(comp.Artifact), 0o644)
	}
	_, err = fmt.Fprint(os.Stdout, comp.Artifact)
	return err
}

// loadPlanFile reads a plan previously emitted by `resolve --format json`.
func loadPlanFile(path string) (*resolver.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	var plan resolver.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &plan, nil
}
