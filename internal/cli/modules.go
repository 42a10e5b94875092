package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/promptdeck/internal/config"
	"github.com/dshills/promptdeck/internal/registry"
)

var flagTag string

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List registered modules",
	RunE:  runModules,
}

func init() {
	modulesCmd.Flags().StringVar(&flagTag, "tag", "", "Only list modules carrying this tag")
	modulesCmd.Flags().StringVar(&flagManifest, "manifest", "", "Module manifest file (default from config)")
}

func runModules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	reg, err := loadRegistry(cfg, newLogger())
	if err != nil {
		return err
	}

	printModule := func(m registry.Module) {
		tags := ""
		if len(m.Tags) > 0 {
			tags = strings.Join(m.Tags, ",")
		}
		fmt.Fprintf(os.Stdout, "%-30s %-12s %6d  %s\n", m.ID, m.Category, m.TokenEstimate, tags)
	}

	if flagTag != "" {
		for m := range reg.ModulesByTag(flagTag) {
			printModule(m)
		}
		return nil
	}
	for _, m := range reg.Modules() {
		printModule(m)
	}
	return nil
}
