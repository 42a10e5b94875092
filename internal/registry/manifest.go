package registry

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// manifestValidate checks manifest records before they reach the registry.
var manifestValidate = validator.New()

// ManifestModule is one record in the module manifest file.
type ManifestModule struct {
	ID       string   `yaml:"id" validate:"required"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category" validate:"required,oneof=core specialized tech_stack checklist"`
	Tokens   int      `yaml:"tokens" validate:"required,gt=0"`
	Requires []string `yaml:"requires"`
	Tags     []string `yaml:"tags"`
	Items    int      `yaml:"items" validate:"gte=0"`
	Summary  string   `yaml:"summary"`
}

// Manifest is the on-disk registry description, an ordered list of module
// records. File order becomes registration order.
type Manifest struct {
	Modules []ManifestModule `yaml:"modules" validate:"required,min=1,dive"`
}

// Module converts the manifest record to a registry module.
func (mm ManifestModule) Module() Module {
	return Module{
		ID:            mm.ID,
		Title:         mm.Title,
		Category:      Category(mm.Category),
		TokenEstimate: mm.Tokens,
		Dependencies:  mm.Requires,
		Tags:          mm.Tags,
		Items:         mm.Items,
		Summary:       mm.Summary,
	}
}

// ParseManifest decodes and validates manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var man Manifest
	if err := yaml.Unmarshal(data, &man); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := manifestValidate.Struct(&man); err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
	return &man, nil
}

// LoadManifest reads a manifest file, registers every record in file order,
// and seals the resulting registry. Any failure is fatal: no partially valid
// registry is ever returned.
func LoadManifest(path string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	man, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	reg := New()
	for _, record := range man.Modules {
		if err := reg.Register(record.Module()); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	if err := reg.Seal(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	logger.Debug("manifest loaded",
		slog.String("path", path),
		slog.Int("modules", reg.Len()))
	return reg, nil
}
