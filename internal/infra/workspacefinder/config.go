package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/bowgen/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads bowgen.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "bowgen.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Bowgen.Defaults.Model != "" {
		cfg.Defaults.Model = y.Bowgen.Defaults.Model
	}
	if y.Bowgen.Paths.ModelsDir != "" {
		cfg.Paths.ModelsDir = y.Bowgen.Paths.ModelsDir
	}
	if y.Bowgen.Paths.OutDir != "" {
		cfg.Paths.OutDir = y.Bowgen.Paths.OutDir
	}
	if y.Bowgen.Output.Index != nil {
		cfg.Output.Index = *y.Bowgen.Output.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	Bowgen struct {
		Defaults struct {
			Model string `yaml:"model"`
		} `yaml:"defaults"`

		Paths struct {
			ModelsDir string `yaml:"models_dir"`
			OutDir    string `yaml:"out_dir"`
		} `yaml:"paths"`

		Output struct {
			Index *bool `yaml:"index"`
		} `yaml:"output"`
	} `yaml:"bowgen"`
}
