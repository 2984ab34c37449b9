package domain

// Config represents the minimal Bowgen configuration loaded from bowgen.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Output   OutputConfig
}

type DefaultsConfig struct {
	Model string
}

type PathsConfig struct {
	ModelsDir string
	OutDir    string
}

type OutputConfig struct {
	Index bool
}

// DefaultConfig provides sane defaults if bowgen.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Model: "bowtie-freespace",
		},
		Paths: PathsConfig{
			ModelsDir: "models",
			OutDir:    "out",
		},
		Output: OutputConfig{
			Index: true,
		},
	}
}
