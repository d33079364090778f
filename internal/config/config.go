package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/skim/internal/reader"
)

const (
	DefaultNotesFile = "notes.md"
	DefaultSkipSize  = reader.SkipSize
	DefaultPace      = reader.DefaultPace
)

type Config struct {
	NotesFile string       `yaml:"notes_file"`
	Reader    ReaderConfig `yaml:"reader"`
	Notes     NotesConfig  `yaml:"notes"`
}

type ReaderConfig struct {
	Pace     int `yaml:"pace"`
	SkipSize int `yaml:"skip_size"`
}

// NotesConfig carries the pick lists the capture commands offer.
type NotesConfig struct {
	Attendees []string `yaml:"attendees"`
	Companies []string `yaml:"companies"`
	Projects  []string `yaml:"projects"`
}

func DefaultConfig() *Config {
	return &Config{
		NotesFile: DefaultNotesFile,
		Reader: ReaderConfig{
			Pace:     DefaultPace,
			SkipSize: DefaultSkipSize,
		},
	}
}

// DefaultPath is where skim looks for a config when --config is not given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".skim", "config.yaml")
	}
	return filepath.Join(home, ".skim", "config.yaml")
}

// Load reads a YAML config over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
