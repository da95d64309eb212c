package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project-local configuration file, looked up in the
// current working directory.
const FileName = ".shareplan.yaml"

// Config holds defaults applied when the matching CLI flags are not set.
// The zero value means no defaults.
type Config struct {
	// Workbook is the default path to the Excel workbook.
	Workbook string `yaml:"workbook"`
	// Sheet is the default worksheet name to export.
	Sheet string `yaml:"sheet"`
	// Output is the default path for the JSON seed file.
	Output string `yaml:"output"`
	// TasksFile is the default path to the tasks checklist.
	TasksFile string `yaml:"tasks_file"`
}

// Load reads configuration from the project-local file, falling back to
// config.yaml in the global configuration directory. A missing file is
// not an error; a malformed one is.
func Load() (Config, error) {
	cfg, err := loadFile(FileName)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if dir := Dir(); dir != "" {
		cfg, err = loadFile(filepath.Join(dir, "config.yaml"))
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}
	return Config{}, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
