package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/xuri/excelize/v2"

	"crewcal/internal/importer"
)

// AppConfig is the application configuration, loaded from config.toml next
// to the executable.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Import ImportConfig `toml:"import"`
}

type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ImportConfig tunes one import run.
type ImportConfig struct {
	ProjectStatus  string        `toml:"project_status"`
	TravelOutDays  int           `toml:"travel_out_days"`
	TravelBackDays int           `toml:"travel_back_days"`
	Exclude        []ExcludeCell `toml:"exclude"`
}

// ExcludeCell names one known phantom cell to drop before classification.
// Corrections for malformed source files belong here, not in the importer.
type ExcludeCell struct {
	Sheet string `toml:"sheet"`
	Cell  string `toml:"cell"` // A1-style reference
}

// CellFilter builds the importer pre-filter hook from the exclusion list.
// Returns nil when no exclusions are configured.
func (c ImportConfig) CellFilter() importer.CellFilter {
	if len(c.Exclude) == 0 {
		return nil
	}

	type coord struct {
		sheet    string
		col, row int
	}
	excluded := make(map[coord]bool, len(c.Exclude))
	for _, e := range c.Exclude {
		col, row, err := excelize.CellNameToCoordinates(e.Cell)
		if err != nil {
			continue
		}
		excluded[coord{e.Sheet, col, row}] = true
	}

	return func(sheet string, col, row int) bool {
		return excluded[coord{sheet, col, row}]
	}
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20474,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Import: ImportConfig{
			ProjectStatus:  "scheduled",
			TravelOutDays:  1,
			TravelBackDays: 1,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable's directory. A missing
// file yields the defaults.
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(cfg *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir creates the data directory (and its upload/export subdirs)
// next to the executable and returns its path.
func EnsureDataDir(cfg *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, cfg.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}
