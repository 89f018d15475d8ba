package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// HomeEnv overrides the data directory when set.
const HomeEnv = "SLOTBOOK_HOME"

type Config struct {
	BaseURL       string   `toml:"base_url"`
	StepMinutes   int      `toml:"step_minutes"`
	MinRating     int      `toml:"min_rating"`
	ExportsOutput string   `toml:"exports_output"`
	Locations     []string `toml:"locations"`
}

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		BaseURL:       "http://localhost:3000",
		StepMinutes:   15,
		MinRating:     4,
		ExportsOutput: filepath.Join(homeDir, "Documents", "interviews"),
		Locations: []string{
			"Santa Barbara",
			"Ventura",
			"Lompoc",
			"Santa Maria",
			"Oxnard",
		},
	}
}

// LoadEnv reads a .env file from the working directory, if there is one.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func SlotbookDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return expandPath(dir), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".slotbook"), nil
}

func ConfigPath() (string, error) {
	dir, err := SlotbookDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func DatabasePath() (string, error) {
	dir, err := SlotbookDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db", "slotbook.sqlite"), nil
}

func ErrorLogPath() (string, error) {
	dir, err := SlotbookDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "errors.log"), nil
}

func EnsureDirectories() error {
	dir, err := SlotbookDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "db"), 0755); err != nil {
		return err
	}

	return nil
}

func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := EnsureDirectories(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, err
	}

	cfg.ExportsOutput = expandPath(cfg.ExportsOutput)
	cfg.applyDefaults()

	return cfg, nil
}

func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// applyDefaults replaces values a hand edited file left unusable.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.StepMinutes <= 0 {
		c.StepMinutes = def.StepMinutes
	}
	if c.MinRating < 0 || c.MinRating > 5 {
		c.MinRating = def.MinRating
	}
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.ExportsOutput == "" {
		c.ExportsOutput = def.ExportsOutput
	}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
