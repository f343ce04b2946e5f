package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level fsprep.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Git      GitConfig      `yaml:"git"`
	Log      LogConfig      `yaml:"log"`
}

// BusinessConfig identifies the reporting entity.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // symbol shown in rendered statements
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Environment overrides, read after an optional .env in the workspace root.
const (
	EnvLogLevel       = "FSPREP_LOG_LEVEL"
	EnvGitAutoCommit  = "FSPREP_GIT_AUTO_COMMIT"
	EnvGitAuthorName  = "FSPREP_GIT_AUTHOR_NAME"
	EnvGitAuthorEmail = "FSPREP_GIT_AUTHOR_EMAIL"
)

// Load reads an fsprep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "₹",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "fsprep",
			AuthorEmail: "fsprep@localhost",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyEnv overlays environment overrides onto cfg. Variables from
// <root>/.env are loaded first but never replace ones already set.
func ApplyEnv(cfg *Config, root string) {
	_ = godotenv.Load(filepath.Join(root, ".env"))

	v := viper.New()
	v.SetDefault(EnvLogLevel, cfg.Log.Level)
	v.SetDefault(EnvGitAutoCommit, cfg.Git.AutoCommit)
	v.SetDefault(EnvGitAuthorName, cfg.Git.AuthorName)
	v.SetDefault(EnvGitAuthorEmail, cfg.Git.AuthorEmail)
	v.AutomaticEnv()

	cfg.Log.Level = v.GetString(EnvLogLevel)
	cfg.Git.AutoCommit = v.GetBool(EnvGitAutoCommit)
	cfg.Git.AuthorName = v.GetString(EnvGitAuthorName)
	cfg.Git.AuthorEmail = v.GetString(EnvGitAuthorEmail)
}
