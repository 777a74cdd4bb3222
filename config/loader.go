package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

const (
	ProjectConfigFile = "dspvalidate.yaml"
	UserConfigDir     = "dspvalidate"
	UserConfigFile    = "config.yaml"
)

// Environment variables that override the config files.
const (
	EnvAPIURL     = "DSPVALIDATE_API_URL"
	EnvSaveGraphs = "DSPVALIDATE_SAVE_GRAPHS"
)

// Loader assembles a Config from files and the environment.
type Loader struct {
	logger  *slog.Logger
	workDir string
}

// NewLoader creates a Loader. A nil logger logs to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// WithWorkDir sets the directory the project config search starts from
// (default: the current directory).
func (l *Loader) WithWorkDir(dir string) *Loader {
	l.workDir = dir
	return l
}

// Load resolves the configuration. Later layers win:
//  1. defaults
//  2. $XDG_CONFIG_HOME/dspvalidate/config.yaml
//  3. dspvalidate.yaml in the work directory or the nearest parent
//  4. DSPVALIDATE_* environment variables
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	l.mergeFile(cfg, "user", l.UserConfigPath())
	if path := l.findProjectConfig(); path != "" {
		l.mergeFile(cfg, "project", path)
	}
	l.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile merges the file at path into cfg. A missing file is skipped
// silently and an unreadable one with a warning.
func (l *Loader) mergeFile(cfg *Config, layer, path string) {
	layerCfg, err := loadLayer(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return
	case err != nil:
		l.logger.Warn("Skipping config file", slog.String("layer", layer),
			slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	cfg.Merge(layerCfg)
	l.logger.Debug("Merged config file", slog.String("layer", layer), slog.String("path", path))
}

func (l *Loader) applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.URL = v
		l.logger.Debug("API URL from environment", slog.String("url", v))
	}
	if v := os.Getenv(EnvSaveGraphs); v != "" {
		save, err := strconv.ParseBool(v)
		if err != nil {
			l.logger.Warn("Ignoring invalid boolean", slog.String("variable", EnvSaveGraphs), slog.String("value", v))
			return
		}
		cfg.Validation.SaveGraphs = save
	}
}

// EnsureUserConfig writes the defaults to the user config file unless it
// exists.
func (l *Loader) EnsureUserConfig() error {
	path := l.UserConfigPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := DefaultConfig().SaveToFile(path); err != nil {
		return err
	}
	l.logger.Info("Wrote default user config", slog.String("path", path))
	return nil
}

// UserConfigPath returns the user config file below the XDG config home.
func (l *Loader) UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks up from the work directory and returns the first
// project config file, or "".
func (l *Loader) findProjectConfig() string {
	dir := l.workDir
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return ""
		}
	}
	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
