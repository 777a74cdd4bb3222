package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.URL != "http://0.0.0.0:3333" {
		t.Errorf("expected default API URL http://0.0.0.0:3333, got %s", cfg.API.URL)
	}
	if cfg.API.Timeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %v", cfg.API.Timeout)
	}
	if cfg.API.Retry.MaxAttempts != 3 {
		t.Errorf("expected 3 retry attempts, got %d", cfg.API.Retry.MaxAttempts)
	}
	if cfg.Validation.Parallel {
		t.Error("expected sequential passes by default")
	}
	if cfg.Validation.SHACLTimeout != 5*time.Minute {
		t.Errorf("expected SHACL timeout 5m, got %v", cfg.Validation.SHACLTimeout)
	}
	if cfg.Validation.GraphFormat != "turtle" {
		t.Errorf("expected graph format turtle, got %s", cfg.Validation.GraphFormat)
	}
	if cfg.Output.TableThreshold != 60 {
		t.Errorf("expected table threshold 60, got %d", cfg.Output.TableThreshold)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing api url",
			modify:  func(c *Config) { c.API.URL = "" },
			wantErr: true,
		},
		{
			name:    "relative api url",
			modify:  func(c *Config) { c.API.URL = "localhost" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "no retry attempts",
			modify:  func(c *Config) { c.API.Retry.MaxAttempts = 0 },
			wantErr: true,
		},
		{
			name:    "max backoff below initial backoff",
			modify:  func(c *Config) { c.API.Retry.MaxBackoff = 100 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "unknown graph format",
			modify:  func(c *Config) { c.Validation.GraphFormat = "jsonld" },
			wantErr: true,
		},
		{
			name:    "ntriples graph format",
			modify:  func(c *Config) { c.Validation.GraphFormat = "ntriples" },
			wantErr: false,
		},
		{
			name:    "zero table threshold",
			modify:  func(c *Config) { c.Output.TableThreshold = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
api:
  url: "https://api.dasch.swiss"
  timeout: 30s
  retry:
    max_attempts: 5
validation:
  parallel: true
  shacl_timeout: 10m
output:
  table_threshold: 20
  table_dir: "/tmp/tables"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.API.URL != "https://api.dasch.swiss" {
		t.Errorf("expected API URL https://api.dasch.swiss, got %s", cfg.API.URL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.API.Timeout)
	}
	if cfg.API.Retry.MaxAttempts != 5 {
		t.Errorf("expected 5 retry attempts, got %d", cfg.API.Retry.MaxAttempts)
	}
	// Unset fields keep their defaults
	if cfg.API.Retry.InitialBackoff != time.Second {
		t.Errorf("expected default initial backoff, got %v", cfg.API.Retry.InitialBackoff)
	}
	if !cfg.Validation.Parallel {
		t.Error("expected parallel passes")
	}
	if cfg.Validation.SHACLTimeout != 10*time.Minute {
		t.Errorf("expected SHACL timeout 10m, got %v", cfg.Validation.SHACLTimeout)
	}
	if cfg.Output.TableThreshold != 20 {
		t.Errorf("expected table threshold 20, got %d", cfg.Output.TableThreshold)
	}
	if cfg.Output.TableDir != "/tmp/tables" {
		t.Errorf("expected table dir /tmp/tables, got %s", cfg.Output.TableDir)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		API: APIConfig{
			URL: "https://api.test.dasch.swiss",
		},
		Validation: ValidationConfig{
			SaveGraphs: true,
		},
	}

	base.Merge(override)

	if base.API.URL != "https://api.test.dasch.swiss" {
		t.Errorf("expected API URL https://api.test.dasch.swiss, got %s", base.API.URL)
	}
	// Timeout should remain from base since override didn't set it
	if base.API.Timeout != 60*time.Second {
		t.Errorf("expected timeout to remain default, got %v", base.API.Timeout)
	}
	if !base.Validation.SaveGraphs {
		t.Error("expected save_graphs to be switched on")
	}
	if base.Validation.GraphFormat != "turtle" {
		t.Errorf("expected graph format to remain turtle, got %s", base.Validation.GraphFormat)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.URL = "https://saved.example.org"
	cfg.Validation.SHACLTimeout = 90 * time.Second

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.API.URL != "https://saved.example.org" {
		t.Errorf("expected API URL https://saved.example.org, got %s", loaded.API.URL)
	}
	if loaded.Validation.SHACLTimeout != 90*time.Second {
		t.Errorf("expected SHACL timeout 90s, got %v", loaded.Validation.SHACLTimeout)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// isolate points the user config at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvSaveGraphs, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return configHome
}

func TestLoaderLayers(t *testing.T) {
	configHome := isolate(t)

	userDir := filepath.Join(configHome, UserConfigDir)
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatal(err)
	}
	user := "api:\n  url: \"https://user.example.org\"\nvalidation:\n  parallel: true\n"
	if err := os.WriteFile(filepath.Join(userDir, UserConfigFile), []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	// The project config lives in a parent of the working directory
	projectDir := t.TempDir()
	workDir := filepath.Join(projectDir, "data", "batch")
	if err := os.MkdirAll(workDir, 0755); err != nil {
		t.Fatal(err)
	}
	project := "output:\n  table_threshold: 10\n"
	if err := os.WriteFile(filepath.Join(projectDir, ProjectConfigFile), []byte(project), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(quietLogger()).WithWorkDir(workDir).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.URL != "https://user.example.org" {
		t.Errorf("expected user API URL, got %s", cfg.API.URL)
	}
	if !cfg.Validation.Parallel {
		t.Error("expected parallel from user config")
	}
	if cfg.Output.TableThreshold != 10 {
		t.Errorf("expected table threshold from project config, got %d", cfg.Output.TableThreshold)
	}
}

func TestLoaderProjectOverridesUser(t *testing.T) {
	configHome := isolate(t)

	userDir := filepath.Join(configHome, UserConfigDir)
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatal(err)
	}
	user := "api:\n  url: \"https://user.example.org\"\n  timeout: 90s\noutput:\n  table_threshold: 5\n"
	if err := os.WriteFile(filepath.Join(userDir, UserConfigFile), []byte(user), 0644); err != nil {
		t.Fatal(err)
	}
	projectDir := t.TempDir()
	project := "api:\n  url: \"https://project.example.org\"\n"
	if err := os.WriteFile(filepath.Join(projectDir, ProjectConfigFile), []byte(project), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(quietLogger()).WithWorkDir(projectDir).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.URL != "https://project.example.org" {
		t.Errorf("expected project API URL, got %s", cfg.API.URL)
	}
	if cfg.API.Timeout != 90*time.Second {
		t.Errorf("expected user timeout to survive the project layer, got %v", cfg.API.Timeout)
	}
	if cfg.Output.TableThreshold != 5 {
		t.Errorf("expected user table threshold to survive the project layer, got %d", cfg.Output.TableThreshold)
	}
	if cfg.Validation.SHACLTimeout != DefaultConfig().Validation.SHACLTimeout {
		t.Errorf("expected default SHACL timeout, got %v", cfg.Validation.SHACLTimeout)
	}
}

func TestLoaderEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIURL, "https://env.example.org")
	t.Setenv(EnvSaveGraphs, "true")

	cfg, err := NewLoader(quietLogger()).WithWorkDir(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.URL != "https://env.example.org" {
		t.Errorf("expected API URL from environment, got %s", cfg.API.URL)
	}
	if !cfg.Validation.SaveGraphs {
		t.Error("expected save_graphs from environment")
	}
}

func TestLoaderInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIURL, "not a url")

	if _, err := NewLoader(quietLogger()).WithWorkDir(t.TempDir()).Load(); err == nil {
		t.Error("expected validation error for invalid API URL")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	configHome := isolate(t)
	loader := NewLoader(quietLogger())

	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	path := filepath.Join(configHome, UserConfigDir, UserConfigFile)
	if loader.UserConfigPath() != path {
		t.Errorf("expected user config path %s, got %s", path, loader.UserConfigPath())
	}
	if _, err := LoadFromFile(path); err != nil {
		t.Errorf("created user config does not load: %v", err)
	}
}
