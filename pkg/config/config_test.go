package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cv-evaluator.yaml")

	content := `
logging:
  json: true
server:
  addr: ":9000"
  read_timeout: 5s
scoring:
  duration_fallback_months: 0
  required_sections: [summary, skills]
output:
  dir: ` + tmpDir + `
`

	err := os.WriteFile(configPath, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Logging.JSON {
		t.Error("Expected json logging to be enabled")
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Expected addr :9000, got %s", cfg.Server.Addr)
	}

	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Expected read timeout 5s, got %s", cfg.Server.ReadTimeout)
	}

	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("Expected default write timeout 30s, got %s", cfg.Server.WriteTimeout)
	}

	if cfg.Scoring.DurationFallbackMonths != 0 {
		t.Errorf("Expected fallback 0, got %d", cfg.Scoring.DurationFallbackMonths)
	}

	if len(cfg.Scoring.RequiredSections) != 2 {
		t.Errorf("Expected 2 required sections, got %v", cfg.Scoring.RequiredSections)
	}

	if cfg.Output.Dir != tmpDir {
		t.Errorf("Expected output dir %s, got %s", tmpDir, cfg.Output.Dir)
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/cv-evaluator.yaml")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %s", cfg.Server.Addr)
	}

	if cfg.Scoring.DurationFallbackMonths != 12 {
		t.Errorf("Expected default fallback 12, got %d", cfg.Scoring.DurationFallbackMonths)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CV_EVALUATOR_SERVER_ADDR", ":9090")
	t.Setenv("CV_EVALUATOR_LOGGING_DEBUG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected addr from env :9090, got %s", cfg.Server.Addr)
	}

	if !cfg.Logging.Debug {
		t.Error("Expected debug logging from env")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  ServerConfig{Addr: ":8080"},
			Scoring: ScoringConfig{DurationFallbackMonths: 12, RequiredSections: []string{"summary"}},
		}
	}

	tests := []struct {
		name      string
		modify    func(c *Config)
		wantError bool
	}{
		{
			name:      "valid config",
			modify:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "negative fallback",
			modify:    func(c *Config) { c.Scoring.DurationFallbackMonths = -1 },
			wantError: true,
		},
		{
			name:      "no required sections",
			modify:    func(c *Config) { c.Scoring.RequiredSections = nil },
			wantError: true,
		},
		{
			name:      "missing addr",
			modify:    func(c *Config) { c.Server.Addr = "" },
			wantError: true,
		},
		{
			name: "pdf with missing template",
			modify: func(c *Config) {
				c.Output.PDF = true
				c.Pandoc.TemplatePath = "/nonexistent/report.latex"
			},
			wantError: true,
		},
		{
			name:      "pdf with default template",
			modify:    func(c *Config) { c.Output.PDF = true },
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateSetsDefaultOutputDir(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Addr: ":8080"},
		Scoring: ScoringConfig{RequiredSections: []string{"summary"}},
	}

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}

	if cfg.Output.Dir != "./reports" {
		t.Errorf("Expected default output dir ./reports, got %s", cfg.Output.Dir)
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "cv-evaluator.yaml")

	path, err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	if path != configPath {
		t.Errorf("Expected path %s, got %s", configPath, path)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected addr :8080, got %s", cfg.Server.Addr)
	}

	if cfg.Scoring.DurationFallbackMonths != 12 {
		t.Errorf("Expected fallback 12, got %d", cfg.Scoring.DurationFallbackMonths)
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cv-evaluator.yaml")

	err := os.WriteFile(configPath, []byte("logging: {}\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to create existing config: %v", err)
	}

	_, err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
