package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Name is the config file base name and the environment prefix source.
const Name = "cv-evaluator"

// EnvPrefix prefixes environment overrides, e.g. CV_EVALUATOR_SERVER_ADDR.
const EnvPrefix = "CV_EVALUATOR"

// Config represents the application configuration.
type Config struct {
	Logging          LoggingConfig `mapstructure:"logging" json:"logging"`
	Server           ServerConfig  `mapstructure:"server" json:"server"`
	RequirementsFile string        `mapstructure:"requirements_file" json:"requirements_file,omitempty"`
	Scoring          ScoringConfig `mapstructure:"scoring" json:"scoring"`
	Output           OutputConfig  `mapstructure:"output" json:"output"`
	Pandoc           PandocConfig  `mapstructure:"pandoc" json:"pandoc"`
}

// LoggingConfig selects the log encoding and level.
type LoggingConfig struct {
	JSON  bool `mapstructure:"json" json:"json"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" json:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" json:"write_timeout"`
}

// ScoringConfig tunes the scoring engine.
type ScoringConfig struct {
	DurationFallbackMonths int      `mapstructure:"duration_fallback_months" json:"duration_fallback_months"`
	RequiredSections       []string `mapstructure:"required_sections" json:"required_sections"`
}

// OutputConfig holds report output settings for the CLI.
type OutputConfig struct {
	Dir      string `mapstructure:"dir" json:"dir"`
	Markdown bool   `mapstructure:"markdown" json:"markdown"`
	PDF      bool   `mapstructure:"pdf" json:"pdf"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	TemplatePath string `mapstructure:"template_path" json:"template_path"`
	ClassFile    string `mapstructure:"class_file" json:"class_file"`
}

// SetDefaults registers every key with its default so environment overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.json", false)
	v.SetDefault("logging.debug", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("requirements_file", "")
	v.SetDefault("scoring.duration_fallback_months", 12)
	v.SetDefault("scoring.required_sections", []string{"summary", "experience", "education", "skills"})
	v.SetDefault("output.dir", "./reports")
	v.SetDefault("output.markdown", false)
	v.SetDefault("output.pdf", false)
	v.SetDefault("pandoc.template_path", "")
	v.SetDefault("pandoc.class_file", "")
}

// DefaultPath is where InitConfig writes when no path is given.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, "."+Name, Name+".yaml")
	return path, err
}

// NewViper builds a viper instance with defaults, environment overrides and the
// config file. An explicit path must exist; otherwise cv-evaluator.yaml is
// looked up in the working directory and ~/.cv-evaluator and may be absent.
func NewViper(configPath string) (v *viper.Viper, err error) {
	v = viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		err = v.ReadInConfig()
		if err != nil {
			err = errors.Wrapf(err, "failed to read config file: %s", configPath)
			return v, err
		}
		return v, err
	}

	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if homeDir, homeErr := os.UserHomeDir(); homeErr == nil {
		v.AddConfigPath(filepath.Join(homeDir, "."+Name))
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			err = nil
			return v, err
		}
		err = errors.Wrap(err, "failed to read config file")
		return v, err
	}

	return v, err
}

// Decode unmarshals and validates the configuration held by v.
func Decode(v *viper.Viper) (cfg Config, err error) {
	err = v.Unmarshal(&cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to parse config")
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Load reads configuration from file with environment variable overrides.
func Load(configPath string) (cfg Config, err error) {
	var v *viper.Viper
	v, err = NewViper(configPath)
	if err != nil {
		return cfg, err
	}

	cfg, err = Decode(v)
	return cfg, err
}

// Validate checks the configuration for values the evaluator cannot work with.
func (c *Config) Validate() (err error) {
	if c.Scoring.DurationFallbackMonths < 0 {
		err = errors.New("scoring.duration_fallback_months must not be negative")
		return err
	}

	if len(c.Scoring.RequiredSections) == 0 {
		err = errors.New("scoring.required_sections must not be empty")
		return err
	}

	if c.Server.Addr == "" {
		err = errors.New("server.addr is required in config")
		return err
	}

	if c.Output.PDF {
		for _, path := range []string{c.Pandoc.TemplatePath, c.Pandoc.ClassFile} {
			if path == "" {
				continue
			}
			_, err = os.Stat(path)
			if os.IsNotExist(err) {
				err = errors.Errorf("pandoc file not found: %s", path)
				return err
			}
		}
		err = nil
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "./reports"
	}

	return err
}

const defaultConfigYAML = `# cv-evaluator configuration.
# Every key can be overridden with an environment variable, e.g.
# CV_EVALUATOR_SERVER_ADDR=:9090.

logging:
  json: false
  debug: false

server:
  addr: ":8080"
  read_timeout: 15s
  write_timeout: 30s

# Requirements document merged over the built-in defaults.
requirements_file: ""

scoring:
  # Months assumed for an employment duration that cannot be parsed.
  duration_fallback_months: 12
  required_sections:
    - summary
    - experience
    - education
    - skills

output:
  dir: ./reports
  markdown: false
  pdf: false

pandoc:
  template_path: ""
  class_file: ""
`

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	err = os.WriteFile(path, []byte(defaultConfigYAML), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
