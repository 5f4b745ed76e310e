package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htgo/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htgo.yaml"

	// DefaultAddr is the default listen address of htgo serve.
	DefaultAddr = ":8080"

	// DefaultPage is the demo page rendered when none is named.
	DefaultPage = "index"
)

// Config represents the complete htgo.yaml configuration.
type Config struct {
	// Serve configures the demo server.
	Serve ServeConfig `yaml:"serve"`

	// Render configures htgo render.
	Render RenderConfig `yaml:"render"`

	// Bench configures htgo bench.
	Bench BenchConfig `yaml:"bench"`

	// Publish configures htgo publish.
	Publish PublishConfig `yaml:"publish"`

	// Log configures the command line logger.
	Log LogConfig `yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains the demo server settings.
type ServeConfig struct {
	Addr         string        `yaml:"addr" validate:"required,hostname_port"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
	Metrics      bool          `yaml:"metrics"`
	MetricsPath  string        `yaml:"metrics_path" validate:"omitempty,startswith=/"`
	Tracing      bool          `yaml:"tracing"`
	WebSocket    bool          `yaml:"websocket"`
}

// RenderConfig contains the htgo render settings.
type RenderConfig struct {
	// Page is the demo page to render.
	Page string `yaml:"page" validate:"required"`

	// Output is the file to write; empty writes to stdout.
	Output string `yaml:"output"`

	// Minify minifies the output.
	Minify bool `yaml:"minify"`
}

// BenchConfig contains the htgo bench settings.
type BenchConfig struct {
	Rows       int   `yaml:"rows" validate:"min=1,max=1000000"`
	Iterations int   `yaml:"iterations" validate:"min=1"`
	Seed       int64 `yaml:"seed"`
}

// PublishConfig contains the S3 publishing settings. The bucket is only
// required by htgo publish itself.
type PublishConfig struct {
	Bucket       string `yaml:"bucket" validate:"omitempty,min=3,max=63"`
	Prefix       string `yaml:"prefix"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint" validate:"omitempty,url"`
	PathStyle    bool   `yaml:"path_style"`
	Minify       bool   `yaml:"minify"`
	CacheControl string `yaml:"cache_control"`
}

// LogConfig contains the logger settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Serve: ServeConfig{
			Addr:         DefaultAddr,
			WriteTimeout: 30 * time.Second,
			Metrics:      true,
			MetricsPath:  "/metrics",
			WebSocket:    true,
		},
		Render: RenderConfig{
			Page: DefaultPage,
		},
		Bench: BenchConfig{
			Rows:       1000,
			Iterations: 10,
		},
		Publish: PublishConfig{
			Minify: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads htgo.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("H083", filepath.Base(path), filepath.Dir(path))
		}
		return nil, errors.New("H080").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H080").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML")
	}
	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("H080").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("H080").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in values a partial file left empty.
func (c *Config) applyDefaults() {
	def := New()
	if c.Serve.Addr == "" {
		c.Serve.Addr = def.Serve.Addr
	}
	if c.Serve.Metrics && c.Serve.MetricsPath == "" {
		c.Serve.MetricsPath = def.Serve.MetricsPath
	}
	if c.Render.Page == "" {
		c.Render.Page = def.Render.Page
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// OutputPath returns the render output resolved against the config
// directory, or "" for stdout.
func (c *Config) OutputPath() string {
	if c.Render.Output == "" || filepath.IsAbs(c.Render.Output) {
		return c.Render.Output
	}
	return filepath.Join(c.Dir(), c.Render.Output)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration. All violations are listed in the
// error detail, one per line, by their YAML path.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.New("H080").Wrap(err)
	}
	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		lines = append(lines, describe(fe))
	}
	return errors.New("H080").
		WithDetail(strings.Join(lines, "\n")).
		Wrap(err)
}

func describe(fe validator.FieldError) string {
	// Drop the root struct name: "Config.serve.addr" becomes "serve.addr".
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "min", "gte":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "hostname_port":
		return field + " must be a host:port address"
	case "startswith":
		return field + " must start with " + fe.Param()
	case "url":
		return field + " must be a URL"
	}
	return field + " failed the " + fe.Tag() + " check"
}
