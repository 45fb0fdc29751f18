package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vfiber/internal/errors"
)

const (
	// DefaultFrameBudget is the default time per idle callback.
	DefaultFrameBudget = 8 * time.Millisecond

	// DefaultUnits is the default number of units per manual slice.
	DefaultUnits = 4

	// DefaultAddr is the default server listen address.
	DefaultAddr = ":8080"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vfiber"

	// DefaultMetricsPath is the default metrics endpoint.
	DefaultMetricsPath = "/metrics"

	// DefaultRegion is the default S3 region for snapshots.
	DefaultRegion = "us-east-1"
)

// Scheduler modes.
const (
	ModeLoop   = "loop"
	ModeManual = "manual"
)

// FileNames are the configuration file names Load looks for, in order.
var FileNames = []string{"vfiber.yaml", "vfiber.yml", "vfiber.json"}

// Config is the complete vfiber configuration.
type Config struct {
	// Scheduler controls how render work is sliced.
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Server configures the live session server.
	Server ServerConfig `json:"server" yaml:"server"`

	// Log configures the slog handler.
	Log LogConfig `json:"log" yaml:"log"`

	// Metrics configures the Prometheus collectors.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Snapshot configures where demo commits are stored.
	Snapshot SnapshotConfig `json:"snapshot" yaml:"snapshot"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SchedulerConfig controls how render work is sliced.
type SchedulerConfig struct {
	// Mode is "loop" (frame-budgeted goroutine loop) or "manual"
	// (fixed units per slice, deterministic).
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// FrameBudget is the time each idle callback may spend in loop mode.
	FrameBudget Duration `json:"frameBudget,omitempty" yaml:"frame_budget,omitempty"`

	// Units is the number of units each slice performs in manual mode.
	Units int `json:"units,omitempty" yaml:"units,omitempty"`
}

// ServerConfig configures the live session server.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// ReadTimeout bounds how long a session waits for a client message.
	ReadTimeout Duration `json:"readTimeout,omitempty" yaml:"read_timeout,omitempty"`

	// WriteTimeout bounds each batch write.
	WriteTimeout Duration `json:"writeTimeout,omitempty" yaml:"write_timeout,omitempty"`

	// Root names the demo component every session renders.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Enabled registers the engine metrics and serves them.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Path is the HTTP path of the metrics endpoint.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// SnapshotConfig configures commit snapshots.
type SnapshotConfig struct {
	// Target is a directory or an s3://bucket/prefix URI. Empty disables
	// snapshots.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Region is the S3 region.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// New returns a configuration with default values.
func New() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			Mode:        ModeLoop,
			FrameBudget: Duration(DefaultFrameBudget),
			Units:       DefaultUnits,
		},
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  Duration(60 * time.Second),
			WriteTimeout: Duration(10 * time.Second),
			Root:         "counter",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
		Snapshot: SnapshotConfig{
			Region: DefaultRegion,
		},
	}
}

// Load reads the first configuration file found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New(errors.CodeConfigNotFound).
		WithDetail("No " + strings.Join(FileNames, ", ") + " in " + dir).
		WithSuggestion("Create vfiber.yaml or pass --config")
}

// LoadFile reads configuration from path. The format follows the file
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail(path + " does not exist")
		}
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	cfg := New()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, errors.New(errors.CodeConfigParse).
			WithDetail("Unsupported config extension " + ext).
			WithSuggestion("Use .yaml, .yml or .json")
	}
	if err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path in the format its extension
// names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return errors.New(errors.CodeConfigParse).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigParse).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Scheduler.Mode == "" {
		c.Scheduler.Mode = ModeLoop
	}
	if c.Scheduler.FrameBudget == 0 {
		c.Scheduler.FrameBudget = Duration(DefaultFrameBudget)
	}
	if c.Scheduler.Units == 0 {
		c.Scheduler.Units = DefaultUnits
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.Root == "" {
		c.Server.Root = "counter"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Snapshot.Region == "" {
		c.Snapshot.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	invalid := func(detail, hint string) error {
		return errors.New(errors.CodeConfigInvalid).WithDetail(detail).WithSuggestion(hint)
	}

	switch {
	case !slices.Contains([]string{ModeLoop, ModeManual}, c.Scheduler.Mode):
		return invalid("scheduler.mode is "+c.Scheduler.Mode, "Use loop or manual")
	case c.Scheduler.FrameBudget <= 0:
		return invalid("scheduler.frame_budget must be positive", "Use a duration such as 8ms")
	case c.Scheduler.Units <= 0:
		return invalid("scheduler.units must be positive", "Use at least 1")
	case c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0:
		return invalid("server timeouts must not be negative", "Use 0 to disable a timeout")
	case !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)):
		return invalid("log.level is "+c.Log.Level, "Use debug, info, warn or error")
	case !slices.Contains([]string{"text", "json"}, strings.ToLower(c.Log.Format)):
		return invalid("log.format is "+c.Log.Format, "Use text or json")
	case !strings.HasPrefix(c.Metrics.Path, "/"):
		return invalid("metrics.path must start with /", "Use /metrics")
	case c.Snapshot.Target == "s3://" || strings.HasPrefix(c.Snapshot.Target, "s3:///"):
		return invalid("snapshot.target has no bucket", "Use s3://bucket/prefix or a directory")
	}
	return nil
}

// SlogLevel returns the configured level. Unknown levels map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a logger writing to w in the configured format.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
