package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
	"folio/internal/eventbus"
)

// ErrNoConfig is returned when an explicitly requested config file is missing
var ErrNoConfig = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version       int                 `toml:"version"`
	LogFile       string              `toml:"log_file"`
	UISettings    UISettings          `toml:"ui"`
	Mutation      MutationSettings    `toml:"mutation"`
	HiddenColumns map[string][]string `toml:"hidden_columns"` // page kind -> column ids
}

// UISettings represents UI-related configuration
type UISettings struct {
	PageSize        int  `toml:"page_size"`
	ShowDragHandles bool `toml:"show_drag_handles"`
	Mouse           bool `toml:"mouse"`
	AutosaveOnExit  bool `toml:"autosave_on_exit"`
}

// MutationSettings tunes the simulated action endpoint and the optimistic
// marker timeout
type MutationSettings struct {
	Latency     Duration `toml:"latency"`
	FailureRate float64  `toml:"failure_rate"` // 0..1
	Timeout     Duration `toml:"timeout"`      // 0 keeps markers until settled
	Concurrency int      `toml:"concurrency"`
}

// Duration is a time.Duration written as "1.5s" in TOML
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// Hidden returns the hidden column ids for a page
func (c *Config) Hidden(kind domain.Kind) []string {
	return c.HiddenColumns[string(kind)]
}

// Apply folds a UI preference change into the config
func (c *Config) Apply(e domain.ConfigChangedEvent) {
	if c.HiddenColumns == nil {
		c.HiddenColumns = make(map[string][]string)
	}
	for kind, cols := range e.HiddenColumns {
		if len(cols) == 0 {
			delete(c.HiddenColumns, string(kind))
			continue
		}
		c.HiddenColumns[string(kind)] = cols
	}
	if e.PageSize > 0 {
		c.UISettings.PageSize = e.PageSize
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "folio", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNoConfig) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing values keep
// their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HiddenColumns == nil {
		cfg.HiddenColumns = make(map[string][]string)
	}
	if cfg.UISettings.PageSize <= 0 {
		cfg.UISettings.PageSize = DefaultConfig().UISettings.PageSize
	}
	if cfg.Mutation.Concurrency <= 0 {
		cfg.Mutation.Concurrency = DefaultConfig().Mutation.Concurrency
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "folio.log",
		UISettings: UISettings{
			PageSize:        10,
			ShowDragHandles: true,
			Mouse:           true,
			AutosaveOnExit:  true,
		},
		Mutation: MutationSettings{
			Latency:     Duration{400 * time.Millisecond},
			FailureRate: 0,
			Timeout:     Duration{10 * time.Second},
			Concurrency: 4,
		},
		HiddenColumns: make(map[string][]string),
	}
}
