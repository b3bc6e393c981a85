package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/pkg/models"
)

// EnvPrefix is the prefix for environment overrides, e.g. ENERGYCALC_SERVER_ADDRESS
const EnvPrefix = "ENERGYCALC"

const (
	defaultLogLevel      = "info"
	defaultServerAddress = "127.0.0.1:8501"
	defaultAge           = 25
	defaultACCount       = 1
	maxACCount           = 10
)

// Config holds the application configuration
type Config struct {
	LogLevel    string          `yaml:"log_level,omitempty" envconfig:"LOG_LEVEL"`
	AverageMode string          `yaml:"average_mode,omitempty" envconfig:"AVERAGE_MODE"` // legacy or calendar
	Server      ServerConfig    `yaml:"server,omitempty" envconfig:"SERVER"`
	Defaults    ProfileDefaults `yaml:"defaults,omitempty" envconfig:"DEFAULTS"`
}

// ServerConfig holds the local form server settings
type ServerConfig struct {
	Address string `yaml:"address,omitempty" envconfig:"ADDRESS"` // e.g., "127.0.0.1:8501"
}

// ProfileDefaults pre-fills the input form and CLI flags
type ProfileDefaults struct {
	Age               int    `yaml:"age,omitempty" envconfig:"AGE"`
	Area              string `yaml:"area,omitempty" envconfig:"AREA"`
	City              string `yaml:"city,omitempty" envconfig:"CITY"`
	HouseType         string `yaml:"house_type,omitempty" envconfig:"HOUSE_TYPE"`
	RoomType          string `yaml:"room_type,omitempty" envconfig:"ROOM_TYPE"`
	Day               string `yaml:"day,omitempty" envconfig:"DAY"`
	HasAC             *bool  `yaml:"has_ac,omitempty" envconfig:"HAS_AC"`
	ACCount           int    `yaml:"ac_count,omitempty" envconfig:"AC_COUNT"`
	HasFridge         *bool  `yaml:"has_fridge,omitempty" envconfig:"HAS_FRIDGE"`
	HasWashingMachine *bool  `yaml:"has_washing_machine,omitempty" envconfig:"HAS_WASHING_MACHINE"`
}

// Load reads the config file and applies environment overrides
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case os.IsNotExist(err):
		// Missing file means defaults
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("reading environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// Starter returns a config with every default spelled out, used by "config init"
func Starter() *Config {
	yes := true
	return &Config{
		LogLevel:    defaultLogLevel,
		AverageMode: string(models.AverageLegacy),
		Server:      ServerConfig{Address: defaultServerAddress},
		Defaults: ProfileDefaults{
			Age:               defaultAge,
			HouseType:         string(models.HouseFlat),
			RoomType:          string(models.Room1BHK),
			Day:               string(models.Monday),
			HasAC:             &yes,
			ACCount:           defaultACCount,
			HasFridge:         &yes,
			HasWashingMachine: &yes,
		},
	}
}

// Validate checks enumerated values that would otherwise fail much later
func (c *Config) Validate() error {
	if _, err := estimator.ParseAverageMode(c.AverageMode); err != nil {
		return fmt.Errorf("config average_mode: %w", err)
	}

	d := c.Defaults
	if d.RoomType != "" {
		if _, err := estimator.Fixtures(models.ParseRoomType(d.RoomType)); err != nil {
			return fmt.Errorf("config defaults.room_type: %w", err)
		}
	}
	if d.HouseType != "" && !validHouseType(models.HouseType(d.HouseType)) {
		return fmt.Errorf("config defaults.house_type: unknown house type %q", d.HouseType)
	}
	if d.Day != "" && !estimator.IsKnownDay(models.Day(d.Day)) {
		return fmt.Errorf("config defaults.day: unknown day %q", d.Day)
	}
	if d.ACCount < 0 || d.ACCount > maxACCount {
		return fmt.Errorf("config defaults.ac_count: must be between 1 and %d", maxACCount)
	}
	if d.Age < 0 || d.Age > 120 {
		return fmt.Errorf("config defaults.age: must be between 1 and 120")
	}

	return nil
}

// GetLogLevel returns the log level with a default of "info"
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return defaultLogLevel
	}
	return c.LogLevel
}

// GetAverageMode returns the average mode, legacy unless configured otherwise
func (c *Config) GetAverageMode() models.AverageMode {
	mode, err := estimator.ParseAverageMode(c.AverageMode)
	if err != nil {
		return models.AverageLegacy
	}
	return mode
}

// GetServerAddress returns the form server listen address
func (c *Config) GetServerAddress() string {
	if c.Server.Address == "" {
		return defaultServerAddress
	}
	return c.Server.Address
}

// GetAge returns the default age shown on the form
func (c *Config) GetAge() int {
	if c.Defaults.Age <= 0 {
		return defaultAge
	}
	return c.Defaults.Age
}

// GetHouseType returns the default house type
func (c *Config) GetHouseType() models.HouseType {
	if c.Defaults.HouseType == "" {
		return models.HouseFlat
	}
	return models.HouseType(c.Defaults.HouseType)
}

// GetRoomType returns the default room configuration
func (c *Config) GetRoomType() models.RoomType {
	if c.Defaults.RoomType == "" {
		return models.Room1BHK
	}
	return models.ParseRoomType(c.Defaults.RoomType)
}

// GetDay returns the default day, Monday if not set
func (c *Config) GetDay() models.Day {
	if c.Defaults.Day == "" {
		return models.Monday
	}
	return models.Day(c.Defaults.Day)
}

// GetACCount returns the default number of ACs
func (c *Config) GetACCount() int {
	if c.Defaults.ACCount <= 0 {
		return defaultACCount
	}
	return c.Defaults.ACCount
}

// GetAppliances returns the default appliance inventory. Unset flags default to present.
func (c *Config) GetAppliances() models.ApplianceSet {
	return models.ApplianceSet{
		HasAC:             boolOr(c.Defaults.HasAC, true),
		ACCount:           c.GetACCount(),
		HasFridge:         boolOr(c.Defaults.HasFridge, true),
		HasWashingMachine: boolOr(c.Defaults.HasWashingMachine, true),
	}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func validHouseType(h models.HouseType) bool {
	for _, known := range models.HouseTypes {
		if h == known {
			return true
		}
	}
	return false
}
