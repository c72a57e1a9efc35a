package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "claude-kbd"

	keyLogPath         = "log.path"
	keyHue             = "color.hue"
	keySaturation      = "color.saturation"
	keyValue           = "color.value"
	keyDimValue        = "color.dim_value"
	keyDimTimeout      = "session.dim_timeout"
	keyReleaseTimeout  = "session.release_timeout"
	keyCleanupInterval = "daemon.cleanup_interval"
	keyTickInterval    = "daemon.tick_interval"
	keyVendorID        = "device.vendor_id"
	keyProductID       = "device.product_id"
)

// Config is the single immutable configuration every component receives.
// It folds together the event log location, the accent color scheme, the
// session staleness policy, the loop timing, and the device identity plus
// its physical layout tables.
type Config struct {
	EventLogPath string

	Accent   domain.HSV
	DimValue uint8

	DimTimeout      time.Duration
	ReleaseTimeout  time.Duration
	CleanupInterval time.Duration
	TickInterval    time.Duration

	VendorID  uint16
	ProductID uint16

	Layout domain.Layout
}

// Default returns the built-in configuration for the reference device,
// a Work Louder Micro driving the orange #DE7356 accent.
func Default() Config {
	return Config{
		EventLogPath:    "/tmp/claude-kbd-events.jsonl",
		Accent:          domain.HSV{H: 9, S: 255, V: 200},
		DimValue:        80,
		DimTimeout:      5 * time.Minute,
		ReleaseTimeout:  10 * time.Minute,
		CleanupInterval: 30 * time.Second,
		TickInterval:    50 * time.Millisecond,
		VendorID:        0x574C,
		ProductID:       0xE6E3,
		Layout:          domain.WorkLouderMicroLayout(),
	}
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}

	return filepath.Join(base, configDir, configName+"."+configType), nil
}

// Load reads the TOML config file, falling back to defaults for any key
// not present. A missing file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	def := Default()

	base, err := os.UserConfigDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve user config directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(base, configDir))

	cfg.SetDefault(keyLogPath, def.EventLogPath)
	cfg.SetDefault(keyHue, int(def.Accent.H))
	cfg.SetDefault(keySaturation, int(def.Accent.S))
	cfg.SetDefault(keyValue, int(def.Accent.V))
	cfg.SetDefault(keyDimValue, int(def.DimValue))
	cfg.SetDefault(keyDimTimeout, def.DimTimeout)
	cfg.SetDefault(keyReleaseTimeout, def.ReleaseTimeout)
	cfg.SetDefault(keyCleanupInterval, def.CleanupInterval)
	cfg.SetDefault(keyTickInterval, def.TickInterval)
	cfg.SetDefault(keyVendorID, int(def.VendorID))
	cfg.SetDefault(keyProductID, int(def.ProductID))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		EventLogPath: cfg.GetString(keyLogPath),
		Accent: domain.HSV{
			H: uint8(cfg.GetUint16(keyHue)),
			S: uint8(cfg.GetUint16(keySaturation)),
			V: uint8(cfg.GetUint16(keyValue)),
		},
		DimValue:        uint8(cfg.GetUint16(keyDimValue)),
		DimTimeout:      cfg.GetDuration(keyDimTimeout),
		ReleaseTimeout:  cfg.GetDuration(keyReleaseTimeout),
		CleanupInterval: cfg.GetDuration(keyCleanupInterval),
		TickInterval:    cfg.GetDuration(keyTickInterval),
		VendorID:        uint16(cfg.GetUint32(keyVendorID)),
		ProductID:       uint16(cfg.GetUint32(keyProductID)),
		Layout:          def.Layout,
	}

	if loaded.EventLogPath == "" {
		return Config{}, errors.New("event log path is empty")
	}
	if loaded.TickInterval <= 0 {
		return Config{}, errors.New("tick interval must be positive")
	}

	return loaded, nil
}
