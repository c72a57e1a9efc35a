package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

type fileSchema struct {
	Log     logSchema     `toml:"log"`
	Color   colorSchema   `toml:"color"`
	Session sessionSchema `toml:"session"`
	Daemon  daemonSchema  `toml:"daemon"`
	Device  deviceSchema  `toml:"device"`
}

type logSchema struct {
	Path string `toml:"path"`
}

type colorSchema struct {
	Hue        int `toml:"hue"`
	Saturation int `toml:"saturation"`
	Value      int `toml:"value"`
	DimValue   int `toml:"dim_value"`
}

type sessionSchema struct {
	DimTimeout     string `toml:"dim_timeout"`
	ReleaseTimeout string `toml:"release_timeout"`
}

type daemonSchema struct {
	CleanupInterval string `toml:"cleanup_interval"`
	TickInterval    string `toml:"tick_interval"`
}

type deviceSchema struct {
	VendorID  int `toml:"vendor_id"`
	ProductID int `toml:"product_id"`
}

func toSchema(c Config) fileSchema {
	return fileSchema{
		Log: logSchema{Path: c.EventLogPath},
		Color: colorSchema{
			Hue:        int(c.Accent.H),
			Saturation: int(c.Accent.S),
			Value:      int(c.Accent.V),
			DimValue:   int(c.DimValue),
		},
		Session: sessionSchema{
			DimTimeout:     c.DimTimeout.String(),
			ReleaseTimeout: c.ReleaseTimeout.String(),
		},
		Daemon: daemonSchema{
			CleanupInterval: c.CleanupInterval.String(),
			TickInterval:    c.TickInterval.String(),
		},
		Device: deviceSchema{
			VendorID:  int(c.VendorID),
			ProductID: int(c.ProductID),
		},
	}
}

// WriteFile persists the configuration as TOML at path, creating the
// parent directory when needed. Existing files are not overwritten.
func WriteFile(c Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	encoded, err := toml.Marshal(toSchema(c))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, encoded, fileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
