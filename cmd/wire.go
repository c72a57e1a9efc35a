package cmd

import (
	"fmt"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/adapters/focus"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/adapters/hid"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/adapters/render/console"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/config"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg       config.Config
	console   console.Renderer
	clock     ports.Clock
	activator ports.WindowActivator

	// probeDevice performs the connect-time protocol probe; replaceable
	// in tests to avoid touching real USB.
	probeDevice func(vendorID, productID uint16) (ports.Device, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire configuration: %w", err)
	}

	return &app{
		cfg:         cfg,
		console:     console.NewRenderer(),
		clock:       ports.SystemClock{},
		activator:   focus.NewITerm(),
		probeDevice: hid.Probe,
	}, nil
}
