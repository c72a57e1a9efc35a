package application

import (
	"github.com/KornelijusGlinskas/keyboard-claude/internal/config"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// LEDRenderer projects session state onto the device. Every render
// re-synchronizes the full visible state from scratch rather than
// diffing; the daemon only invokes it when state actually changed, which
// bounds the device write rate.
type LEDRenderer struct {
	cfg   config.Config
	clock ports.Clock
}

func NewLEDRenderer(cfg config.Config, clock ports.Clock) *LEDRenderer {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &LEDRenderer{cfg: cfg, clock: clock}
}

// Render pushes the current session states to the LEDs:
//   - your-turn sessions burn at full accent brightness and blink
//   - dimmed your-turn sessions hold a steady reduced brightness
//   - working sessions hold the reduced ambient brightness
//
// The global indicator pair lights and blinks only when two or more
// sessions are live and at least one awaits the user. Underglow breathes
// for the whole life of the connection as the daemon-alive signal.
func (r *LEDRenderer) Render(dev ports.Device, mgr *SessionManager) {
	layout := r.cfg.Layout

	dev.EnterDirectMode()
	dev.SetAllLEDs(domain.Off)
	for i := 0; i < layout.LEDCount; i++ {
		dev.SetBlink(i, false)
	}

	now := r.clock.Now()
	dimmed := make(map[domain.SessionID]struct{})
	for _, sess := range mgr.GetDimmed(now) {
		dimmed[sess.ID] = struct{}{}
	}

	for _, sess := range mgr.Sessions() {
		led := layout.SlotLEDs[sess.Slot]
		_, isDim := dimmed[sess.ID]

		if sess.State == domain.StateYourTurn && !isDim {
			dev.SetLED(led, r.cfg.Accent)
			dev.SetBlink(led, true)
		} else {
			dev.SetLED(led, r.cfg.Accent.WithValue(r.cfg.DimValue))
		}
	}

	if mgr.Count() >= 2 && mgr.AnyYourTurn() {
		for _, led := range layout.GlobalLEDs {
			dev.SetLED(led, r.cfg.Accent)
			dev.SetBlink(led, true)
		}
	}

	dev.SetUnderglowBreathe(r.cfg.Accent)
}
