package ports

import "github.com/KornelijusGlinskas/keyboard-claude/internal/domain"

// Device is the capability set both keyboard protocols expose. Every call
// is best-effort: device I/O failures degrade to no-ops so a wedged USB
// exchange never takes the daemon down.
type Device interface {
	// Connect probes for the device and performs the protocol handshake.
	Connect() error
	// Name identifies the protocol for diagnostics.
	Name() string
	// EnterDirectMode switches the firmware to host-driven LED colors.
	EnterDirectMode()
	SetLED(index int, color domain.HSV)
	SetAllLEDs(color domain.HSV)
	// SetBlink toggles firmware-side blinking for one LED. A no-op on
	// protocols without blink support.
	SetBlink(index int, enabled bool)
	SetUnderglow(color domain.HSV)
	SetUnderglowBreathe(color domain.HSV)
	// RestoreEffect exits direct mode and resumes the firmware's own
	// RGB effect.
	RestoreEffect()
	// PollKeyEvent returns a pending key press report, if any. It never
	// blocks beyond a few milliseconds.
	PollKeyEvent() (domain.Key, bool)
	Close()
}
