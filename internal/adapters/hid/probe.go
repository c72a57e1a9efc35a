package hid

import (
	"fmt"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// Probe tries each protocol in order of capability: VIALRGB first, then
// the raw fallback. The returned device is already connected. When
// neither handshake succeeds the error names the expected device identity
// so the operator knows what hardware and firmware to plug in.
func Probe(vendorID, productID uint16) (ports.Device, error) {
	return probe(vendorID, productID, []ports.Device{
		NewVialRGB(),
		NewRawHID(vendorID, productID),
	})
}

func probe(vendorID, productID uint16, candidates []ports.Device) (ports.Device, error) {
	for _, dev := range candidates {
		if err := dev.Connect(); err == nil {
			return dev, nil
		}
	}

	return nil, fmt.Errorf("%w: expected Work Louder Micro with VIALRGB or Raw HID firmware (%s)",
		domain.ErrNoDevice, deviceIdentity(vendorID, productID))
}
