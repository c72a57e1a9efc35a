// Package hid drives the keyboard over raw USB HID using fixed 32-byte
// frames. Two wire protocols are implemented: the batched VIALRGB direct
// lighting protocol and a simpler custom raw protocol with per-LED
// commands, firmware blink, underglow control, and asynchronous key press
// reports.
package hid

import (
	"fmt"
	"time"

	gohid "github.com/sstallion/go-hid"
)

const (
	frameLen   = 32
	reportID   = 0x00
	usagePage  = 0xFF60
	usageID    = 0x61
	vialSerial = "vial:f64c2b3c"

	replyTimeout   = 500 * time.Millisecond
	keyPollTimeout = 5 * time.Millisecond

	// opKeyEvent frames arrive unsolicited, interleaved with command
	// replies, whenever a key is pressed in direct mode.
	opKeyEvent = 0xEE

	maxPendingKeys = 32
)

// transport is the seam over one open HID interface. The real
// implementation is *gohid.Device; tests substitute scripted devices.
type transport interface {
	Write(p []byte) (int, error)
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)
	Close() error
}

// candidate is one enumerated HID interface that may speak our protocol.
type candidate struct {
	open   func() (transport, error)
	serial string
}

// enumerator lists candidate interfaces for a vendor/product pair;
// zero values match any device.
type enumerator func(vendorID, productID uint16) []candidate

func systemEnumerator(vendorID, productID uint16) []candidate {
	var found []candidate
	_ = gohid.Enumerate(vendorID, productID, func(info *gohid.DeviceInfo) error {
		if info.UsagePage != usagePage || info.Usage != usageID {
			return nil
		}
		path := info.Path
		found = append(found, candidate{
			serial: info.SerialNbr,
			open: func() (transport, error) {
				return gohid.OpenPath(path)
			},
		})
		return nil
	})
	return found
}

// frame pads a message to the fixed frame length and prepends the HID
// report id byte expected by the write syscall.
func frame(msg []byte) []byte {
	out := make([]byte, frameLen+1)
	out[0] = reportID
	copy(out[1:], msg)
	return out
}

func deviceIdentity(vendorID, productID uint16) string {
	return fmt.Sprintf("VID=0x%04X PID=0x%04X", vendorID, productID)
}
