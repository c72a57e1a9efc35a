package hid

import (
	"time"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// Raw protocol opcodes. Every reply echoes the opcode and carries 0x01 in
// its second byte on success. This is a closed set; 0x09 reboots into the
// bootloader and is never issued by the daemon.
const (
	opSetLED          = 0x01
	opSetLEDRange     = 0x02
	opRestoreEffect   = 0x03
	opSetAllLEDs      = 0x04
	opEnterDirectMode = 0x05
	opSetUnderglow    = 0x06
	opSetBlink        = 0x07
	opSetBlinkSpeed   = 0x08
	opBootloader      = 0x09
	opUnderglowBreathe = 0x0A
	opPing            = 0xF0

	replyOK = 0x01
)

// RawHID speaks the custom per-key LED protocol. It is the fallback
// variant and the only one that reports key presses back to the host.
type RawHID struct {
	vendorID  uint16
	productID uint16
	enumerate enumerator

	dev      transport
	ledCount int

	// pendingKeys stashes key event frames that arrived while a command
	// reply was awaited, so PollKeyEvent can drain them in order.
	pendingKeys []domain.Key
}

var _ ports.Device = (*RawHID)(nil)

func NewRawHID(vendorID, productID uint16) *RawHID {
	return &RawHID{
		vendorID:  vendorID,
		productID: productID,
		enumerate: systemEnumerator,
	}
}

func (p *RawHID) Name() string {
	return "Raw HID"
}

// LEDCount reports the matrix size announced in the ping reply.
func (p *RawHID) LEDCount() int {
	return p.ledCount
}

// Connect opens the first matching HID interface whose ping reply carries
// the success marker.
func (p *RawHID) Connect() error {
	for _, cand := range p.enumerate(p.vendorID, p.productID) {
		dev, err := cand.open()
		if err != nil {
			continue
		}

		p.dev = dev
		resp := p.send([]byte{opPing})
		if resp != nil && resp[0] == opPing && resp[1] == replyOK {
			p.ledCount = int(resp[2])
			return nil
		}

		_ = dev.Close()
		p.dev = nil
	}

	return domain.ErrNoDevice
}

// send issues one command frame and waits for its reply, stashing any key
// event frames that arrive in the meantime. Returns nil on I/O failure or
// timeout; the caller treats that as "no response" and moves on.
func (p *RawHID) send(msg []byte) []byte {
	if p.dev == nil {
		return nil
	}

	if _, err := p.dev.Write(frame(msg)); err != nil {
		return nil
	}

	return p.readReply(msg[0])
}

func (p *RawHID) readReply(expected byte) []byte {
	deadline := time.Now().Add(replyTimeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}

		buf := make([]byte, frameLen)
		n, err := p.dev.ReadWithTimeout(buf, remaining)
		if err != nil {
			return nil
		}
		if n == 0 {
			continue
		}

		if buf[0] == opKeyEvent {
			p.stashKey(domain.Key{Row: buf[1], Col: buf[2]})
			continue
		}
		if buf[0] == expected {
			return buf
		}
	}
}

func (p *RawHID) stashKey(key domain.Key) {
	if len(p.pendingKeys) >= maxPendingKeys {
		p.pendingKeys = p.pendingKeys[1:]
	}
	p.pendingKeys = append(p.pendingKeys, key)
}

func (p *RawHID) EnterDirectMode() {
	p.send([]byte{opEnterDirectMode})
}

func (p *RawHID) SetLED(index int, c domain.HSV) {
	p.send([]byte{opSetLED, byte(index), c.H, c.S, c.V})
}

func (p *RawHID) SetAllLEDs(c domain.HSV) {
	p.send([]byte{opSetAllLEDs, c.H, c.S, c.V})
}

func (p *RawHID) SetBlink(index int, enabled bool) {
	flag := byte(0)
	if enabled {
		flag = 1
	}
	p.send([]byte{opSetBlink, byte(index), flag})
}

// SetBlinkSpeed sets the firmware blink period in milliseconds. The
// firmware clamps periods below 50ms.
func (p *RawHID) SetBlinkSpeed(period time.Duration) {
	ms := uint16(period.Milliseconds())
	p.send([]byte{opSetBlinkSpeed, byte(ms), byte(ms >> 8)})
}

func (p *RawHID) SetUnderglow(c domain.HSV) {
	p.send([]byte{opSetUnderglow, c.H, c.S, c.V})
}

func (p *RawHID) SetUnderglowBreathe(c domain.HSV) {
	p.send([]byte{opUnderglowBreathe, c.H, c.S, c.V})
}

func (p *RawHID) RestoreEffect() {
	p.send([]byte{opRestoreEffect})
}

// PollKeyEvent drains stashed key reports first, then attempts one short
// non-blocking read of its own.
func (p *RawHID) PollKeyEvent() (domain.Key, bool) {
	if len(p.pendingKeys) > 0 {
		key := p.pendingKeys[0]
		p.pendingKeys = p.pendingKeys[1:]
		return key, true
	}

	if p.dev == nil {
		return domain.Key{}, false
	}

	buf := make([]byte, frameLen)
	n, err := p.dev.ReadWithTimeout(buf, keyPollTimeout)
	if err != nil || n == 0 {
		return domain.Key{}, false
	}
	if buf[0] == opKeyEvent {
		return domain.Key{Row: buf[1], Col: buf[2]}, true
	}

	return domain.Key{}, false
}

func (p *RawHID) Close() {
	if p.dev != nil {
		_ = p.dev.Close()
		p.dev = nil
	}
}
