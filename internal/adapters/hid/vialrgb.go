package hid

import (
	"encoding/binary"
	"strings"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// VIA/VIALRGB opcodes and parameters.
const (
	viaGetProtocolVersion = 0x01
	viaLightingSetValue   = 0x07
	viaLightingGetValue   = 0x08

	vialRGBGetInfo       = 0x40
	vialRGBSetMode       = 0x41
	vialRGBDirectFastSet = 0x42
	vialRGBGetNumberLEDs = 0x43

	vialRGBEffectDirect = 1
	vialRGBEffectOff    = 0

	minViaVersion = 9

	// fastSetBatch is the largest LED run one FASTSET frame can carry.
	fastSetBatch = 9
)

// VialRGB speaks the VIALRGB direct lighting protocol. LED colors travel
// as batched multi-LED payloads; firmware blink, underglow, and key press
// reports are not part of this protocol.
type VialRGB struct {
	enumerate enumerator

	dev      transport
	ledCount int
}

var _ ports.Device = (*VialRGB)(nil)

func NewVialRGB() *VialRGB {
	return &VialRGB{enumerate: systemEnumerator}
}

func (p *VialRGB) Name() string {
	return "VIALRGB"
}

func (p *VialRGB) LEDCount() int {
	return p.ledCount
}

// Connect scans every HID interface whose serial carries the Vial magic
// and performs the versioned handshake: protocol version, VIALRGB
// capability flag, then LED count.
func (p *VialRGB) Connect() error {
	for _, cand := range p.enumerate(0, 0) {
		if !strings.Contains(cand.serial, vialSerial) {
			continue
		}

		dev, err := cand.open()
		if err != nil {
			continue
		}
		p.dev = dev

		if p.handshake() {
			return nil
		}

		_ = dev.Close()
		p.dev = nil
	}

	return domain.ErrNoDevice
}

func (p *VialRGB) handshake() bool {
	resp := p.send([]byte{viaGetProtocolVersion})
	if resp == nil || resp[0] != viaGetProtocolVersion {
		return false
	}
	if version := uint16(resp[1])<<8 | uint16(resp[2]); version < minViaVersion {
		return false
	}

	resp = p.send([]byte{viaLightingGetValue, vialRGBGetInfo})
	if resp == nil || binary.LittleEndian.Uint16(resp[2:4]) != 1 {
		return false
	}

	resp = p.send([]byte{viaLightingGetValue, vialRGBGetNumberLEDs})
	if resp == nil {
		return false
	}
	p.ledCount = int(binary.LittleEndian.Uint16(resp[2:4]))

	return true
}

// send issues one framed command and reads a single reply. VIALRGB
// firmware never interleaves unsolicited frames.
func (p *VialRGB) send(msg []byte) []byte {
	if p.dev == nil {
		return nil
	}

	if _, err := p.dev.Write(frame(msg)); err != nil {
		return nil
	}

	buf := make([]byte, frameLen)
	n, err := p.dev.ReadWithTimeout(buf, replyTimeout)
	if err != nil || n == 0 {
		return nil
	}

	return buf
}

func (p *VialRGB) setMode(mode uint16) {
	msg := make([]byte, 8)
	msg[0] = viaLightingSetValue
	msg[1] = vialRGBSetMode
	binary.LittleEndian.PutUint16(msg[2:4], mode)
	msg[4], msg[5], msg[6], msg[7] = 128, 128, 128, 128
	p.send(msg)
}

func (p *VialRGB) EnterDirectMode() {
	p.setMode(vialRGBEffectDirect)
}

func (p *VialRGB) SetLED(index int, c domain.HSV) {
	msg := make([]byte, 5, 8)
	msg[0] = viaLightingSetValue
	msg[1] = vialRGBDirectFastSet
	binary.LittleEndian.PutUint16(msg[2:4], uint16(index))
	msg[4] = 1
	msg = append(msg, c.H, c.S, c.V)
	p.send(msg)
}

// SetAllLEDs paints the whole matrix in fixed-size FASTSET batches.
func (p *VialRGB) SetAllLEDs(c domain.HSV) {
	for start := 0; start < p.ledCount; start += fastSetBatch {
		batch := p.ledCount - start
		if batch > fastSetBatch {
			batch = fastSetBatch
		}

		msg := make([]byte, 5, 5+3*batch)
		msg[0] = viaLightingSetValue
		msg[1] = vialRGBDirectFastSet
		binary.LittleEndian.PutUint16(msg[2:4], uint16(start))
		msg[4] = byte(batch)
		for i := 0; i < batch; i++ {
			msg = append(msg, c.H, c.S, c.V)
		}
		p.send(msg)
	}
}

// SetBlink is unsupported: VIALRGB has no firmware-side blink.
func (p *VialRGB) SetBlink(int, bool) {}

// SetUnderglow is unsupported under VIALRGB.
func (p *VialRGB) SetUnderglow(domain.HSV) {}

// SetUnderglowBreathe is unsupported under VIALRGB.
func (p *VialRGB) SetUnderglowBreathe(domain.HSV) {}

func (p *VialRGB) RestoreEffect() {
	p.setMode(vialRGBEffectOff)
}

// PollKeyEvent always reports no event: VIALRGB firmware does not send
// key press reports.
func (p *VialRGB) PollKeyEvent() (domain.Key, bool) {
	return domain.Key{}, false
}

func (p *VialRGB) Close() {
	if p.dev != nil {
		_ = p.dev.Close()
		p.dev = nil
	}
}
