package application

import (
	"fmt"
	"time"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// fakeDevice records every issued command as a readable op string and
// feeds queued key events back through PollKeyEvent.
type fakeDevice struct {
	ops  []string
	keys []domain.Key
}

func (d *fakeDevice) Connect() error { return nil }
func (d *fakeDevice) Name() string   { return "fake" }

func (d *fakeDevice) EnterDirectMode() {
	d.ops = append(d.ops, "direct")
}

func (d *fakeDevice) SetLED(index int, c domain.HSV) {
	d.ops = append(d.ops, fmt.Sprintf("led %d %d/%d/%d", index, c.H, c.S, c.V))
}

func (d *fakeDevice) SetAllLEDs(c domain.HSV) {
	d.ops = append(d.ops, fmt.Sprintf("all %d/%d/%d", c.H, c.S, c.V))
}

func (d *fakeDevice) SetBlink(index int, enabled bool) {
	d.ops = append(d.ops, fmt.Sprintf("blink %d %t", index, enabled))
}

func (d *fakeDevice) SetUnderglow(c domain.HSV) {
	d.ops = append(d.ops, fmt.Sprintf("underglow %d/%d/%d", c.H, c.S, c.V))
}

func (d *fakeDevice) SetUnderglowBreathe(c domain.HSV) {
	d.ops = append(d.ops, fmt.Sprintf("breathe %d/%d/%d", c.H, c.S, c.V))
}

func (d *fakeDevice) RestoreEffect() {
	d.ops = append(d.ops, "restore")
}

func (d *fakeDevice) PollKeyEvent() (domain.Key, bool) {
	if len(d.keys) == 0 {
		return domain.Key{}, false
	}
	key := d.keys[0]
	d.keys = d.keys[1:]
	return key, true
}

func (d *fakeDevice) Close() {
	d.ops = append(d.ops, "close")
}

func (d *fakeDevice) reset() {
	d.ops = nil
}

type fakeActivator struct {
	activated []string
}

func (a *fakeActivator) Activate(windowRef string) {
	a.activated = append(a.activated, windowRef)
}

// fakeSource hands out one queued batch of events per poll.
type fakeSource struct {
	batches [][]domain.Event
}

func (s *fakeSource) push(events ...domain.Event) {
	s.batches = append(s.batches, events)
}

func (s *fakeSource) Poll() []domain.Event {
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}
