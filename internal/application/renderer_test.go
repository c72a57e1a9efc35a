package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/config"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Default()
}

func renderSetup(t *testing.T) (*fakeDevice, *fakeClock, *SessionManager, *LEDRenderer) {
	t.Helper()

	cfg := testConfig()
	clock := newFakeClock()
	dev := &fakeDevice{}
	mgr := NewSessionManager(cfg.Layout.MaxSlots(), cfg.DimTimeout, cfg.ReleaseTimeout, clock)
	return dev, clock, mgr, NewLEDRenderer(cfg, clock)
}

func TestRenderResyncsFromScratch(t *testing.T) {
	dev, _, mgr, renderer := renderSetup(t)

	renderer.Render(dev, mgr)

	// Direct mode, full clear, every blink off, then the always-on
	// underglow breathing.
	require.GreaterOrEqual(t, len(dev.ops), 15)
	assert.Equal(t, "direct", dev.ops[0])
	assert.Equal(t, "all 0/0/0", dev.ops[1])
	for i := 0; i < 12; i++ {
		assert.Equal(t, fmt.Sprintf("blink %d false", i), dev.ops[2+i])
	}
	assert.Equal(t, "breathe 9/255/200", dev.ops[len(dev.ops)-1])
}

func TestRenderYourTurnSessionFullBrightnessAndBlink(t *testing.T) {
	dev, _, mgr, renderer := renderSetup(t)

	sess := mgr.GetOrCreate("s1", "")
	require.Equal(t, 0, sess.Slot)
	sess.State = domain.StateYourTurn

	renderer.Render(dev, mgr)

	// Slot 0 sits on LED 9.
	assert.Contains(t, dev.ops, "led 9 9/255/200")
	assert.Contains(t, dev.ops, "blink 9 true")
}

func TestRenderWorkingSessionDimSteady(t *testing.T) {
	dev, _, mgr, renderer := renderSetup(t)

	mgr.GetOrCreate("s1", "")

	renderer.Render(dev, mgr)

	assert.Contains(t, dev.ops, "led 9 9/255/80")
	assert.NotContains(t, dev.ops, "blink 9 true")
}

func TestRenderDimmedYourTurnStopsBlinking(t *testing.T) {
	dev, clock, mgr, renderer := renderSetup(t)

	sess := mgr.GetOrCreate("s1", "")
	sess.State = domain.StateYourTurn
	clock.Advance(6 * time.Minute)

	renderer.Render(dev, mgr)

	assert.Contains(t, dev.ops, "led 9 9/255/80")
	assert.NotContains(t, dev.ops, "blink 9 true")
}

func TestRenderGlobalIndicatorNeedsTwoSessionsAndAttention(t *testing.T) {
	dev, _, mgr, renderer := renderSetup(t)

	// One session in your-turn: indicator stays off.
	solo := mgr.GetOrCreate("s1", "")
	solo.State = domain.StateYourTurn
	renderer.Render(dev, mgr)
	assert.NotContains(t, dev.ops, "blink 10 true")
	assert.NotContains(t, dev.ops, "blink 11 true")

	// Second session joins, still one your-turn: indicator lights.
	dev.reset()
	mgr.GetOrCreate("s2", "")
	renderer.Render(dev, mgr)
	assert.Contains(t, dev.ops, "led 10 9/255/200")
	assert.Contains(t, dev.ops, "blink 10 true")
	assert.Contains(t, dev.ops, "led 11 9/255/200")
	assert.Contains(t, dev.ops, "blink 11 true")

	// Everyone back to working: indicator off again.
	dev.reset()
	solo.State = domain.StateWorking
	renderer.Render(dev, mgr)
	assert.NotContains(t, dev.ops, "blink 10 true")
}
