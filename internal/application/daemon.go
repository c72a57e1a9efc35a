package application

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/adapters/render/console"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/config"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// Daemon is the single-threaded control loop tying the event log, the
// session manager, the renderer, and the key router together. All device
// I/O happens on this one goroutine; per-call timeouts inside the device
// adapter bound the tick latency.
type Daemon struct {
	cfg      config.Config
	dev      ports.Device
	events   ports.EventSource
	mgr      *SessionManager
	renderer *LEDRenderer
	router   *KeyRouter
	clock    ports.Clock

	out     io.Writer
	console console.Renderer
}

func NewDaemon(
	cfg config.Config,
	dev ports.Device,
	events ports.EventSource,
	activator ports.WindowActivator,
	clock ports.Clock,
	out io.Writer,
) *Daemon {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if out == nil {
		out = io.Discard
	}

	return &Daemon{
		cfg:      cfg,
		dev:      dev,
		events:   events,
		mgr:      NewSessionManager(cfg.Layout.MaxSlots(), cfg.DimTimeout, cfg.ReleaseTimeout, clock),
		renderer: NewLEDRenderer(cfg, clock),
		router:   NewKeyRouter(cfg.Layout, activator),
		clock:    clock,
		out:      out,
		console:  console.NewRenderer(),
	}
}

// Sessions exposes the manager for tests and diagnostics.
func (d *Daemon) Sessions() *SessionManager {
	return d.mgr
}

// Run drives the loop until the context is cancelled, then neutralizes
// the device and returns. Per-tick errors are local: the loop only ever
// terminates via cancellation.
func (d *Daemon) Run(ctx context.Context) error {
	// The invoking user is assumed to be waiting: show the attention
	// baseline before the first log read.
	d.dev.SetUnderglowBreathe(d.cfg.Accent)
	dirty := true

	lastCleanup := d.clock.Now()

	ticker := time.NewTicker(d.cfg.TickInterval)
	defer ticker.Stop()

	for {
		dirty = d.tick(dirty, &lastCleanup)

		select {
		case <-ctx.Done():
			d.shutdown()
			return nil
		case <-ticker.C:
		}
	}
}

// tick performs one loop iteration in the fixed order: log events, one
// key event, periodic cleanup, conditional render.
func (d *Daemon) tick(dirty bool, lastCleanup *time.Time) bool {
	for _, ev := range d.events.Poll() {
		dirty = d.apply(ev) || dirty
	}

	if outcome, ok := d.router.Route(d.dev, d.mgr); ok {
		if outcome.Activated {
			fmt.Fprintln(d.out, d.console.KeyPress(outcome.Slot, outcome.Key, outcome.WindowRef))
		} else {
			fmt.Fprintln(d.out, d.console.KeyMiss(outcome.Slot, outcome.Key))
		}
	}

	now := d.clock.Now()
	if now.Sub(*lastCleanup) > d.cfg.CleanupInterval {
		stale := d.mgr.CleanupStale(now)
		if len(stale) > 0 {
			dirty = true
			for _, id := range stale {
				fmt.Fprintln(d.out, d.console.Released(id))
			}
		}
		*lastCleanup = now
	}

	if dirty {
		d.renderer.Render(d.dev, d.mgr)
		dirty = false
	}

	return dirty
}

// apply mutates session state for one event record and reports whether
// visible state changed. Idempotent transitions stay clean.
func (d *Daemon) apply(ev domain.Event) bool {
	if ev.SessionID == "" {
		return false
	}

	sess := d.mgr.GetOrCreate(ev.SessionID, ev.WindowRef)
	if sess == nil {
		// Slot pool exhausted; drop the event.
		return false
	}

	state, ok := ev.ImpliedState()
	if !ok || sess.State == state {
		return false
	}

	sess.State = state
	if state == domain.StateYourTurn {
		fmt.Fprintln(d.out, d.console.YourTurn(sess.Slot, ev))
	} else {
		fmt.Fprintln(d.out, d.console.Working(sess.Slot, ev))
	}

	return true
}

// shutdown restores the device to a neutral dark state. Best-effort with
// the usual per-call timeouts; no retries on the way out.
func (d *Daemon) shutdown() {
	d.dev.EnterDirectMode()
	d.dev.SetAllLEDs(domain.Off)
	for i := 0; i < d.cfg.Layout.LEDCount; i++ {
		d.dev.SetBlink(i, false)
	}
	d.dev.SetUnderglow(domain.Off)
	d.dev.Close()
}
