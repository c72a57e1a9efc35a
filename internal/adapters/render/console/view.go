// Package console renders daemon and watch output lines for the
// terminal.
package console

import (
	"fmt"
	"strings"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
)

// Renderer formats one-line diagnostics in a consistent style.
type Renderer struct {
	s styles
}

func NewRenderer() Renderer {
	return Renderer{s: newStyles()}
}

// YourTurn marks a session flipping to the attention state.
func (r Renderer) YourTurn(slot int, ev domain.Event) string {
	detail := strings.TrimSpace(ev.Kind + " " + ev.Notif)
	return fmt.Sprintf("  [%d] %s", slot, r.s.yourTurn.Render(">>> Your turn ("+detail+")"))
}

// Working marks a session returning to work.
func (r Renderer) Working(slot int, ev domain.Event) string {
	return fmt.Sprintf("  [%d] %s", slot, r.s.working.Render("<<< Working ("+ev.Kind+")"))
}

// KeyPress reports a routed key press.
func (r Renderer) KeyPress(slot int, key domain.Key, windowRef string) string {
	return fmt.Sprintf("  [%d] %s", slot,
		r.s.key.Render(fmt.Sprintf("KEY row=%d col=%d -> %s", key.Row, key.Col, windowRef)))
}

// KeyMiss reports a key press landing on an empty slot.
func (r Renderer) KeyMiss(slot int, key domain.Key) string {
	return fmt.Sprintf("  [%d] %s", slot,
		r.s.meta.Render(fmt.Sprintf("KEY row=%d col=%d (no session)", key.Row, key.Col)))
}

// Released reports a stale session leaving its slot.
func (r Renderer) Released(id domain.SessionID) string {
	short := string(id)
	if len(short) > 8 {
		short = short[:8] + "..."
	}
	return "  " + r.s.release.Render("Released stale session "+short)
}

// Event formats a raw log record for the watch command.
func (r Renderer) Event(ev domain.Event) string {
	detail := ev.Notif
	style := r.s.working
	if state, ok := ev.ImpliedState(); ok && state == domain.StateYourTurn {
		style = r.s.yourTurn
	}
	return fmt.Sprintf("  %-20s %s", ev.Kind, style.Render(detail))
}

// Malformed flags a log line that failed to parse.
func (r Renderer) Malformed(line string) string {
	if len(line) > 60 {
		line = line[:60]
	}
	return "  " + r.s.bad.Render("[bad json] "+line)
}
