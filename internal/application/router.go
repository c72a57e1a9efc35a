package application

import (
	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// KeyRouter turns device key press reports into window-focus actions for
// the session owning the pressed slot.
type KeyRouter struct {
	layout    domain.Layout
	activator ports.WindowActivator
}

func NewKeyRouter(layout domain.Layout, activator ports.WindowActivator) *KeyRouter {
	return &KeyRouter{layout: layout, activator: activator}
}

// RouteOutcome describes what a key press resolved to, for diagnostics.
type RouteOutcome struct {
	Key       domain.Key
	Slot      int
	WindowRef string
	Activated bool
}

// Route polls one key event and dispatches it. The second return is
// false when no event arrived or the key maps to no slot. Activation is
// at-most-once and best-effort: a slot with no session, or a session
// without a window ref, yields a diagnostic outcome only.
func (kr *KeyRouter) Route(dev ports.Device, mgr *SessionManager) (RouteOutcome, bool) {
	key, ok := dev.PollKeyEvent()
	if !ok {
		return RouteOutcome{}, false
	}

	slot, ok := kr.layout.SlotForKey(key)
	if !ok {
		return RouteOutcome{}, false
	}

	outcome := RouteOutcome{Key: key, Slot: slot}

	sess := mgr.GetBySlot(slot)
	if sess == nil || sess.WindowRef == "" {
		return outcome, true
	}

	outcome.WindowRef = sess.WindowRef
	outcome.Activated = true
	kr.activator.Activate(sess.WindowRef)

	return outcome, true
}
