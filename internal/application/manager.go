package application

import (
	"sort"
	"time"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// SessionManager owns the session-to-slot state machine: a bounded pool
// of LED slots, per-session state, and the staleness policy. It is not
// safe for concurrent use; the daemon is single-threaded by design.
type SessionManager struct {
	sessions map[domain.SessionID]*domain.Session
	slotUsed []bool

	dimTimeout     time.Duration
	releaseTimeout time.Duration
	clock          ports.Clock
}

func NewSessionManager(maxSlots int, dimTimeout, releaseTimeout time.Duration, clock ports.Clock) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionManager{
		sessions:       make(map[domain.SessionID]*domain.Session),
		slotUsed:       make([]bool, maxSlots),
		dimTimeout:     dimTimeout,
		releaseTimeout: releaseTimeout,
		clock:          clock,
	}
}

// GetOrCreate returns the session for id, creating it in the lowest free
// slot when unknown. A known session has its liveness timestamp refreshed
// and adopts the window ref if it has none yet. Returns nil when the slot
// pool is exhausted: the event is silently dropped as backpressure, and
// the session materializes only once a slot frees.
func (m *SessionManager) GetOrCreate(id domain.SessionID, windowRef string) *domain.Session {
	if sess, ok := m.sessions[id]; ok {
		sess.AdoptWindowRef(windowRef)
		sess.LastEventAt = m.clock.Now()
		return sess
	}

	slot, ok := m.nextSlot()
	if !ok {
		return nil
	}

	sess := &domain.Session{
		ID:          id,
		WindowRef:   windowRef,
		State:       domain.StateWorking,
		Slot:        slot,
		LastEventAt: m.clock.Now(),
	}
	m.sessions[id] = sess
	m.slotUsed[slot] = true

	return sess
}

func (m *SessionManager) nextSlot() (int, bool) {
	for i, used := range m.slotUsed {
		if !used {
			return i, true
		}
	}
	return 0, false
}

// Release removes the session and frees its slot. No-op when absent.
func (m *SessionManager) Release(id domain.SessionID) {
	sess, ok := m.sessions[id]
	if !ok {
		return
	}

	delete(m.sessions, id)
	m.slotUsed[sess.Slot] = false
}

// GetBySlot finds the live session occupying a slot, if any.
func (m *SessionManager) GetBySlot(slot int) *domain.Session {
	for _, sess := range m.sessions {
		if sess.Slot == slot {
			return sess
		}
	}
	return nil
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	return len(m.sessions)
}

// Sessions returns the live sessions ordered by slot.
func (m *SessionManager) Sessions() []*domain.Session {
	out := make([]*domain.Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// AnyYourTurn reports whether at least one session awaits the user.
func (m *SessionManager) AnyYourTurn() bool {
	for _, sess := range m.sessions {
		if sess.State == domain.StateYourTurn {
			return true
		}
	}
	return false
}

// AllWorking reports whether every session is working. Vacuously false on
// an empty session set.
func (m *SessionManager) AllWorking() bool {
	if len(m.sessions) == 0 {
		return false
	}
	for _, sess := range m.sessions {
		if sess.State != domain.StateWorking {
			return false
		}
	}
	return true
}

// CleanupStale releases every session idle past the release threshold and
// returns their ids.
func (m *SessionManager) CleanupStale(now time.Time) []domain.SessionID {
	var stale []domain.SessionID
	for id, sess := range m.sessions {
		if sess.IdleFor(now) > m.releaseTimeout {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		m.Release(id)
	}
	return stale
}

// GetDimmed returns sessions idle past the dim threshold but not yet
// stale. Purely a rendering input; nothing is mutated.
func (m *SessionManager) GetDimmed(now time.Time) []*domain.Session {
	var dimmed []*domain.Session
	for _, sess := range m.sessions {
		idle := sess.IdleFor(now)
		if idle > m.dimTimeout && idle <= m.releaseTimeout {
			dimmed = append(dimmed, sess)
		}
	}
	return dimmed
}
