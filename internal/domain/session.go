package domain

import "time"

type SessionID string
type SessionState string

const (
	StateWorking  SessionState = "working"
	StateYourTurn SessionState = "your_turn"
)

// Session is one tracked Claude Code session occupying an LED slot.
type Session struct {
	ID          SessionID
	WindowRef   string
	State       SessionState
	Slot        int
	LastEventAt time.Time
}

// AdoptWindowRef fills in the window reference if none is known yet.
// A later, different non-empty ref is ignored: first non-empty wins.
func (s *Session) AdoptWindowRef(ref string) {
	if s.WindowRef == "" && ref != "" {
		s.WindowRef = ref
	}
}

// IdleFor reports how long the session has gone without events.
func (s *Session) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.LastEventAt)
}
