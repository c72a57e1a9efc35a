package ports

import "github.com/KornelijusGlinskas/keyboard-claude/internal/domain"

// EventSource yields newly appended event records from the shared log.
type EventSource interface {
	// Poll returns events appended since the previous call. It never
	// replays history and tolerates log truncation.
	Poll() []domain.Event
}
