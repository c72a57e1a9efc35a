package domain

import (
	"encoding/json"
	"strings"
)

// Event is one decoded line of the shared hook event log.
type Event struct {
	Kind      string    `json:"event"`
	Notif     string    `json:"notif"`
	SessionID SessionID `json:"session"`
	WindowRef string    `json:"iterm_session"`
}

const notificationKind = "Notification"

var (
	yourTurnKinds = map[string]struct{}{
		"Stop": {},
	}
	yourTurnNotifs = map[string]struct{}{
		"permission_prompt":  {},
		"elicitation_dialog": {},
	}
	workingKinds = map[string]struct{}{
		"PreToolUse":       {},
		"UserPromptSubmit": {},
	}
)

// ParseEvent decodes a single log line. It returns false for blank or
// malformed lines; those carry no effect.
func ParseEvent(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Event{}, false
	}

	var ev Event
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		return Event{}, false
	}

	return ev, true
}

// ImpliedState maps an event to the session state it demands, if any.
func (e Event) ImpliedState() (SessionState, bool) {
	if _, ok := yourTurnKinds[e.Kind]; ok {
		return StateYourTurn, true
	}
	if e.Kind == notificationKind {
		if _, ok := yourTurnNotifs[e.Notif]; ok {
			return StateYourTurn, true
		}
	}
	if _, ok := workingKinds[e.Kind]; ok {
		return StateWorking, true
	}

	return "", false
}
