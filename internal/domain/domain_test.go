package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventBasic(t *testing.T) {
	ev, ok := ParseEvent(`{"event":"Stop","session":"s1","iterm_session":"w0t0p0:GUID"}`)
	require.True(t, ok)
	assert.Equal(t, "Stop", ev.Kind)
	assert.Equal(t, SessionID("s1"), ev.SessionID)
	assert.Equal(t, "w0t0p0:GUID", ev.WindowRef)
}

func TestParseEventRejectsMalformedAndBlankLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty", line: ""},
		{name: "whitespace", line: "   \t"},
		{name: "truncated json", line: `{"event":"Stop","sess`},
		{name: "not json", line: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseEvent(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParseEventIgnoresUnknownFields(t *testing.T) {
	ev, ok := ParseEvent(`{"event":"PreToolUse","session":"s1","tool":"Bash","extra":42}`)
	require.True(t, ok)
	assert.Equal(t, "PreToolUse", ev.Kind)
}

func TestEventImpliedState(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		want      SessionState
		wantMatch bool
	}{
		{name: "stop means your turn", event: Event{Kind: "Stop"}, want: StateYourTurn, wantMatch: true},
		{name: "permission prompt notification", event: Event{Kind: "Notification", Notif: "permission_prompt"}, want: StateYourTurn, wantMatch: true},
		{name: "elicitation dialog notification", event: Event{Kind: "Notification", Notif: "elicitation_dialog"}, want: StateYourTurn, wantMatch: true},
		{name: "other notification is neutral", event: Event{Kind: "Notification", Notif: "idle_reminder"}, wantMatch: false},
		{name: "pre tool use means working", event: Event{Kind: "PreToolUse"}, want: StateWorking, wantMatch: true},
		{name: "user prompt submit means working", event: Event{Kind: "UserPromptSubmit"}, want: StateWorking, wantMatch: true},
		{name: "post tool use is neutral", event: Event{Kind: "PostToolUse"}, wantMatch: false},
		{name: "unknown kind is neutral", event: Event{Kind: "SessionStart"}, wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := tt.event.ImpliedState()
			require.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.want, state)
			}
		})
	}
}

func TestSessionAdoptWindowRefFirstNonEmptyWins(t *testing.T) {
	sess := Session{ID: "s1"}

	sess.AdoptWindowRef("")
	assert.Empty(t, sess.WindowRef)

	sess.AdoptWindowRef("w0t0p0:A")
	assert.Equal(t, "w0t0p0:A", sess.WindowRef)

	sess.AdoptWindowRef("w0t1p0:B")
	assert.Equal(t, "w0t0p0:A", sess.WindowRef)

	sess.AdoptWindowRef("")
	assert.Equal(t, "w0t0p0:A", sess.WindowRef)
}

func TestSessionIdleFor(t *testing.T) {
	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	sess := Session{LastEventAt: at}

	assert.Equal(t, 90*time.Second, sess.IdleFor(at.Add(90*time.Second)))
}

func TestWorkLouderMicroLayout(t *testing.T) {
	layout := WorkLouderMicroLayout()

	require.Equal(t, 8, layout.MaxSlots())
	assert.Equal(t, 12, layout.LEDCount)
	assert.Equal(t, []int{10, 11}, layout.GlobalLEDs)

	// Slot LEDs and key positions line up: key (1,0) selects slot 0 on
	// LED 9, key (2,3) selects slot 7 on LED 5.
	slot, ok := layout.SlotForKey(Key{Row: 1, Col: 0})
	require.True(t, ok)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 9, layout.SlotLEDs[slot])

	slot, ok = layout.SlotForKey(Key{Row: 2, Col: 3})
	require.True(t, ok)
	assert.Equal(t, 7, slot)
	assert.Equal(t, 5, layout.SlotLEDs[slot])

	_, ok = layout.SlotForKey(Key{Row: 0, Col: 0})
	assert.False(t, ok)

	_, ok = layout.SlotForKey(Key{Row: 3, Col: 2})
	assert.False(t, ok)
}
