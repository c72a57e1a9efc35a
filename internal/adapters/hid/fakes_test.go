package hid

import (
	"errors"
	"time"
)

// scriptedTransport replays a fixed sequence of reads and records every
// write. An exhausted script fails the read, which the adapters treat as
// no response.
type scriptedTransport struct {
	writes   [][]byte
	reads    [][]byte
	writeErr error
	closed   bool
}

var errScriptExhausted = errors.New("scripted transport: no more reads")

func (t *scriptedTransport) Write(p []byte) (int, error) {
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	t.writes = append(t.writes, buf)
	return len(p), nil
}

func (t *scriptedTransport) ReadWithTimeout(p []byte, _ time.Duration) (int, error) {
	if len(t.reads) == 0 {
		return 0, errScriptExhausted
	}
	next := t.reads[0]
	t.reads = t.reads[1:]
	return copy(p, next), nil
}

func (t *scriptedTransport) Close() error {
	t.closed = true
	return nil
}

func (t *scriptedTransport) queue(frames ...[]byte) {
	t.reads = append(t.reads, frames...)
}

func singleCandidate(t *scriptedTransport, serial string) enumerator {
	return func(uint16, uint16) []candidate {
		return []candidate{{
			serial: serial,
			open:   func() (transport, error) { return t, nil },
		}}
	}
}

func reply(bytes ...byte) []byte {
	out := make([]byte, frameLen)
	copy(out, bytes)
	return out
}

func keyEventFrame(row, col byte) []byte {
	return reply(opKeyEvent, row, col)
}
