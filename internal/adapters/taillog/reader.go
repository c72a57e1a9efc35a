// Package taillog incrementally reads event records appended to the
// shared JSONL hook log.
package taillog

import (
	"bytes"
	"io"
	"os"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// Reader tails one append-only JSONL file. The read offset lives
// in-process only: history before the daemon started is never replayed,
// and a shrinking file (external truncation or rotation) resets the
// offset to the beginning.
type Reader struct {
	path   string
	offset int64
}

var _ ports.EventSource = (*Reader)(nil)

func New(path string) *Reader {
	return &Reader{path: path}
}

// SeekEnd seeds the offset at the current end of file so only events
// appended afterwards are seen. A missing file seeds at zero.
func (r *Reader) SeekEnd() {
	info, err := os.Stat(r.path)
	if err != nil {
		r.offset = 0
		return
	}
	r.offset = info.Size()
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Poll decodes every complete line appended since the previous call.
// Malformed lines are skipped.
func (r *Reader) Poll() []domain.Event {
	var events []domain.Event
	for _, line := range r.PollLines() {
		if ev, ok := domain.ParseEvent(line); ok {
			events = append(events, ev)
		}
	}
	return events
}

// PollLines returns the complete raw lines appended since the previous
// call. A trailing line without a newline is left unconsumed for the next
// poll, so the offset advances exactly over the bytes handed out.
func (r *Reader) PollLines() []string {
	info, err := os.Stat(r.path)
	if err != nil {
		return nil
	}

	size := info.Size()
	if size < r.offset {
		r.offset = 0
	}
	if size == r.offset {
		return nil
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	if _, err := file.Seek(r.offset, io.SeekStart); err != nil {
		return nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil
	}

	consumed := 0
	var lines []string
	for {
		nl := bytes.IndexByte(data[consumed:], '\n')
		if nl < 0 {
			break
		}

		lines = append(lines, string(data[consumed:consumed+nl]))
		consumed += nl + 1
	}

	r.offset += int64(consumed)
	return lines
}
