package tui

// History is a bounded list of submitted command lines with cursor-based
// navigation. The line being typed when navigation starts is kept as a
// draft and comes back when the user steps past the newest entry.
type History struct {
	entries []string
	max     int
	cursor  int // -1 = not navigating
	draft   string
}

// NewHistory creates a history buffer with the given maximum size.
func NewHistory(max int) *History {
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// Push records a submitted line and ends navigation. Consecutive
// duplicates are skipped.
func (h *History) Push(cmd string) {
	h.ResetCursor()
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Prev moves to the previous (older) entry. current is the text in the
// input line, remembered as the draft when navigation starts.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.draft = current
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves to the next (newer) entry. Past the newest entry it returns
// the draft and false.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return h.draft, false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		draft := h.draft
		h.ResetCursor()
		return draft, false
	}
	return h.entries[h.cursor], true
}

// ResetCursor ends navigation and forgets the draft.
func (h *History) ResetCursor() {
	h.cursor = -1
	h.draft = ""
}

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }
