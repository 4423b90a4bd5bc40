package pagination

import "github.com/pkg/errors"

// DefaultMaxNavigationHistory bounds how many visited pages are retained for
// backward navigation, and transitively how large cursor tokens grow.
// Consumers needing deeper backward navigation raise it at the cost of
// larger tokens.
const DefaultMaxNavigationHistory = 10

// ErrNoEarlierPage is returned when backward navigation is requested for a
// page whose options have been evicted from the retained window. Callers
// that check CanGoBack first never see it.
var ErrNoEarlierPage = errors.New("no earlier page retained in navigation history")

// History is the ordered, size-bounded log of the PageOptions that produced
// every page visited in the current session. Backends are forward-only, so
// "previous" is implemented by replaying the options recorded here, not by a
// server cursor. Once the window slides, pages older than the window are
// unreachable; that is the deliberate trade of unbounded cursor growth for
// bounded memory and transport size.
//
// entries[i] is exactly the options that produced the page at logical
// position startIndex+i of the session.
type History struct {
	entries []PageOptions
	current int
	start   int
	max     int
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultMaxNavigationHistory
	}
	return &History{max: max}
}

// RestoreHistory seeds a history from a decoded cursor's retained window.
// The caller appends the resumed page afterwards.
func RestoreHistory(entries []PageOptions, startIndex int, max int) *History {
	h := NewHistory(max)
	h.entries = append(h.entries, entries...)
	h.start = startIndex
	// An oversized window can only come from a cursor encoded with a larger
	// limit; honor our own bound.
	for len(h.entries) > h.max {
		h.entries = h.entries[1:]
		h.start++
	}
	h.current = len(h.entries) - 1
	if h.current < 0 {
		h.current = 0
	}
	return h
}

// Append records the options that produced a newly loaded page and advances
// the position to it. If the position is not at the end (the session had
// navigated backward), the forward tail is dropped first so that entry i
// always corresponds to logical position startIndex+i. If the window
// overflows, the oldest entry is evicted and the start index advances to
// preserve absolute positions for cursor consumers.
func (h *History) Append(opts PageOptions) {
	if len(h.entries) > 0 && h.current < len(h.entries)-1 {
		h.entries = h.entries[:h.current+1]
	}
	h.entries = append(h.entries, opts)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
		h.start++
	}
	h.current = len(h.entries) - 1
}

// CanGoBack reports whether the entry before the current one is still
// retained. It is false either at the true first page or after the window
// has slid past the previous entry.
func (h *History) CanGoBack() bool {
	return h.current > 0
}

// PeekBack returns the options one position back without moving.
func (h *History) PeekBack() (PageOptions, error) {
	if h.current <= 0 {
		return PageOptions{}, ErrNoEarlierPage
	}
	return h.entries[h.current-1], nil
}

// StepBack moves the position one page back and returns that page's options.
func (h *History) StepBack() (PageOptions, error) {
	opts, err := h.PeekBack()
	if err != nil {
		return PageOptions{}, err
	}
	h.current--
	return opts, nil
}

// Current returns the options at the current position.
func (h *History) Current() PageOptions {
	if len(h.entries) == 0 {
		return PageOptions{}
	}
	return h.entries[h.current]
}

// Entries returns a copy of the retained window, oldest first.
func (h *History) Entries() []PageOptions {
	out := make([]PageOptions, len(h.entries))
	copy(out, h.entries)
	return out
}

// EntriesThroughCurrent returns a copy of the retained window up to and
// including the current position. After backward navigation this excludes
// the forward tail, which belongs to positions ahead of the current one.
func (h *History) EntriesThroughCurrent() []PageOptions {
	if len(h.entries) == 0 {
		return nil
	}
	out := make([]PageOptions, h.current+1)
	copy(out, h.entries[:h.current+1])
	return out
}

// EntriesBeforeCurrent returns a copy of the retained window up to, but not
// including, the current position.
func (h *History) EntriesBeforeCurrent() []PageOptions {
	out := make([]PageOptions, h.current)
	copy(out, h.entries[:h.current])
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

// Index is the window-relative index of the current position.
func (h *History) Index() int {
	return h.current
}

// StartIndex is the absolute session position of the oldest retained entry.
// It is zero until the window slides.
func (h *History) StartIndex() int {
	return h.start
}

// AbsoluteIndex is the absolute session position of the current page,
// surviving window truncation.
func (h *History) AbsoluteIndex() int {
	return h.start + h.current
}

// Max returns the configured window bound.
func (h *History) Max() int {
	return h.max
}
