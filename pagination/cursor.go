package pagination

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrInvalidCursor is returned when a cursor token cannot be decoded. A
// well-formed but stale cursor does not trigger it; staleness surfaces later
// as a normal fetch error.
var ErrInvalidCursor = errors.New("invalid cursor")

// CursorMeta is the navigation metadata embedded in an enhanced cursor. It
// carries enough of the session's retained history to rebuild backward
// navigation in a new process.
type CursorMeta struct {
	// Window-relative index the cursor's page will occupy once resumed.
	CurrentPageIndex int `json:"currentPageIndex"`
	// Retained window of previously visited pages, oldest first, not
	// including the cursor's own page.
	NavigationHistory []PageOptions `json:"navigationHistory"`
	CanGoBack         bool          `json:"canGoBack"`
	// Whether the page this cursor was derived from had a next page at
	// encode time.
	CanGoForward bool `json:"canGoForward"`
	// Informational: the options of the neighboring pages where known.
	PreviousPageOptions *PageOptions `json:"previousPageOptions"`
	NextPageOptions     *PageOptions `json:"nextPageOptions"`
	// Absolute session position of the cursor's page, surviving truncation.
	OriginalPageIndex int `json:"originalPageIndex,omitempty"`
	// Absolute session position of NavigationHistory[0].
	HistoryStartIndex int `json:"historyStartIndex,omitempty"`
}

// EnhancedCursorData is what a cursor token decodes to: the page's own
// options plus optional navigation metadata. A cursor without metadata is a
// plain "resume from here, forward-only" token.
type EnhancedCursorData struct {
	PageOptions
	CursorMeta *CursorMeta `json:"_cursorMeta,omitempty"`
}

// EncodeCursor serializes cursor data to an opaque, URL-safe token.
// EncodeCursor and DecodeCursor round-trip: decoding an encoded value yields
// a deep-equal value regardless of field ordering.
func EncodeCursor(data *EnhancedCursorData) (string, error) {
	bz, err := json.Marshal(data)
	if err != nil {
		return "", errors.Wrap(err, "encode cursor")
	}
	return base64.RawURLEncoding.EncodeToString(bz), nil
}

// DecodeCursor is the inverse of EncodeCursor. It has no network effect, so
// callers can inspect a cursor's embedded options without resuming a
// session. Malformed or truncated tokens yield ErrInvalidCursor.
func DecodeCursor(token string) (*EnhancedCursorData, error) {
	if token == "" {
		return nil, errors.Wrap(ErrInvalidCursor, "empty token")
	}
	bz, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		// Be lenient about padded tokens produced by other encoders.
		bz, err = base64.URLEncoding.DecodeString(token)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCursor, "base64: %v", err)
		}
	}
	var data EnhancedCursorData
	if err := json.Unmarshal(bz, &data); err != nil {
		return nil, errors.Wrapf(ErrInvalidCursor, "json: %v", err)
	}
	return &data, nil
}
