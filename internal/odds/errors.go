package odds

import "errors"

var (
	// ErrAPIKeyMissing is returned when the feed is used without a configured key.
	ErrAPIKeyMissing = errors.New("odds API key not configured")
	// ErrOddsUnavailable wraps any failure to obtain the board.
	ErrOddsUnavailable = errors.New("odds unavailable")
)
