package event

import "errors"

// ErrInvalidHistory is the sentinel wrapped by every error [Validate]
// returns; callers can test for it with errors.Is regardless of which
// specific constraint failed.
var ErrInvalidHistory = errors.New("event: invalid history")
