package pemscan

import "errors"

// Sentinel errors returned (wrapped) by Load and its variants. Classify with
// errors.Is. A load either returns a complete Set or one of these; no partial
// result ever accompanies an error.
var (
	// ErrNoSource means the source string named a file that could not be
	// opened and did not itself contain an embedded begin marker.
	ErrNoSource = errors.New("pemscan: source unavailable")

	// ErrMalformed means a line inside an object was neither the matching
	// end marker nor valid base64 content.
	ErrMalformed = errors.New("pemscan: malformed content")

	// ErrUnterminated means input ended after a begin marker with no
	// matching end marker. The whole load is discarded, not just the
	// object in progress.
	ErrUnterminated = errors.New("pemscan: unterminated object")
)
