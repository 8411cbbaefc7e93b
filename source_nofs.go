//go:build js

package pemscan

import "fmt"

// openFileSource is the stub for builds without filesystem access (wasm).
// Load reaches it only when the source string carried no embedded begin
// marker, so the combined condition is reported.
func openFileSource(path string) (lineSource, error) {
	return nil, fmt.Errorf("%w: no filesystem support and no embedded object in input", ErrNoSource)
}
