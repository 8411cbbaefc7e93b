//go:build !js

package pemscan

import (
	"bufio"
	"bytes"
	"os"
)

// fileSource reads trimmed lines from an open file through a fixed-size
// buffer. Returned lines are valid only until the following next call.
type fileSource struct {
	f *os.File
	r *bufio.Reader
}

// openFileSource opens path for line reading. The caller owns the source for
// the duration of one load and must close it on every exit path.
func openFileSource(path string) (lineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileSource{f: f, r: bufio.NewReaderSize(f, maxLineLen)}, nil
}

func (s *fileSource) next() ([]byte, bool) {
	for {
		raw, err := s.r.ReadSlice('\n')
		if err != nil {
			// End of input, a read error, or a line exceeding the
			// buffer all terminate the pass; an unterminated
			// trailing fragment is dropped, not processed.
			return nil, false
		}
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		return line, true
	}
}

func (s *fileSource) close() error {
	return s.f.Close()
}
