package pemscan

import (
	"bytes"
	"strings"
)

// maxLineLen bounds the length of a single input line. Armor content lines
// are conventionally 64 columns; 128 leaves generous headroom while keeping
// the per-line decode scratch buffer a fixed size. Longer lines are rejected,
// not truncated.
const maxLineLen = 128

// lineSource yields successive whitespace-trimmed lines from some byte
// source. It is a single forward pass: once next returns false the source is
// exhausted. close releases whatever the source holds open and must be called
// on every exit path of a load.
type lineSource interface {
	// next returns the following trimmed line. ok is false at end of
	// input; an unterminated trailing fragment counts as end of input.
	next() (line []byte, ok bool)
	close() error
}

// bytesSource scans forward through an in-memory buffer. It backs both the
// inline-text form of Load and LoadBytes.
type bytesSource struct {
	data []byte
	off  int
}

func newBytesSource(data []byte) *bytesSource {
	return &bytesSource{data: data}
}

func (s *bytesSource) next() ([]byte, bool) {
	for s.off < len(s.data) {
		rest := s.data[s.off:]
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			// No terminator before end of input: drop the fragment.
			s.off = len(s.data)
			return nil, false
		}
		line := bytes.TrimSpace(rest[:nl])
		s.off += nl + 1
		if len(line) == 0 {
			continue
		}
		return line, true
	}
	return nil, false
}

func (s *bytesSource) close() error {
	return nil
}

// IsArmored reports whether text contains an embedded begin marker for a
// supported kind, i.e. whether Load would treat it as inline armored text
// rather than a file path.
func IsArmored(text string) bool {
	return embeddedStart(text) >= 0
}

// embeddedStart returns the offset of an embedded begin marker in source, or
// -1. A hit requires a full, supported begin marker, not just the
// "-----BEGIN " prefix, so that prose mentioning PEM does not shadow a real
// file path.
func embeddedStart(source string) int {
	off := 0
	for {
		i := strings.Index(source[off:], "-----BEGIN ")
		if i < 0 {
			return -1
		}
		start := off + i
		rest := source[start:]
		lineEnd := strings.IndexByte(rest, '\n')
		if lineEnd < 0 {
			lineEnd = len(rest)
		}
		if _, ok := beginKind([]byte(strings.TrimSpace(rest[:lineEnd]))); ok {
			return start
		}
		off = start + 1
	}
}
