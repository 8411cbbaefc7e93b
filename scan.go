// Package pemscan decodes binary objects (certificates, private keys) from
// PEM-armored text in a single forward pass, handing each decoded object to a
// caller-supplied filter that decides whether to keep it, discard it, or stop
// the scan. It deliberately does not parse the decoded DER payloads; that is
// the caller's concern.
package pemscan

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
)

// decodeScratch is the per-line decode buffer size: 3/4 of maxLineLen, the
// most a conforming content line can decode to.
const decodeScratch = maxLineLen * 3 / 4

// scanState tracks where the state machine is between lines.
type scanState int

const (
	seekBegin scanState = iota
	inContent
)

// Load decodes all armored objects from source and returns those the filter
// accepted, in source order. source is either a path to open for reading or
// text that itself contains a begin marker; inline text is detected first and
// bypasses the filesystem entirely.
//
// Load is all-or-nothing: on any error (unreadable source, malformed content
// line, unterminated object) no Set is returned and everything decoded so far
// is discarded. A Set with zero objects is a successful outcome; see
// Set.Empty.
func Load(source string, filter Filter) (*Set, error) {
	if off := embeddedStart(source); off >= 0 {
		slog.Debug("loading armored objects from inline text")
		return scanLines(newBytesSource([]byte(source[off:])), filter)
	}
	src, err := openFileSource(source)
	if err != nil {
		if errors.Is(err, ErrNoSource) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNoSource, source, err)
	}
	return scanLines(src, filter)
}

// LoadBytes decodes all armored objects from in-memory data, applying filter.
// Same semantics as Load without source detection.
func LoadBytes(data []byte, filter Filter) (*Set, error) {
	return scanLines(newBytesSource(data), filter)
}

// LoadKinds is Load with the built-in kind-mask filter: every object whose
// kind is present in mask is accepted, everything else rejected, and the scan
// always runs to end of input.
func LoadKinds(source string, mask Kind) (*Set, error) {
	return Load(source, KindFilter(mask))
}

// scanLines runs the state machine over a line source. The source is released
// on every exit path.
func scanLines(src lineSource, filter Filter) (*Set, error) {
	defer func() {
		if err := src.close(); err != nil {
			slog.Warn("closing scan source", "error", err)
		}
	}()

	set := &Set{}
	var der derBuffer
	var kind Kind
	var cur int
	state := seekBegin

	for {
		line, ok := src.next()
		if !ok {
			break
		}

		switch state {
		case seekBegin:
			// Anything that is not a begin marker is surrounding
			// prose and is ignored.
			if k, ok := beginKind(line); ok {
				cur = set.add(k)
				kind = k
				state = inContent
			}

		case inContent:
			if isEnd(line, kind) {
				obj := set.Objects()[cur]
				obj.DER = der.take()
				switch filter(obj) {
				case Accept:
					set.accept()
				case AcceptAndStop:
					set.accept()
					return set, nil
				default:
					set.dropLast()
				}
				state = seekBegin
				continue
			}

			if err := decodeLine(&der, line); err != nil {
				// Inside an object every line must be content
				// or the matching end marker; one corrupt line
				// invalidates the whole load.
				return nil, fmt.Errorf("%w: object %d: %v", ErrMalformed, cur+1, err)
			}
		}
	}

	if state != seekBegin {
		return nil, fmt.Errorf("%w: object %d: input ended before end marker", ErrUnterminated, cur+1)
	}
	if set.Empty() {
		slog.Debug("no armored objects accepted from input")
	}
	return set, nil
}

// decodeLine decodes one content line of standard base64 into the object
// buffer. The line must fit the fixed armor width; the decode scratch is
// stack-local and sized so a conforming line can never overflow it.
func decodeLine(der *derBuffer, line []byte) error {
	if len(line) > maxLineLen {
		return fmt.Errorf("content line of %d bytes exceeds %d byte limit", len(line), maxLineLen)
	}
	var scratch [decodeScratch]byte
	n, err := base64.StdEncoding.Decode(scratch[:], line)
	if err != nil {
		return fmt.Errorf("decoding base64 content: %v", err)
	}
	der.append(scratch[:n])
	return nil
}
