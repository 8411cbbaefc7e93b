package pemscan

const (
	// derIncrement is the additive growth step for an in-progress object's
	// payload buffer. Growth is additive, not proportional: armor payloads
	// are small (kilobytes) and a fixed step keeps worst-case slack bounded.
	derIncrement = 1024

	// objIncrement is the additive growth step for the object table.
	objIncrement = 4
)

// derBuffer accumulates the decoded payload of the object currently being
// read. Capacity and length are tracked explicitly and capacity is never
// exposed; growth allocates a fresh backing array and copies, in derIncrement
// steps. A buffer is never shrunk while its object is in progress.
type derBuffer struct {
	buf []byte
	n   int
}

// append copies p onto the end of the buffer, growing capacity additively
// until it fits.
func (d *derBuffer) append(p []byte) {
	need := d.n + len(p)
	if need > len(d.buf) {
		grown := len(d.buf)
		for grown < need {
			grown += derIncrement
		}
		fresh := make([]byte, grown)
		copy(fresh, d.buf[:d.n])
		d.buf = fresh
	}
	copy(d.buf[d.n:], p)
	d.n += len(p)
}

// take returns the accumulated bytes sized to their exact length and resets
// the buffer for the next object. The returned slice is the object's backing
// store; the buffer does not retain it.
func (d *derBuffer) take() []byte {
	out := d.buf[:d.n:d.n]
	d.buf = nil
	d.n = 0
	return out
}
