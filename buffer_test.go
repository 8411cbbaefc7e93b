package pemscan

import (
	"bytes"
	"testing"
)

func TestDerBuffer_AppendAcrossIncrements(t *testing.T) {
	// WHY: Growth is additive in fixed steps and must preserve already
	// accumulated content byte-for-byte across reallocations.
	t.Parallel()
	var d derBuffer
	var want []byte
	chunk := bytes.Repeat([]byte{0x5a}, 100)
	// 30 * 100 bytes crosses the 1024-byte increment boundary twice.
	for i := 0; i < 30; i++ {
		chunk[0] = byte(i)
		d.append(chunk)
		want = append(want, chunk...)
	}
	got := d.take()
	if !bytes.Equal(got, want) {
		t.Fatalf("accumulated %d bytes, want %d matching bytes", len(got), len(want))
	}
}

func TestDerBuffer_TakeHandsOffOwnership(t *testing.T) {
	// WHY: Each object starts with a fresh empty buffer; take must hand
	// off the backing array so the next object cannot alias the previous
	// payload.
	t.Parallel()
	var d derBuffer
	d.append([]byte("first object"))
	first := d.take()

	d.append([]byte("second"))
	second := d.take()

	if string(first) != "first object" {
		t.Errorf("first payload corrupted: %q", first)
	}
	if string(second) != "second" {
		t.Errorf("second payload = %q, want %q", second, "second")
	}
	if &first[0] == &second[0] {
		t.Error("payloads share a backing array")
	}
}

func TestDerBuffer_TakeEmpty(t *testing.T) {
	// WHY: A zero-length object (begin marker directly followed by end)
	// takes an empty payload without growing anything.
	t.Parallel()
	var d derBuffer
	if got := d.take(); len(got) != 0 {
		t.Errorf("empty buffer take returned %d bytes", len(got))
	}
}
