package pemscan

// Object is one binary payload decoded from between a matching begin/end
// marker pair. Once a load returns, the payload is immutable; callers must
// not modify DER.
type Object struct {
	// Kind records which marker pair framed the object.
	Kind Kind
	// DER is the decoded binary payload. It may be empty for a marker
	// pair with no content lines between them.
	DER []byte
}

// Len returns the payload length in bytes.
func (o *Object) Len() int {
	return len(o.DER)
}

// Set is an ordered collection of decoded objects in order of appearance in
// the source, together with the running total of accepted payload bytes.
// A Set returned by a load is complete and internally consistent: every
// object in it was framed by matching begin and end markers of the same kind
// and accepted by the filter.
type Set struct {
	objs  []*Object
	total int
}

// add claims a slot for a new in-progress object, growing the table by
// additive increments when full, and returns its index.
func (s *Set) add(kind Kind) int {
	if len(s.objs) == cap(s.objs) {
		grown := make([]*Object, len(s.objs), cap(s.objs)+objIncrement)
		copy(grown, s.objs)
		s.objs = grown
	}
	s.objs = append(s.objs, &Object{Kind: kind})
	return len(s.objs) - 1
}

// accept finalizes the most recent object and credits its length to the
// running total.
func (s *Set) accept() {
	s.total += s.objs[len(s.objs)-1].Len()
}

// dropLast releases the most recently added slot, restoring the table to its
// state before that object was added. Earlier objects keep their indices.
func (s *Set) dropLast() {
	last := len(s.objs) - 1
	s.objs[last] = nil
	s.objs = s.objs[:last]
}

// Len returns the number of objects in the set.
func (s *Set) Len() int {
	return len(s.objs)
}

// Empty reports whether the load completed without accepting any objects.
// An empty result is a successful outcome, distinct from any load error, but
// usually worth a diagnostic.
func (s *Set) Empty() bool {
	return len(s.objs) == 0
}

// TotalBytes returns the sum of payload lengths across all accepted objects.
func (s *Set) TotalBytes() int {
	return s.total
}

// Objects returns the decoded objects in source order. The returned slice is
// shared with the set; callers must not modify it.
func (s *Set) Objects() []*Object {
	return s.objs
}

// ByKind returns the objects whose kind is present in mask, in source order.
func (s *Set) ByKind(mask Kind) []*Object {
	var out []*Object
	for _, o := range s.objs {
		if o.Kind&mask != 0 {
			out = append(out, o)
		}
	}
	return out
}
