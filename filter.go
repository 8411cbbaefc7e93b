package pemscan

// Action is a filter's verdict on one fully decoded object.
type Action int

const (
	// Reject discards the object; scanning continues.
	Reject Action = iota
	// Accept keeps the object; scanning continues.
	Accept
	// AcceptAndStop keeps the object and ends the load successfully,
	// ignoring any remaining input.
	AcceptAndStop
)

// Filter decides the fate of each object after it is fully decoded. It is
// called once per object, in source order. A filter may read the object but
// must not retain or modify its payload until the load returns; any state it
// needs is carried by closure capture.
type Filter func(obj *Object) Action

// AcceptAll accepts every object and never stops the scan.
func AcceptAll(*Object) Action {
	return Accept
}

// KindFilter returns a filter accepting exactly the objects whose kind is
// present in mask. It never stops the scan.
func KindFilter(mask Kind) Filter {
	return func(obj *Object) Action {
		if obj.Kind&mask != 0 {
			return Accept
		}
		return Reject
	}
}

// FirstOf returns a filter that accepts the first object whose kind is in
// mask and stops the scan there, rejecting everything before it.
func FirstOf(mask Kind) Filter {
	return func(obj *Object) Action {
		if obj.Kind&mask != 0 {
			return AcceptAndStop
		}
		return Reject
	}
}
