package ore

import "github.com/zephyrtronium/contains"

// LookupStatus is the result of a slot lookup: whether the name was found
// on no reachable object, exactly one, or more than one via disjoint parent
// chains.
type LookupStatus int

const (
	FoundNone LookupStatus = iota
	FoundOne
	FoundMany
)

func (s LookupStatus) String() string {
	switch s {
	case FoundNone:
		return "FoundNone"
	case FoundOne:
		return "FoundOne"
	case FoundMany:
		return "FoundMany"
	default:
		return "LookupStatus(?)"
	}
}

// LookupSlot implements the breadth-first parent-slot search described in
// spec.md §4.1. A name present on recv itself always shadows every
// ancestor. Otherwise, the receiver's parent slots (and then their parents,
// and so on) are explored breadth-first; an object is marked visited the
// moment it is enqueued, not when it is dequeued, which is what lets the
// search terminate on diamonds and also what lets it correctly report
// FoundMany for two truly disjoint chains that both define the name
// (neither chain's search stops early just because the other object was
// already visited through some unrelated edge).
//
// Once a candidate is found on some object, that object's own parents are
// not enqueued ("stop descending on match") — only a second, independent
// candidate proves ambiguity.
func LookupSlot(recv Value, name SymbolKey) (LookupStatus, Value) {
	ro := recv.Obj()
	if _, ok := ro.GetSlot(name); ok {
		return FoundOne, recv
	}

	visited := contains.Set{}
	visited.Add(ro.UniqueID())

	queue := make([]Value, 0, 4)
	enqueueParents := func(v Value) {
		o := v.Obj()
		for _, pname := range o.SelectSlots(isParentKind) {
			pv, ok := o.GetSlot(pname)
			if !ok || pv == nil {
				continue
			}
			if visited.Add(pv.Obj().UniqueID()) {
				queue = append(queue, pv)
			}
		}
	}
	enqueueParents(recv)

	var candidate Value
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		co := cur.Obj()
		if _, ok := co.GetSlot(name); ok {
			if candidate != nil {
				return FoundMany, nil
			}
			candidate = cur
			continue
		}
		enqueueParents(cur)
	}
	if candidate != nil {
		return FoundOne, candidate
	}
	return FoundNone, nil
}
