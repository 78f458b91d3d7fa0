package bound

// Entry pairs a Bound with the value it is the bound of — a Layout in the
// layout engine's instantiation, or struct{} when a BoundSet is used only
// to summarize shape (the "BoundSet<()>" instantiation in the original
// implementation).
type Entry[T any] struct {
	Bound Bound
	Value T
}

// BoundSet is a Pareto-minimal collection of (Bound, T) entries: no entry's
// bound dominates another's. Insertion order among ties (equal bounds) is
// preserved — the first-inserted value for an already-present bound wins,
// matching Choice's left-to-right bias (spec section 4.4, 4.5).
type BoundSet[T any] struct {
	entries []Entry[T]
}

// New returns an empty BoundSet.
func New[T any]() *BoundSet[T] {
	return &BoundSet[T]{}
}

// Singleton returns a BoundSet containing exactly one entry.
func Singleton[T any](b Bound, v T) *BoundSet[T] {
	return &BoundSet[T]{entries: []Entry[T]{{Bound: b, Value: v}}}
}

// Len returns the number of entries currently in the set.
func (s *BoundSet[T]) Len() int {
	return len(s.entries)
}

// Entries returns the set's entries. The slice is owned by the caller and
// safe to range over or mutate without affecting s.
func (s *BoundSet[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(s.entries))
	copy(out, s.entries)
	return out
}

// Insert adds (b, v) to the set, discarding it if some existing entry's
// bound already dominates b, and otherwise dropping every existing entry
// that b dominates. A bound equal to an existing one is treated as
// dominated (so the earlier value is kept) unless it is being inserted
// into an empty set.
func (s *BoundSet[T]) Insert(b Bound, v T) {
	for _, e := range s.entries {
		if e.Bound.Dominates(b) {
			return
		}
	}
	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if !b.Dominates(e.Bound) {
			kept = append(kept, e)
		}
	}
	s.entries = append(kept, Entry[T]{Bound: b, Value: v})
}

// Union inserts every entry of other into s.
func (s *BoundSet[T]) Union(other *BoundSet[T]) {
	for _, e := range other.entries {
		s.Insert(e.Bound, e.Value)
	}
}

// Map returns a new BoundSet built by applying f to every (bound, value)
// pair in s and re-inserting the results (so the Pareto property is
// maintained even if f changes bounds, as Flush does).
func Map[T, U any](s *BoundSet[T], f func(Bound, T) (Bound, U)) *BoundSet[U] {
	out := New[U]()
	for _, e := range s.entries {
		b, v := f(e.Bound, e.Value)
		out.Insert(b, v)
	}
	return out
}

// Filter returns a new BoundSet containing only the entries for which keep
// returns true.
func Filter[T any](s *BoundSet[T], keep func(Bound, T) bool) *BoundSet[T] {
	out := New[T]()
	for _, e := range s.entries {
		if keep(e.Bound, e.Value) {
			out.entries = append(out.entries, e)
		}
	}
	return out
}

// FitWidth selects, among s's entries, the one of minimum height subject
// to width <= w, ties broken by minimum width; if none fits, it falls back
// to the minimum-width entry (spec section 4.5's Selection rule).
func (s *BoundSet[T]) FitWidth(w int) (Entry[T], bool) {
	if len(s.entries) == 0 {
		var zero Entry[T]
		return zero, false
	}

	best := -1
	for i, e := range s.entries {
		if e.Bound.Width > w {
			continue
		}
		if best == -1 || better(e.Bound, s.entries[best].Bound) {
			best = i
		}
	}
	if best != -1 {
		return s.entries[best], true
	}

	best = 0
	for i, e := range s.entries {
		if e.Bound.Width < s.entries[best].Bound.Width {
			best = i
		}
	}
	return s.entries[best], true
}

// better reports whether a should be preferred over b under FitWidth's
// tie-break rule: minimum height, then minimum width.
func better(a, b Bound) bool {
	if a.Height != b.Height {
		return a.Height < b.Height
	}
	return a.Width < b.Width
}
