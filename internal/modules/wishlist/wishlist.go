package wishlist

import "sort"

// Wishlist is a set of product ids. Membership is binary: no ordering, no
// quantity. Not safe for concurrent use on its own; the owning session
// serializes access.
type Wishlist struct {
	ids map[int64]struct{}
}

func New() *Wishlist {
	return &Wishlist{ids: make(map[int64]struct{})}
}

// Toggle flips membership for the id and reports whether it is now present.
// Toggling twice restores the original membership.
func (w *Wishlist) Toggle(id int64) bool {
	if _, ok := w.ids[id]; ok {
		delete(w.ids, id)
		return false
	}
	w.ids[id] = struct{}{}
	return true
}

func (w *Wishlist) Has(id int64) bool {
	_, ok := w.ids[id]
	return ok
}

// IDs returns the members in ascending id order for deterministic output.
func (w *Wishlist) IDs() []int64 {
	out := make([]int64, 0, len(w.ids))
	for id := range w.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (w *Wishlist) Len() int {
	return len(w.ids)
}
