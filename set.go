package intern

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// SymbolSet is a set of symbols backed by a Roaring Bitmap.
//
// Interned symbols are dense, which is exactly the shape compressed bitmaps
// handle best; sets over millions of symbols stay small and support fast
// AND/OR operations. Typical use is a posting list per interned value or a
// "seen" filter over symbols.
//
// The zero value is not usable; construct with NewSymbolSet. A SymbolSet is
// not safe for concurrent use.
type SymbolSet struct {
	bm *roaring.Bitmap
}

// NewSymbolSet creates a set containing the given symbols.
func NewSymbolSet(symbols ...Symbol) *SymbolSet {
	s := &SymbolSet{bm: roaring.New()}
	for _, sym := range symbols {
		s.bm.Add(uint32(sym))
	}

	return s
}

// Add inserts s into the set.
func (ss *SymbolSet) Add(s Symbol) {
	ss.bm.Add(uint32(s))
}

// Remove deletes s from the set.
func (ss *SymbolSet) Remove(s Symbol) {
	ss.bm.Remove(uint32(s))
}

// Contains reports whether s is in the set.
func (ss *SymbolSet) Contains(s Symbol) bool {
	return ss.bm.Contains(uint32(s))
}

// Len returns the number of symbols in the set.
func (ss *SymbolSet) Len() int {
	return int(ss.bm.GetCardinality())
}

// IsEmpty reports whether the set contains no symbols.
func (ss *SymbolSet) IsEmpty() bool {
	return ss.bm.IsEmpty()
}

// Clone returns an independent copy of the set.
func (ss *SymbolSet) Clone() *SymbolSet {
	return &SymbolSet{bm: ss.bm.Clone()}
}

// Union returns a new set containing symbols present in either set.
func (ss *SymbolSet) Union(other *SymbolSet) *SymbolSet {
	return &SymbolSet{bm: roaring.Or(ss.bm, other.bm)}
}

// Intersect returns a new set containing symbols present in both sets.
func (ss *SymbolSet) Intersect(other *SymbolSet) *SymbolSet {
	return &SymbolSet{bm: roaring.And(ss.bm, other.bm)}
}

// Difference returns a new set containing symbols present in ss but not in
// other.
func (ss *SymbolSet) Difference(other *SymbolSet) *SymbolSet {
	bm := ss.bm.Clone()
	bm.AndNot(other.bm)

	return &SymbolSet{bm: bm}
}

// All returns an iterator over the symbols in ascending order.
func (ss *SymbolSet) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		it := ss.bm.Iterator()
		for it.HasNext() {
			if !yield(Symbol(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the symbols in ascending order.
func (ss *SymbolSet) ToSlice() []Symbol {
	out := make([]Symbol, 0, ss.bm.GetCardinality())
	for s := range ss.All() {
		out = append(out, s)
	}

	return out
}
