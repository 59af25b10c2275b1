package intern

import "iter"

// Interner deduplicates values of a comparable type and issues dense symbols
// for them.
//
// Architecture:
//   - Store: append-only []V, indexed by Symbol
//   - Index: map[V]Symbol for the O(1) duplicate check
//
// The native map keys on V directly, so deduplication uses the language's own
// equality and cannot suffer hash-collision false merges. For types that
// cannot be map keys, see HashedInterner.
//
// The zero value is not usable; construct with New.
type Interner[V comparable] struct {
	store []V
	index map[V]Symbol
}

// New creates an empty interner.
func New[V comparable](opts ...Option) *Interner[V] {
	o := applyOptions(opts)

	return &Interner[V]{
		store: make([]V, 0, o.capacity),
		index: make(map[V]Symbol, o.capacity),
	}
}

// Intern returns the symbol for v, interning it first if it has not been seen
// before.
//
// The hit path is a single map lookup with no mutation; interning the same
// value repeatedly always returns the same symbol and leaves the interner
// unchanged after the first call. Symbols are handed out densely in
// first-seen order.
//
// Intern panics with ErrCapacityExceeded if 2^32 distinct values have
// already been interned; the symbol space never wraps around.
func (in *Interner[V]) Intern(v V) Symbol {
	if s, ok := in.index[v]; ok {
		return s
	}

	if uint64(len(in.store)) > uint64(MaxSymbol) {
		panic(ErrCapacityExceeded)
	}

	s := Symbol(len(in.store))
	in.store = append(in.store, v)
	in.index[v] = s

	return s
}

// Resolve returns the value interned under s.
//
// It reports *InvalidSymbolError if s was not issued by this interner.
func (in *Interner[V]) Resolve(s Symbol) (V, error) {
	if int(s) >= len(in.store) {
		var zero V
		return zero, &InvalidSymbolError{Symbol: s, Len: len(in.store)}
	}

	return in.store[s], nil
}

// MustResolve is like Resolve but panics on an invalid symbol.
//
// Reserved for hot paths where the caller guarantees validity externally,
// e.g. symbols drawn straight from a prior Intern call on the same instance.
func (in *Interner[V]) MustResolve(s Symbol) V {
	v, err := in.Resolve(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Lookup returns the symbol for v without interning it.
func (in *Interner[V]) Lookup(v V) (Symbol, bool) {
	s, ok := in.index[v]
	return s, ok
}

// Contains reports whether v has been interned.
func (in *Interner[V]) Contains(v V) bool {
	_, ok := in.index[v]
	return ok
}

// Len returns the number of distinct values interned so far.
func (in *Interner[V]) Len() int {
	return len(in.store)
}

// IsEmpty reports whether no values have been interned.
func (in *Interner[V]) IsEmpty() bool {
	return len(in.store) == 0
}

// All returns an iterator over all interned values in symbol order, which is
// first-seen order.
func (in *Interner[V]) All() iter.Seq2[Symbol, V] {
	return func(yield func(Symbol, V) bool) {
		for i, v := range in.store {
			if !yield(Symbol(i), v) {
				return
			}
		}
	}
}
