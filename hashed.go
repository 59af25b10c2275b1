package intern

import "iter"

// HashFunc computes a 64-bit hash of v. Equal values must hash equally;
// unequal values may collide.
type HashFunc[V any] func(v V) uint64

// EqualFunc reports whether a and b are equal. It is the sole correctness
// criterion for deduplication.
type EqualFunc[V any] func(a, b V) bool

// HashedInterner deduplicates values of types the native map cannot key,
// such as slices or structs containing them.
//
// The index buckets symbols by hash. A hash match alone never merges two
// values: every candidate in the bucket is re-checked with the equality
// function, so colliding hashes cost a comparison but cannot alias distinct
// values to one symbol.
//
// The zero value is not usable; construct with NewHashed.
type HashedInterner[V any] struct {
	hash  HashFunc[V]
	equal EqualFunc[V]

	store   []V
	buckets map[uint64][]Symbol
}

// NewHashed creates an empty interner using the given hash and equality
// functions. Both must be non-nil and consistent: equal values must produce
// equal hashes.
func NewHashed[V any](hash HashFunc[V], equal EqualFunc[V], opts ...Option) *HashedInterner[V] {
	o := applyOptions(opts)

	return &HashedInterner[V]{
		hash:    hash,
		equal:   equal,
		store:   make([]V, 0, o.capacity),
		buckets: make(map[uint64][]Symbol, o.capacity),
	}
}

// Intern returns the symbol for v, interning it first if it has not been
// seen before.
//
// Intern panics with ErrCapacityExceeded if 2^32 distinct values have
// already been interned.
func (in *HashedInterner[V]) Intern(v V) Symbol {
	h := in.hash(v)
	for _, s := range in.buckets[h] {
		if in.equal(in.store[s], v) {
			return s
		}
	}

	if uint64(len(in.store)) > uint64(MaxSymbol) {
		panic(ErrCapacityExceeded)
	}

	s := Symbol(len(in.store))
	in.store = append(in.store, v)
	in.buckets[h] = append(in.buckets[h], s)

	return s
}

// Resolve returns the value interned under s.
//
// It reports *InvalidSymbolError if s was not issued by this interner.
func (in *HashedInterner[V]) Resolve(s Symbol) (V, error) {
	if int(s) >= len(in.store) {
		var zero V
		return zero, &InvalidSymbolError{Symbol: s, Len: len(in.store)}
	}

	return in.store[s], nil
}

// MustResolve is like Resolve but panics on an invalid symbol.
func (in *HashedInterner[V]) MustResolve(s Symbol) V {
	v, err := in.Resolve(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Lookup returns the symbol for v without interning it.
func (in *HashedInterner[V]) Lookup(v V) (Symbol, bool) {
	for _, s := range in.buckets[in.hash(v)] {
		if in.equal(in.store[s], v) {
			return s, true
		}
	}

	return 0, false
}

// Contains reports whether v has been interned.
func (in *HashedInterner[V]) Contains(v V) bool {
	_, ok := in.Lookup(v)
	return ok
}

// Len returns the number of distinct values interned so far.
func (in *HashedInterner[V]) Len() int {
	return len(in.store)
}

// IsEmpty reports whether no values have been interned.
func (in *HashedInterner[V]) IsEmpty() bool {
	return len(in.store) == 0
}

// All returns an iterator over all interned values in symbol order, which is
// first-seen order.
func (in *HashedInterner[V]) All() iter.Seq2[Symbol, V] {
	return func(yield func(Symbol, V) bool) {
		for i, v := range in.store {
			if !yield(Symbol(i), v) {
				return
			}
		}
	}
}
