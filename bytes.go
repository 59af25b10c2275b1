package intern

import (
	"bytes"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// BytesInterner deduplicates byte slices.
//
// It is a HashedInterner specialization using xxHash64 for the bucket index
// and bytes.Equal for the duplicate check. Slices are cloned on first
// insertion, so mutating the caller's buffer after interning cannot corrupt
// the store.
type BytesInterner struct {
	h *HashedInterner[[]byte]
}

// NewBytes creates an empty byte-slice interner.
func NewBytes(opts ...Option) *BytesInterner {
	return &BytesInterner{
		h: NewHashed(xxhash.Sum64, bytes.Equal, opts...),
	}
}

// Intern returns the symbol for b, interning a private copy of it first if
// it has not been seen before. The hit path does not copy or allocate.
//
// Intern panics with ErrCapacityExceeded if 2^32 distinct slices have
// already been interned.
func (in *BytesInterner) Intern(b []byte) Symbol {
	if s, ok := in.h.Lookup(b); ok {
		return s
	}

	return in.h.Intern(bytes.Clone(b))
}

// Resolve returns the slice interned under s. The returned slice is the
// store's canonical copy; callers must not modify it.
//
// It reports *InvalidSymbolError if s was not issued by this interner.
func (in *BytesInterner) Resolve(s Symbol) ([]byte, error) {
	return in.h.Resolve(s)
}

// MustResolve is like Resolve but panics on an invalid symbol.
func (in *BytesInterner) MustResolve(s Symbol) []byte {
	return in.h.MustResolve(s)
}

// Lookup returns the symbol for b without interning it.
func (in *BytesInterner) Lookup(b []byte) (Symbol, bool) {
	return in.h.Lookup(b)
}

// Contains reports whether b has been interned.
func (in *BytesInterner) Contains(b []byte) bool {
	return in.h.Contains(b)
}

// Len returns the number of distinct slices interned so far.
func (in *BytesInterner) Len() int {
	return in.h.Len()
}

// IsEmpty reports whether no slices have been interned.
func (in *BytesInterner) IsEmpty() bool {
	return in.h.IsEmpty()
}

// All returns an iterator over all interned slices in symbol order.
func (in *BytesInterner) All() iter.Seq2[Symbol, []byte] {
	return in.h.All()
}
