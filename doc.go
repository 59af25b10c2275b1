// Package intern provides value interning: deduplicating equal values and
// handing out small, comparable symbols for them.
//
// An interner owns a canonical append-only store of values. Interning a value
// returns a Symbol, a dense uint32 handle: two equal values always map to the
// same Symbol, two distinct values never do. Symbols are assigned in
// first-seen order starting at 0, so they double as compact array indices for
// per-value side tables.
//
// # Quick Start
//
//	in := intern.New[string]()
//	a := in.Intern("GET")
//	b := in.Intern("GET")   // same symbol, no mutation
//	c := in.Intern("POST")  // next dense symbol
//
//	a == b                  // true
//	in.Len()                // 2
//	s, _ := in.Resolve(c)   // "POST"
//
// # Variants
//
// Four interner flavors cover the common workloads:
//
//   - Interner[V comparable] — generic, backed by a native map. The duplicate
//     check uses Go's own equality, so it is collision-free by construction.
//   - StringInterner — string specialization with InternBytes for lexer-style
//     callers; the hit path does not allocate.
//   - BytesInterner — interns byte slices; slices are copied on first insert
//     so later caller mutation cannot corrupt the store.
//   - HashedInterner[V any] — for types the native map cannot key (slices,
//     large structs). Caller supplies hash and equality functions; every hash
//     match is verified with true equality before a symbol is reused.
//
// SymbolSet complements the interners: a compressed bitmap set of symbols
// supporting fast union/intersection, useful for posting lists and other
// per-value index structures.
//
// # Symbol Validity
//
// A Symbol is only meaningful to the interner instance that issued it, for
// that instance's lifetime. Resolve is the checked accessor and reports
// *InvalidSymbolError for out-of-range symbols; MustResolve skips the check's
// error path for hot loops and panics instead.
//
// # Concurrency
//
// Interners are not safe for concurrent use. Callers that share an interner
// across goroutines must serialize access themselves; the check-then-insert
// step inside Intern is not atomic.
package intern
