package intern

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is the panic value used when an interner runs out
	// of symbol space. With 32-bit symbols this means 2^32 distinct values
	// were interned; there is no valid symbol left to hand out, so the
	// condition is not recoverable and wraparound is never attempted.
	ErrCapacityExceeded = errors.New("intern: symbol space exhausted")
)

// InvalidSymbolError indicates a Resolve call with a symbol that was not
// issued by this interner (out-of-range index, typically a symbol from a
// different instance or a fabricated value).
type InvalidSymbolError struct {
	Symbol Symbol // the offending symbol
	Len    int    // number of values the interner holds
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("intern: invalid symbol %d (interner holds %d values)", e.Symbol, e.Len)
}
