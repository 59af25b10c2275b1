package intern

// Symbol is a dense handle for an interned value.
// It is strictly 32-bit, allowing for max 4 Billion distinct values per
// interner. Symbols are assigned in first-seen order starting at 0 and stay
// valid for the lifetime of the interner that issued them.
type Symbol uint32

// MaxSymbol is the maximum possible value for a Symbol.
const MaxSymbol = ^Symbol(0)
