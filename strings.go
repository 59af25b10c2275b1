package intern

// StringInterner deduplicates strings.
//
// It behaves exactly like Interner[string] and adds InternBytes for callers
// that hold tokens as byte slices (lexers, wire parsers). The byte-slice hit
// path does not allocate: the map lookup with a string conversion compiles
// to a no-copy access.
type StringInterner struct {
	Interner[string]
}

// NewStrings creates an empty string interner.
func NewStrings(opts ...Option) *StringInterner {
	return &StringInterner{Interner: *New[string](opts...)}
}

// InternBytes returns the symbol for string(b), interning it first if it has
// not been seen before. The string allocation happens only on a miss.
func (in *StringInterner) InternBytes(b []byte) Symbol {
	if s, ok := in.index[string(b)]; ok {
		return s
	}

	return in.Intern(string(b))
}
