package intern

type options struct {
	capacity int
}

// Option configures interner construction.
//
// Options exist to avoid exploding the constructor surface; all interner
// flavors accept the same set.
type Option func(*options)

// WithCapacity preallocates store and index space for n values.
//
// Interning beyond n still works; this only avoids rehashing and slice
// growth during warm-up when the caller knows the rough vocabulary size.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
