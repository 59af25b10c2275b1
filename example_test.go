package intern_test

import (
	"fmt"

	"github.com/hupe1980/intern"
)

// Example demonstrates basic interning and symbol reuse.
func Example() {
	in := intern.New[string]()

	a := in.Intern("a")
	b := in.Intern("a") // duplicate, same symbol
	c := in.Intern("b")

	fmt.Println(a == b)
	fmt.Println(a == c)
	fmt.Println(in.Len())
	// Output:
	// true
	// false
	// 2
}

// Example_resolve demonstrates the checked and unchecked resolve paths.
func Example_resolve() {
	in := intern.New[string]()
	s := in.Intern("hello")

	v, err := in.Resolve(s)
	fmt.Println(v, err)

	_, err = in.Resolve(intern.Symbol(999))
	fmt.Println(err)
	// Output:
	// hello <nil>
	// intern: invalid symbol 999 (interner holds 1 values)
}

// Example_stringInterner demonstrates byte-slice tokens sharing the string
// symbol space.
func Example_stringInterner() {
	in := intern.NewStrings()

	a := in.Intern("token")
	b := in.InternBytes([]byte("token"))

	fmt.Println(a == b)
	fmt.Println(in.Len())
	// Output:
	// true
	// 1
}

// Example_symbolSet demonstrates set algebra over dense symbols.
func Example_symbolSet() {
	a := intern.NewSymbolSet(0, 1, 2)
	b := intern.NewSymbolSet(2, 3)

	fmt.Println(a.Union(b).ToSlice())
	fmt.Println(a.Intersect(b).ToSlice())
	// Output:
	// [0 1 2 3]
	// [2]
}
