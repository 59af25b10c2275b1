package intern_test

import (
	"testing"

	"github.com/hupe1980/intern"
	"github.com/stretchr/testify/assert"
)

func TestSymbolSet(t *testing.T) {
	s := intern.NewSymbolSet()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	s.Add(3)
	s.Add(1)
	s.Add(3) // no-op

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))

	s.Remove(1)
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains(1))
}

func TestSymbolSetAlgebra(t *testing.T) {
	a := intern.NewSymbolSet(0, 1, 2, 3)
	b := intern.NewSymbolSet(2, 3, 4)

	assert.Equal(t, []intern.Symbol{0, 1, 2, 3, 4}, a.Union(b).ToSlice())
	assert.Equal(t, []intern.Symbol{2, 3}, a.Intersect(b).ToSlice())
	assert.Equal(t, []intern.Symbol{0, 1}, a.Difference(b).ToSlice())
	assert.Equal(t, []intern.Symbol{4}, b.Difference(a).ToSlice())

	// Inputs are untouched.
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 3, b.Len())
}

func TestSymbolSetClone(t *testing.T) {
	a := intern.NewSymbolSet(1, 2)
	b := a.Clone()

	b.Add(3)
	a.Remove(1)

	assert.Equal(t, []intern.Symbol{2}, a.ToSlice())
	assert.Equal(t, []intern.Symbol{1, 2, 3}, b.ToSlice())
}

func TestSymbolSetAll(t *testing.T) {
	s := intern.NewSymbolSet(5, 0, 9, 2)

	var got []intern.Symbol
	for sym := range s.All() {
		got = append(got, sym)
	}

	assert.Equal(t, []intern.Symbol{0, 2, 5, 9}, got)
}

func TestSymbolSetPostingList(t *testing.T) {
	// The intended pairing: interner assigns dense symbols, sets act as
	// posting lists per category.
	in := intern.NewStrings()

	docs := []struct {
		id       intern.Symbol
		category string
	}{
		{0, "tech"}, {1, "news"}, {2, "tech"}, {3, "sports"}, {4, "tech"},
	}

	postings := map[intern.Symbol]*intern.SymbolSet{}
	for _, d := range docs {
		c := in.Intern(d.category)
		if postings[c] == nil {
			postings[c] = intern.NewSymbolSet()
		}
		postings[c].Add(d.id)
	}

	tech, _ := in.Lookup("tech")
	news, _ := in.Lookup("news")

	assert.Equal(t, []intern.Symbol{0, 2, 4}, postings[tech].ToSlice())
	assert.Equal(t, []intern.Symbol{1}, postings[news].ToSlice())
	assert.Equal(t, []intern.Symbol{0, 1, 2, 4}, postings[tech].Union(postings[news]).ToSlice())
}
