package main

import (
	"sort"
	"strings"
)

// IntervalRow holds the covered x-positions of one row as sorted intervals,
// none of which overlap or touch.
type IntervalRow []Interval

// Insert adds iv to the row, merging it with any interval it overlaps,
// subsumes or abuts. Empty intervals are ignored.
func (s *IntervalRow) Insert(iv Interval) {
	if iv.Empty() {
		return
	}

	i := sort.Search(len(*s), func(i int) bool { return iv.sortsBefore((*s)[i]) })

	*s = append(*s, Interval{})
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = iv

	// Everything left of i-1 was already compact.
	w := i
	if w > 0 {
		w--
	}
	for k := w + 1; k < len(*s); k++ {
		if (*s)[w].Merges((*s)[k]) {
			(*s)[w] = (*s)[w].Union((*s)[k])
			continue
		}
		w++
		(*s)[w] = (*s)[k]
	}
	*s = (*s)[:w+1]
}

// Len returns the number of covered points in the row.
func (s IntervalRow) Len() int {
	n := 0
	for _, iv := range s {
		n += iv.Len()
	}
	return n
}

func (s IntervalRow) Contains(x int) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i].End >= x })
	return i < len(s) && s[i].Has(x)
}

func (s IntervalRow) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, iv := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(iv.String())
	}
	b.WriteByte(']')
	return b.String()
}
