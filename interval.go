package main

import (
	"math"
	"strconv"
)

// Interval is an inclusive range of integer x-positions.
type Interval struct {
	Start, End int
}

func (iv Interval) Empty() bool {
	return iv.Start > iv.End
}

// Len returns the number of integer points in iv.
func (iv Interval) Len() int {
	if iv.Empty() {
		return 0
	}
	return iv.End - iv.Start + 1
}

func (iv Interval) Has(x int) bool {
	return iv.Start <= x && x <= iv.End
}

// Overlaps reports whether a and b share a point. Requires a.Start <= b.Start.
func (a Interval) Overlaps(b Interval) bool {
	return a.End >= b.Start
}

// Contains reports whether a covers all of b.
func (a Interval) Contains(b Interval) bool {
	return a.Start <= b.Start && a.End >= b.End
}

// Abuts reports whether b begins right after a ends.
func (a Interval) Abuts(b Interval) bool {
	return a.End < b.Start && b.Start-a.End == 1
}

// Merges reports whether a and b must collapse into one interval.
// Requires a.Start <= b.Start.
func (a Interval) Merges(b Interval) bool {
	return a.Overlaps(b) || a.Contains(b) || a.Abuts(b)
}

func (a Interval) Union(b Interval) Interval {
	return Interval{_min(a.Start, b.Start), _max(a.End, b.End)}
}

// Clip restricts iv to b. The result may be empty.
func (iv Interval) Clip(b Bounds) Interval {
	return Interval{_max(iv.Start, b.Low), _min(iv.End, b.High)}
}

// sortsBefore orders by Start, then by End descending so that a subsuming
// interval precedes the one it absorbs.
func (a Interval) sortsBefore(b Interval) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End > b.End
}

func (iv Interval) String() string {
	return "[" + strconv.Itoa(iv.Start) + ", " + strconv.Itoa(iv.End) + "]"
}

// Bounds is an inclusive range used for row indices and x clipping.
type Bounds struct {
	Low, High int
}

// Unbounded clips nothing.
var Unbounded = Bounds{math.MinInt, math.MaxInt}

func (b Bounds) Empty() bool {
	return b.Low > b.High
}

func (b Bounds) Has(v int) bool {
	return b.Low <= v && v <= b.High
}

func _min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func _max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
