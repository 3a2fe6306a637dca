package main

import (
	"fmt"
)

// CoverageGrid owns one IntervalRow per row index in a bounded range.
// Intervals are clipped to the grid's x-bounds on the way in.
type CoverageGrid struct {
	rows  Bounds
	clip  Bounds
	lines []IntervalRow
}

func NewCoverageGrid(rows, clip Bounds) (*CoverageGrid, error) {
	if rows.Empty() {
		return nil, fmt.Errorf("rows %d..%d: %w", rows.Low, rows.High, ErrEmptyDomain)
	}
	if clip.Empty() {
		return nil, fmt.Errorf("x %d..%d: %w", clip.Low, clip.High, ErrEmptyDomain)
	}
	return &CoverageGrid{
		rows:  rows,
		clip:  clip,
		lines: make([]IntervalRow, rows.High-rows.Low+1),
	}, nil
}

// NewDomainGrid returns the square grid 0..=high in both directions.
func NewDomainGrid(high int) (*CoverageGrid, error) {
	b := Bounds{0, high}
	return NewCoverageGrid(b, b)
}

func (g *CoverageGrid) Rows() Bounds {
	return g.rows
}

func (g *CoverageGrid) Clip() Bounds {
	return g.clip
}

// Insert merges iv into row y. Rows outside the grid and intervals that
// clip to nothing are dropped.
func (g *CoverageGrid) Insert(y int, iv Interval) {
	if !g.rows.Has(y) {
		return
	}
	g.lines[y-g.rows.Low].Insert(iv.Clip(g.clip))
}

// Add inserts every row contribution of s.
func (g *CoverageGrid) Add(s Sensor) {
	s.Project(g.rows, g.clip, func(y int, iv Interval) bool {
		g.Insert(y, iv)
		return true
	})
}

// Row returns the merged intervals of row y. The result must not be modified.
func (g *CoverageGrid) Row(y int) (IntervalRow, error) {
	if !g.rows.Has(y) {
		return nil, fmt.Errorf("row %d not in %d..%d: %w", y, g.rows.Low, g.rows.High, ErrRowOutOfBounds)
	}
	return g.lines[y-g.rows.Low], nil
}

// Each calls f for every row in ascending order until f returns false.
func (g *CoverageGrid) Each(f func(y int, row IntervalRow) bool) {
	for i, row := range g.lines {
		if !f(g.rows.Low+i, row) {
			return
		}
	}
}
