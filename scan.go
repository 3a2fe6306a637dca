package main

import (
	"github.com/b97tsk/rangeset"
	"github.com/rs/zerolog/log"
)

// FindGap returns the single position the grid leaves uncovered: the one row
// made of exactly two intervals that span the x-bounds save for one point.
func FindGap(g *CoverageGrid) (Position, error) {
	clip := g.Clip()
	var gaps []Position
	g.Each(func(y int, row IntervalRow) bool {
		if len(row) != 2 || row[1].Start != row[0].End+2 {
			return true
		}
		if row[0].Start != clip.Low || row[1].End != clip.High {
			return true
		}
		gaps = append(gaps, Position{row[0].End + 1, y})
		log.Debug().Int("row", y).Int("x", row[0].End+1).Msg("gap row")
		return len(gaps) < 2
	})

	switch len(gaps) {
	case 0:
		rows := g.Rows()
		return Position{}, _violation("find gap", ErrNoGap, "rows %d..%d", rows.Low, rows.High)
	case 1:
		return gaps[0], nil
	default:
		return Position{}, _violation("find gap", ErrAmbiguousGap, "%v and %v", gaps[0], gaps[1])
	}
}

// CountCovered returns how many positions on row y are covered, leaving out
// the distinct occupied positions that sit on that row under coverage.
func CountCovered(g *CoverageGrid, y int, occupied []Position) (int, error) {
	row, err := g.Row(y)
	if err != nil {
		return 0, err
	}

	var xs rangeset.RangeSet[int]
	for _, p := range occupied {
		if p.Y == y && row.Contains(p.X) {
			xs.Add(p.X)
		}
	}

	excluded := 0
	for _, r := range xs {
		excluded += r.High - r.Low
	}

	n := row.Len() - excluded
	if n < 0 {
		return 0, _violation("count row", ErrNegativeCount, "row %d: %d covered, %d occupied", y, row.Len(), excluded)
	}
	return n, nil
}
