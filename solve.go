package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Result holds the answers for both parts.
type Result struct {
	Row     int      `json:"row" yaml:"row"`
	Covered int      `json:"covered" yaml:"covered"`
	Gap     Position `json:"gap" yaml:"gap"`
	Tuning  int64    `json:"tuning" yaml:"tuning"`
}

// Solve counts the positions on row that cannot hold a beacon, then locates
// the uncovered position in the square 0..=2*row.
func Solve(readings []Reading, row int) (result Result, err error) {
	if row < 0 {
		return result, fmt.Errorf("row %d: %w", row, ErrRowOutOfBounds)
	}
	result.Row = row

	sensors := make([]Sensor, len(readings))
	beacons := make([]Position, len(readings))
	for i, r := range readings {
		sensors[i] = r.Coverage()
		beacons[i] = r.Beacon
	}

	start := time.Now()
	line, err := NewCoverageGrid(Bounds{row, row}, Unbounded)
	if err != nil {
		return
	}
	for _, s := range sensors {
		line.Add(s)
	}
	result.Covered, err = CountCovered(line, row, beacons)
	if err != nil {
		return
	}
	log.Debug().Int("row", row).Int("covered", result.Covered).Dur("took", time.Since(start)).Msg("part one")

	start = time.Now()
	domain, err := NewDomainGrid(2 * row)
	if err != nil {
		return
	}
	for i, s := range sensors {
		domain.Add(s)
		log.Trace().Int("sensor", i).Interface("at", s.Position).Int("radius", s.Radius).Msg("projected")
	}
	result.Gap, err = FindGap(domain)
	if err != nil {
		return
	}
	result.Tuning = result.Gap.TuningValue()
	log.Debug().Interface("gap", result.Gap).Int64("tuning", result.Tuning).Dur("took", time.Since(start)).Msg("part two")
	return
}
