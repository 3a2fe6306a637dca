package main

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const _maxLineSize = 1024

var _readingPattern = regexp.MustCompile(
	`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`,
)

// ParseReadings reads one sensor reading per line. Blank lines are skipped;
// anything else that does not match yields a *ParseError.
func ParseReadings(r io.Reader) (readings []Reading, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(nil, _maxLineSize)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		reading, err := ParseReading(line)
		if err != nil {
			return nil, &ParseError{Line: n, Text: line, Err: err}
		}
		readings = append(readings, reading)
	}
	if err = s.Err(); err != nil {
		return nil, &ParseError{Line: n + 1, Err: err}
	}
	return
}

func ParseReading(line string) (r Reading, err error) {
	slice := _readingPattern.FindStringSubmatch(line)
	if slice == nil {
		err = ErrMalformedReading
		return
	}

	var v [4]int
	for i := range v {
		v[i], err = strconv.Atoi(slice[i+1])
		if err != nil {
			err = errorf("%w: %v", ErrMalformedReading, err)
			return
		}
	}

	r.Sensor = Position{v[0], v[1]}
	r.Beacon = Position{v[2], v[3]}
	return
}
