package main

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReading(t *testing.T) {
	r, err := ParseReading("Sensor at x=-2, y=18: closest beacon is at x=-20, y=-15")
	require.NoError(t, err)
	assert.Equal(t, Reading{Sensor: Position{-2, 18}, Beacon: Position{-20, -15}}, r)
}

func TestParseReadingMalformed(t *testing.T) {
	for _, line := range []string{
		"Sensor at x=2, y=18",
		"Sensor at x=2, y=18: closest beacon is at x=-2",
		"Sensor at x=a, y=18: closest beacon is at x=-2, y=15",
		"Sensor at x=2, y=1.5: closest beacon is at x=-2, y=15",
		"sensor at x=2, y=18: closest beacon is at x=-2, y=15",
	} {
		_, err := ParseReading(line)
		assert.ErrorIs(t, err, ErrMalformedReading, line)
	}

	_, err := ParseReading("Sensor at x=99999999999999999999, y=0: closest beacon is at x=0, y=0")
	assert.ErrorIs(t, err, ErrMalformedReading)
}

func TestParseReadings(t *testing.T) {
	input := `
Sensor at x=2, y=18: closest beacon is at x=-2, y=15

  Sensor at x=9, y=16: closest beacon is at x=10, y=16
`
	readings, err := ParseReadings(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Reading{
		{Sensor: Position{2, 18}, Beacon: Position{-2, 15}},
		{Sensor: Position{9, 16}, Beacon: Position{10, 16}},
	}, readings)
}

func TestParseReadingsReportsLine(t *testing.T) {
	input := "Sensor at x=2, y=18: closest beacon is at x=-2, y=15\nSensor at x=9: oops\n"
	_, err := ParseReadings(strings.NewReader(input))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "Sensor at x=9: oops", parseErr.Text)
	assert.ErrorIs(t, err, ErrMalformedReading)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseReadingsLongLine(t *testing.T) {
	input := "Sensor at x=2, y=18: closest beacon is at x=-2, y=15\n" +
		"Sensor at x=" + strings.Repeat("1", 2*_maxLineSize) + "\n"
	_, err := ParseReadings(strings.NewReader(input))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}
