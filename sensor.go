package main

const _tuningFactor = 4_000_000

// Position is a point on the integer plane.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Distance returns the Manhattan distance between p and q.
func (p Position) Distance(q Position) int {
	return _abs(p.X-q.X) + _abs(p.Y-q.Y)
}

func (p Position) TuningValue() int64 {
	return int64(p.X)*_tuningFactor + int64(p.Y)
}

// Reading is one parsed input line.
type Reading struct {
	Sensor Position
	Beacon Position
}

// Coverage returns the sensor whose radius reaches exactly to the beacon.
func (r Reading) Coverage() Sensor {
	return Sensor{Position: r.Sensor, Radius: r.Sensor.Distance(r.Beacon)}
}

// Sensor covers every position within Radius of Position.
type Sensor struct {
	Position Position
	Radius   int
}

// Project emits, for every row of rows that the sensor's diamond reaches,
// the covered x-range clipped to clip. Rows where nothing survives clipping
// are skipped. Projection stops early if yield returns false.
func (s Sensor) Project(rows, clip Bounds, yield func(y int, iv Interval) bool) {
	top := _max(s.Position.Y-s.Radius, rows.Low)
	bottom := _min(s.Position.Y+s.Radius, rows.High)
	for y := top; y <= bottom; y++ {
		remaining := s.Radius - _abs(s.Position.Y-y)
		iv := Interval{s.Position.X - remaining, s.Position.X + remaining}.Clip(clip)
		if iv.Empty() {
			continue
		}
		if !yield(y, iv) {
			return
		}
	}
}

func _abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
