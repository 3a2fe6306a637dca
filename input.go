package main

import (
	"io"
	"os"
)

// _loadReadings parses the file at name, or stdin when name is empty.
func _loadReadings(name string, stdin io.Reader) (readings []Reading, err error) {
	if name == "" {
		return ParseReadings(stdin)
	}

	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	readings, err = ParseReadings(file)
	if err != nil {
		err = errorf("%v: %w", name, err)
	}
	return
}
