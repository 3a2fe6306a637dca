package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

type _Renderer func(w io.Writer, r Result) error

var _renderers = map[string]_Renderer{
	"text": _renderText,
	"json": _renderJSON,
	"yaml": _renderYAML,
}

// Render writes r to w in the named format.
func Render(w io.Writer, format string, r Result) error {
	render, ok := _renderers[format]
	if !ok {
		return errorf("unknown output format %q", format)
	}
	return render(w, r)
}

func _renderText(w io.Writer, r Result) error {
	fprintf(w, "Part 1: %v\n", r.Covered)
	fprintf(w, "Part 2: %v\n", r.Tuning)
	return nil
}

func _renderJSON(w io.Writer, r Result) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(r)
}

func _renderYAML(w io.Writer, r Result) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(r); err != nil {
		return err
	}
	return e.Close()
}
