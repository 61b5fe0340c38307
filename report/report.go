package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patrol/patrol"
)

// ErrUnknownFormat indicates an output format other than text, json or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format string

const (
	// Text writes the bare distinct-visit count followed by a newline.
	Text Format = "text"
	// JSON writes the Result as an indented JSON object.
	JSON Format = "json"
	// YAML writes the Result as a YAML document.
	YAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{Text, JSON, YAML}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Result is the outcome of one run.
type Result struct {
	Visited   int `json:"visited" yaml:"visited"`
	Steps     int `json:"steps" yaml:"steps"`
	Rotations int `json:"rotations" yaml:"rotations"`
	Width     int `json:"width" yaml:"width"`
	Height    int `json:"height" yaml:"height"`
}

// FromEngine collects a Result from a finished (or stopped) Engine.
func FromEngine(e *patrol.Engine) Result {
	return Result{
		Visited:   e.Visited().Count(),
		Steps:     e.Steps(),
		Rotations: e.Rotations(),
		Width:     e.Grid().Width,
		Height:    e.Grid().Height,
	}
}

// Write encodes r to w in format f.
func Write(w io.Writer, f Format, r Result) error {
	switch f {
	case Text, "":
		_, err := fmt.Fprintln(w, r.Visited)
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
