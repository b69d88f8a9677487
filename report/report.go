// Package report renders a solver.Result as console text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/solve24/solver"
)

// ErrUnknownFormat indicates an output format name that is not supported.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{Text, JSON, YAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Document is the structured form of a Result.
type Document struct {
	Numbers   []int   `json:"numbers" yaml:"numbers"`
	Target    int     `json:"target" yaml:"target"`
	Solved    bool    `json:"solved" yaml:"solved"`
	Solutions []Entry `json:"solutions" yaml:"solutions"`
}

// Entry is one numbered solution.
type Entry struct {
	Index   int    `json:"index" yaml:"index"`
	Expr    string `json:"expr" yaml:"expr"`
	Postfix string `json:"postfix" yaml:"postfix"`
}

// NewDocument converts res into its structured form.
func NewDocument(res *solver.Result) Document {
	doc := Document{
		Numbers:   res.Numbers[:],
		Target:    res.Target,
		Solved:    res.Solved(),
		Solutions: make([]Entry, len(res.Solutions)),
	}
	for i, s := range res.Solutions {
		doc.Solutions[i] = Entry{Index: i + 1, Expr: s.Expr, Postfix: s.Postfix.String()}
	}

	return doc
}

// Write encodes res to w in format f.
func Write(w io.Writer, res *solver.Result, f Format) error {
	switch f {
	case Text:
		_, err := res.WriteTo(w)
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(res))
	case YAML:
		out, err := yaml.Marshal(NewDocument(res))
		if err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
