package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidJSON is wrapped by DecodeError when the input is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid json")

// Issue codes reported by the combinators.
const (
	CodeInvalidType    = "invalid_type"
	CodeInvalidLiteral = "invalid_literal"
	CodeMissingField   = "missing_field"
	CodeUnknownField   = "unknown_field"
	CodeTooManyItems   = "too_many_items"
	CodeInvalidJSON    = "invalid_json"
)

// Issue is a single violated constraint at a path inside the decoded value.
type Issue struct {
	Path     string `json:"path"`
	Code     string `json:"code"`
	Expected string `json:"expected"`
	Actual   string `json:"actual,omitempty"`
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "(root)"
	}
	if i.Actual == "" {
		return fmt.Sprintf("%s: %s, expected %s", path, i.Code, i.Expected)
	}
	return fmt.Sprintf("%s: %s, expected %s, got %s", path, i.Code, i.Expected, i.Actual)
}

// DecodeError is returned when an input does not satisfy a schema. It carries
// every issue found, not only the first.
type DecodeError struct {
	Schema string
	Issues []Issue

	cause error
}

func (e *DecodeError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.String())
	}
	return fmt.Sprintf("decode %s: %s", e.Schema, strings.Join(parts, "; "))
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// Has reports whether an issue with the given path and code was recorded.
func (e *DecodeError) Has(path, code string) bool {
	for _, is := range e.Issues {
		if is.Path == path && is.Code == code {
			return true
		}
	}
	return false
}

func newDecodeError(name string, issues []Issue) *DecodeError {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Path != sorted[b].Path {
			return sorted[a].Path < sorted[b].Path
		}
		return sorted[a].Code < sorted[b].Code
	})
	return &DecodeError{Schema: name, Issues: dedupe(sorted)}
}

// dedupe drops identical adjacent issues, which intersections can produce
// when two parts declare the same field.
func dedupe(issues []Issue) []Issue {
	out := issues[:0]
	for _, is := range issues {
		if len(out) > 0 && is == out[len(out)-1] {
			continue
		}
		out = append(out, is)
	}
	return out
}
