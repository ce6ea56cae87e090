// Package schema is a small validator-combinator library for untyped JSON
// values. Schemas are composed declaratively (Strict, Partial, Intersection,
// Array, Enum) and report every violated constraint with the path to the
// offending field.
//
// Values handed to Decode are the output of encoding/json decoding into any,
// with numbers kept as json.Number (see Parse).
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Schema decodes an untyped value. Decode returns the decoded value, which
// differs from the input only for transforming schemas such as DateFromMillis,
// and the issues found under path.
type Schema interface {
	Name() string
	Decode(v any, path string) (any, []Issue)
}

type primitive struct {
	name   string
	kind   string
	format string
	decode func(v any, path string) (any, []Issue)
}

func (p *primitive) Name() string { return p.name }

func (p *primitive) Decode(v any, path string) (any, []Issue) { return p.decode(v, path) }

// String accepts any JSON string.
func String(name string) Schema {
	return &primitive{name: name, kind: "string", decode: func(v any, path string) (any, []Issue) {
		s, ok := v.(string)
		if !ok {
			return nil, []Issue{typeIssue(path, "string", v)}
		}
		return s, nil
	}}
}

// Bool accepts true or false.
func Bool(name string) Schema {
	return &primitive{name: name, kind: "boolean", decode: func(v any, path string) (any, []Issue) {
		b, ok := v.(bool)
		if !ok {
			return nil, []Issue{typeIssue(path, "boolean", v)}
		}
		return b, nil
	}}
}

// Number accepts any JSON number and yields a float64.
func Number(name string) Schema {
	return &primitive{name: name, kind: "number", decode: func(v any, path string) (any, []Issue) {
		f, ok := toFloat(v)
		if !ok {
			return nil, []Issue{typeIssue(path, "number", v)}
		}
		return f, nil
	}}
}

// Integer accepts a JSON number without a fractional part and yields an int64.
func Integer(name string) Schema {
	return &primitive{name: name, kind: "integer", decode: func(v any, path string) (any, []Issue) {
		n, ok := toInt(v)
		if !ok {
			return nil, []Issue{typeIssue(path, "integer", v)}
		}
		return n, nil
	}}
}

type enum struct {
	name   string
	values []string
	set    map[string]struct{}
}

// Enum accepts exactly one of the given string literals.
func Enum[T ~string](name string, values ...T) Schema {
	e := &enum{name: name, set: make(map[string]struct{}, len(values))}
	for _, v := range values {
		e.values = append(e.values, string(v))
		e.set[string(v)] = struct{}{}
	}
	return e
}

func (e *enum) Name() string { return e.name }

// Values returns the literal set in declaration order.
func (e *enum) Values() []string {
	out := make([]string, len(e.values))
	copy(out, e.values)
	return out
}

func (e *enum) Decode(v any, path string) (any, []Issue) {
	s, ok := v.(string)
	if !ok {
		return nil, []Issue{typeIssue(path, e.expected(), v)}
	}
	if _, ok := e.set[s]; !ok {
		return nil, []Issue{{Path: path, Code: CodeInvalidLiteral, Expected: e.expected(), Actual: describe(v)}}
	}
	return s, nil
}

func (e *enum) expected() string {
	quoted := make([]string, len(e.values))
	for i, v := range e.values {
		quoted[i] = strconv.Quote(v)
	}
	return "one of " + strings.Join(quoted, " | ")
}

// LiteralValues returns the accepted literals of an Enum schema, or nil for
// any other schema.
func LiteralValues(s Schema) []string {
	if e, ok := s.(*enum); ok {
		return e.Values()
	}
	return nil
}

func typeIssue(path, expected string, actual any) Issue {
	return Issue{Path: path, Code: CodeInvalidType, Expected: expected, Actual: describe(actual)}
}

// describe renders a value for an issue message. Long strings are cut.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		if len(t) > 64 {
			t = t[:64] + "..."
		}
		return strconv.Quote(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		// Exponent or decimal forms such as 1e3 or 12.0 do not unmarshal
		// into an int64 field, so they are rejected here as well.
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return wholeFloat(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
