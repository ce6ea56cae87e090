package schema

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Field binds a JSON member name to the schema of its value.
type Field struct {
	Name   string
	Schema Schema
}

// F is shorthand for a Field literal.
func F(name string, s Schema) Field {
	return Field{Name: name, Schema: s}
}

// shape is implemented by schemas that describe JSON objects. Intersection
// uses it to merge the declared key sets of its parts before judging unknown
// keys.
type shape interface {
	Schema
	keys() []string
	rejectsUnknown() bool
	decodeFields(m map[string]any, path string) (map[string]any, []Issue)
}

// Object is a record schema. Build one with Strict or Partial.
type Object struct {
	name     string
	fields   []Field
	required bool
	strict   bool
	readonly bool
}

// Strict requires every field and rejects members that are not declared.
func Strict(name string, fields ...Field) *Object {
	return &Object{name: name, fields: fields, required: true, strict: true}
}

// Partial makes every field optional. Present fields are still checked and
// undeclared members are passed through unchecked.
func Partial(name string, fields ...Field) *Object {
	return &Object{name: name, fields: fields}
}

// Readonly returns a copy of o flagged as a read-only projection. Decoding is
// unchanged; the flag is carried into JSONSchema output.
func Readonly(o *Object) *Object {
	c := *o
	c.readonly = true
	return &c
}

func (o *Object) Name() string { return o.name }

// Fields returns the declared fields in declaration order.
func (o *Object) Fields() []Field {
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

func (o *Object) keys() []string {
	out := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, f.Name)
	}
	return out
}

func (o *Object) rejectsUnknown() bool { return o.strict }

func (o *Object) Decode(v any, path string) (any, []Issue) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, []Issue{typeIssue(path, "object", v)}
	}
	out, issues := o.decodeFields(m, path)
	if o.strict {
		issues = append(issues, unknownIssues(m, o.keys(), path)...)
	} else {
		issues = append(issues, miscasedIssues(m, o.keys(), path)...)
		passthrough(out, m)
	}
	return out, issues
}

func (o *Object) decodeFields(m map[string]any, path string) (map[string]any, []Issue) {
	out := make(map[string]any, len(o.fields))
	var issues []Issue
	for _, f := range o.fields {
		fieldPath := joinKey(path, f.Name)
		raw, present := m[f.Name]
		if !present {
			if o.required {
				issues = append(issues, Issue{Path: fieldPath, Code: CodeMissingField, Expected: f.Schema.Name()})
			}
			continue
		}
		decoded, fieldIssues := f.Schema.Decode(raw, fieldPath)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		out[f.Name] = decoded
	}
	return out, issues
}

type intersection struct {
	name  string
	parts []Schema
}

// Intersection accepts a value only if it satisfies every part. Issues from
// all parts are reported together. If any object part is strict, unknown
// members are judged against the keys declared by all object parts combined.
func Intersection(name string, parts ...Schema) Schema {
	return &intersection{name: name, parts: parts}
}

func (s *intersection) Name() string { return s.name }

// Parts returns the component schemas.
func (s *intersection) Parts() []Schema {
	out := make([]Schema, len(s.parts))
	copy(out, s.parts)
	return out
}

func (s *intersection) keys() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.parts {
		sh, ok := p.(shape)
		if !ok {
			continue
		}
		for _, k := range sh.keys() {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

func (s *intersection) rejectsUnknown() bool {
	for _, p := range s.parts {
		if sh, ok := p.(shape); ok && sh.rejectsUnknown() {
			return true
		}
	}
	return false
}

func (s *intersection) decodeFields(m map[string]any, path string) (map[string]any, []Issue) {
	out := make(map[string]any)
	var issues []Issue
	for _, p := range s.parts {
		var (
			decoded   any
			decodeIss []Issue
		)
		if sh, ok := p.(shape); ok {
			decoded, decodeIss = sh.decodeFields(m, path)
		} else {
			decoded, decodeIss = p.Decode(m, path)
		}
		issues = append(issues, decodeIss...)
		if dm, ok := decoded.(map[string]any); ok {
			for k, v := range dm {
				out[k] = v
			}
		}
	}
	return out, issues
}

func (s *intersection) Decode(v any, path string) (any, []Issue) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, []Issue{typeIssue(path, "object", v)}
	}
	out, issues := s.decodeFields(m, path)
	if s.rejectsUnknown() {
		issues = append(issues, unknownIssues(m, s.keys(), path)...)
	} else {
		issues = append(issues, miscasedIssues(m, s.keys(), path)...)
		passthrough(out, m)
	}
	return out, issues
}

func unknownIssues(m map[string]any, declared []string, path string) []Issue {
	known := make(map[string]struct{}, len(declared))
	for _, k := range declared {
		known[k] = struct{}{}
	}
	var extra []string
	for k := range m {
		if _, ok := known[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	issues := make([]Issue, 0, len(extra))
	for _, k := range extra {
		issues = append(issues, Issue{
			Path:     joinKey(path, k),
			Code:     CodeUnknownField,
			Expected: "one of " + strings.Join(declared, ", "),
			Actual:   describe(m[k]),
		})
	}
	return issues
}

// miscasedIssues reports undeclared members whose name differs from a
// declared one only by case. encoding/json matches struct fields
// case-insensitively, so passing them through would let an unchecked value
// reach the typed model.
func miscasedIssues(m map[string]any, declared []string, path string) []Issue {
	var issues []Issue
	for k, v := range m {
		if slices.Contains(declared, k) {
			continue
		}
		for _, d := range declared {
			if strings.EqualFold(k, d) {
				issues = append(issues, Issue{
					Path:     joinKey(path, k),
					Code:     CodeUnknownField,
					Expected: strconv.Quote(d) + " (member names are case-sensitive)",
					Actual:   describe(v),
				})
				break
			}
		}
	}
	sort.Slice(issues, func(a, b int) bool { return issues[a].Path < issues[b].Path })
	return issues
}

func passthrough(out, in map[string]any) {
	for k, v := range in {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
}
