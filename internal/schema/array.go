package schema

import "strconv"

type array struct {
	name     string
	item     Schema
	maxItems int
}

// ArrayOption configures an Array schema.
type ArrayOption func(*array)

// MaxItems rejects arrays longer than n.
func MaxItems(n int) ArrayOption {
	return func(a *array) { a.maxItems = n }
}

// Array accepts a JSON array whose every element satisfies item.
func Array(name string, item Schema, opts ...ArrayOption) Schema {
	a := &array{name: name, item: item}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *array) Name() string { return a.name }

func (a *array) Decode(v any, path string) (any, []Issue) {
	items, ok := v.([]any)
	if !ok {
		return nil, []Issue{typeIssue(path, "array of "+a.item.Name(), v)}
	}
	var issues []Issue
	if a.maxItems > 0 && len(items) > a.maxItems {
		issues = append(issues, Issue{
			Path:     path,
			Code:     CodeTooManyItems,
			Expected: "at most " + strconv.Itoa(a.maxItems) + " items",
			Actual:   strconv.Itoa(len(items)),
		})
	}
	out := make([]any, 0, len(items))
	for i, raw := range items {
		decoded, itemIssues := a.item.Decode(raw, joinIndex(path, i))
		issues = append(issues, itemIssues...)
		out = append(out, decoded)
	}
	return out, issues
}
