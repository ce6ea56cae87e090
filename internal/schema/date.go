package schema

import "time"

// DateFromMillis accepts a JSON number of milliseconds since the Unix epoch
// and yields the corresponding time.Time in UTC.
func DateFromMillis(name string) Schema {
	return &primitive{name: name, kind: "integer", format: "epoch-millis", decode: func(v any, path string) (any, []Issue) {
		ms, ok := toInt(v)
		if !ok {
			return nil, []Issue{typeIssue(path, "epoch milliseconds", v)}
		}
		return time.UnixMilli(ms).UTC(), nil
	}}
}
