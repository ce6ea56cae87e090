package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parse reads a single JSON document from data and decodes it with s. Numbers
// are kept as json.Number so integer fields are checked without float
// rounding. On failure the error is a *DecodeError.
func Parse(s Schema, data []byte) (any, error) {
	raw, err := unmarshalJSON(data)
	if err != nil {
		return nil, &DecodeError{
			Schema: s.Name(),
			Issues: []Issue{{Code: CodeInvalidJSON, Expected: "a single JSON value", Actual: err.Error()}},
			cause:  fmt.Errorf("%w: %v", ErrInvalidJSON, err),
		}
	}
	return Validate(s, raw)
}

// Validate decodes an already unmarshalled value with s.
func Validate(s Schema, v any) (any, error) {
	out, issues := s.Decode(v, "")
	if len(issues) > 0 {
		return nil, newDecodeError(s.Name(), issues)
	}
	return out, nil
}

func unmarshalJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}
