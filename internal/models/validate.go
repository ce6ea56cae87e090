package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// FieldError is one failed typed-value check.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
	Value string `json:"value,omitempty"`
}

// ValidationError is returned by Validate when a typed value breaks one of
// the closed-set or size rules declared on the models.
type ValidationError struct {
	Fields []FieldError

	cause error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s", f.Field, f.Rule, f.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: failed %s", f.Field, f.Rule))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

type readOnlyFields interface {
	readOnlyValue() any
}

func (c SponsoredBrandsCampaign) readOnlyValue() any {
	return c.readOnly()
}

// Validate checks a typed model before it is serialized into a request body.
// It covers enum membership and the creative ASIN limit; numeric ranges are
// left to the platform.
func Validate(v any) error {
	vd := validatorInstance()
	var fields []FieldError
	var cause error

	collect := func(err error) error {
		if err == nil {
			return nil
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate %T: %w", v, err)
		}
		cause = err
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: fieldPath(fe.Namespace()),
				Rule:  fe.Tag(),
				Param: fe.Param(),
				Value: fmt.Sprint(fe.Value()),
			})
		}
		return nil
	}

	if err := collect(vd.Struct(v)); err != nil {
		return err
	}
	if ro, ok := v.(readOnlyFields); ok {
		if err := collect(vd.Struct(ro.readOnlyValue())); err != nil {
			return err
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields, cause: cause}
}

// fieldPath drops the leading struct name from a validator namespace such as
// "SponsoredBrandsCampaign.keywords[0].matchType".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
