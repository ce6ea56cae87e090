package schema

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeErr(t *testing.T, err error) *DecodeError {
	t.Helper()
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	return de
}

func TestEnumAcceptsDeclaredLiterals(t *testing.T) {
	state := Enum("State", "enabled", "paused", "archived")
	for _, v := range []string{"enabled", "paused", "archived"} {
		out, err := Validate(state, v)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestEnumRejectsOtherValues(t *testing.T) {
	state := Enum("State", "enabled", "paused", "archived")

	tests := []struct {
		name  string
		value any
		code  string
	}{
		{"unknown literal", "deleted", CodeInvalidLiteral},
		{"case differs", "Enabled", CodeInvalidLiteral},
		{"empty", "", CodeInvalidLiteral},
		{"number", json.Number("1"), CodeInvalidType},
		{"null", nil, CodeInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(state, tt.value)
			de := decodeErr(t, err)
			require.Len(t, de.Issues, 1)
			assert.Equal(t, tt.code, de.Issues[0].Code)
			assert.Contains(t, de.Issues[0].Expected, `"paused"`)
		})
	}
}

func TestIntegerRejectsFractions(t *testing.T) {
	id := Integer("Id")

	out, err := Validate(id, json.Number("123"))
	require.NoError(t, err)
	assert.Equal(t, int64(123), out)

	for _, v := range []any{json.Number("1.5"), json.Number("1e3"), "123", true} {
		_, err := Validate(id, v)
		assert.Error(t, err, "value %v", v)
	}
}

func TestNumberAcceptsAnyNumeric(t *testing.T) {
	n := Number("Budget")
	for _, v := range []any{json.Number("-99"), json.Number("99.99"), json.Number("1e2"), 5.5} {
		_, err := Validate(n, v)
		assert.NoError(t, err, "value %v", v)
	}
	_, err := Validate(n, "12")
	assert.Error(t, err)
}

func TestPartialAcceptsEmptyAndUnknown(t *testing.T) {
	p := Partial("Thing", F("name", String("Name")), F("count", Integer("Count")))

	out, err := Parse(p, []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = Parse(p, []byte(`{"name":"x","extra":true}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "x", "extra": true}, out)

	_, err = Parse(p, []byte(`{"count":"seven"}`))
	de := decodeErr(t, err)
	assert.True(t, de.Has("count", CodeInvalidType))
}

func TestStrictReportsEveryViolation(t *testing.T) {
	s := Strict("Thing",
		F("name", String("Name")),
		F("count", Integer("Count")),
		F("on", Bool("On")),
	)

	_, err := Parse(s, []byte(`{"count":"x","zzz":1,"aaa":2}`))
	de := decodeErr(t, err)

	assert.True(t, de.Has("name", CodeMissingField))
	assert.True(t, de.Has("on", CodeMissingField))
	assert.True(t, de.Has("count", CodeInvalidType))
	assert.True(t, de.Has("aaa", CodeUnknownField))
	assert.True(t, de.Has("zzz", CodeUnknownField))
	assert.Len(t, de.Issues, 5)
	assert.Equal(t, "aaa", de.Issues[0].Path, "issues are sorted by path")
}

func TestIntersectionMergesDeclaredKeys(t *testing.T) {
	keyword := Intersection("Keyword",
		Strict("KeywordCore", F("keywordText", String("Text")), F("matchType", Enum("MatchType", "broad", "phrase", "exact"))),
		Partial("KeywordBid", F("bid", Number("Bid"))),
	)

	_, err := Parse(keyword, []byte(`{"keywordText":"running shoes","matchType":"broad","bid":1.25}`))
	require.NoError(t, err)

	_, err = Parse(keyword, []byte(`{"keywordText":"running shoes","matchType":"broad"}`))
	require.NoError(t, err)

	_, err = Parse(keyword, []byte(`{"keywordText":"running shoes","matchType":"fuzzy"}`))
	de := decodeErr(t, err)
	assert.True(t, de.Has("matchType", CodeInvalidLiteral))

	_, err = Parse(keyword, []byte(`{"keywordText":"a","matchType":"exact","bid":"high","note":1}`))
	de = decodeErr(t, err)
	assert.True(t, de.Has("bid", CodeInvalidType))
	assert.True(t, de.Has("note", CodeUnknownField))
}

func TestIntersectionOfPartialsIsPermissive(t *testing.T) {
	s := Intersection("Both", Partial("A", F("a", String("A"))), Partial("B", F("b", String("B"))))

	out, err := Parse(s, []byte(`{"a":"1","c":3}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "c": json.Number("3")}, out)
}

func TestPermissiveShapesRejectMiscasedMembers(t *testing.T) {
	state := Enum("State", "enabled", "paused")
	p := Partial("Thing", F("state", state), F("name", String("Name")))

	_, err := Parse(p, []byte(`{"state":"enabled","State":"bogus"}`))
	de := decodeErr(t, err)
	assert.True(t, de.Has("State", CodeUnknownField))
	assert.Len(t, de.Issues, 1)
	assert.Contains(t, de.Issues[0].Expected, `"state"`)

	_, err = Parse(p, []byte(`{"NAME":5}`))
	de = decodeErr(t, err)
	assert.True(t, de.Has("NAME", CodeUnknownField))

	both := Intersection("Both", p, Partial("Extra", F("count", Integer("Count"))))
	_, err = Parse(both, []byte(`{"Count":1.5}`))
	de = decodeErr(t, err)
	assert.True(t, de.Has("Count", CodeUnknownField))

	out, err := Parse(both, []byte(`{"state":"paused","other":1}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"state": "paused", "other": json.Number("1")}, out)
}

func TestNestedIntersectionKeysCountAsDeclared(t *testing.T) {
	status := Intersection("Status", Strict("StatusCore", F("code", String("Code"))), Partial("StatusDetail", F("details", String("Details"))))
	resp := Intersection("Response", Strict("ResponseCore", F("id", Integer("Id"))), status)

	_, err := Parse(resp, []byte(`{"id":1,"code":"SUCCESS","details":"ok"}`))
	require.NoError(t, err)

	_, err = Parse(resp, []byte(`{"id":1,"code":"SUCCESS","other":"x"}`))
	de := decodeErr(t, err)
	assert.True(t, de.Has("other", CodeUnknownField))
}

func TestArrayPathsAndMaxItems(t *testing.T) {
	asins := Array("Asins", String("Asin"), MaxItems(3))

	_, err := Parse(asins, []byte(`["a","b","c"]`))
	require.NoError(t, err)

	_, err = Parse(asins, []byte(`["a","b",3,"d"]`))
	de := decodeErr(t, err)
	assert.True(t, de.Has("", CodeTooManyItems))
	assert.True(t, de.Has("[2]", CodeInvalidType))

	nested := Strict("Holder", F("asins", asins))
	_, err = Parse(nested, []byte(`{"asins":[1]}`))
	de = decodeErr(t, err)
	assert.True(t, de.Has("asins[0]", CodeInvalidType))
}

func TestDateFromMillis(t *testing.T) {
	d := DateFromMillis("CreationDate")

	out, err := Parse(d, []byte(`1700000000123`))
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), out)

	_, err = Parse(d, []byte(`"2023-11-14"`))
	de := decodeErr(t, err)
	assert.Equal(t, CodeInvalidType, de.Issues[0].Code)
}

func TestParseInvalidJSON(t *testing.T) {
	s := Partial("Thing")

	for _, input := range []string{``, `{`, `{} {}`, `{"a":}`} {
		_, err := Parse(s, []byte(input))
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, ErrInvalidJSON), "input %q", input)
		de := decodeErr(t, err)
		assert.Equal(t, CodeInvalidJSON, de.Issues[0].Code)
	}
}

func TestObjectRejectsNonObjects(t *testing.T) {
	for _, s := range []Schema{Partial("P"), Strict("S"), Intersection("I", Partial("P"))} {
		_, err := Parse(s, []byte(`[1,2]`))
		de := decodeErr(t, err)
		assert.True(t, de.Has("", CodeInvalidType), s.Name())
	}
}

func TestJSONSchemaFlattensIntersections(t *testing.T) {
	s := Intersection("Campaign",
		Readonly(Partial("ReadOnly", F("campaignId", Integer("CampaignId")))),
		Strict("Core", F("name", String("Name")), F("asins", Array("Asins", String("Asin"), MaxItems(3)))),
	)

	doc := JSONSchema(s)
	assert.Equal(t, "object", doc.Type)
	assert.Equal(t, []string{"name", "asins"}, doc.Required)
	require.NotNil(t, doc.AdditionalProperties)
	assert.False(t, *doc.AdditionalProperties)
	assert.True(t, doc.Properties["campaignId"].ReadOnly)
	assert.False(t, doc.Properties["name"].ReadOnly)
	require.NotNil(t, doc.Properties["asins"].MaxItems)
	assert.Equal(t, 3, *doc.Properties["asins"].MaxItems)
}

func TestIssueString(t *testing.T) {
	is := Issue{Path: "keywords[0].matchType", Code: CodeInvalidLiteral, Expected: `one of "broad"`, Actual: `"fuzzy"`}
	assert.Equal(t, `keywords[0].matchType: invalid_literal, expected one of "broad", got "fuzzy"`, is.String())

	root := Issue{Code: CodeMissingField, Expected: "object"}
	assert.Equal(t, "(root): missing_field, expected object", root.String())
}
