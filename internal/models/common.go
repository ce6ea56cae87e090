package models

import (
	"net/url"
	"strconv"
	"strings"
)

// ResponseCodeSuccess is the code the platform reports for a successful
// mutation. Any other code is an error code.
const ResponseCodeSuccess = "SUCCESS"

// ResponseStatus is the status block shared by every mutation response.
type ResponseStatus struct {
	Code    string  `json:"code"`
	Details *string `json:"details,omitempty"`
}

// Succeeded reports whether the status carries the success code.
func (s ResponseStatus) Succeeded() bool {
	return s.Code == ResponseCodeSuccess
}

// ListPagination is the generic pagination parameter bag accepted by list
// endpoints.
type ListPagination struct {
	StartIndex *int `json:"startIndex,omitempty"`
	Count      *int `json:"count,omitempty"`
}

// Query encodes the pagination parameters that are set.
func (p ListPagination) Query() url.Values {
	q := url.Values{}
	if p.StartIndex != nil {
		q.Set("startIndex", strconv.Itoa(*p.StartIndex))
	}
	if p.Count != nil {
		q.Set("count", strconv.Itoa(*p.Count))
	}
	return q
}

func joinInts[T ~int64](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	return strings.Join(parts, ",")
}

func joinStrings[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}
