package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the YYYYMMDD layout used for campaign start and end dates.
const DateLayout = "20060102"

// FormatDate renders t as a campaign date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYYMMDD campaign date. Decoding never calls it; dates
// stay plain strings until a caller needs a calendar value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid campaign date %q: %w", s, err)
	}
	return t, nil
}

// EpochMillis is a timestamp carried on the wire as milliseconds since the
// Unix epoch. Decoded values are in UTC.
type EpochMillis struct {
	time.Time
}

// NewEpochMillis truncates t to millisecond precision and converts it to UTC.
func NewEpochMillis(t time.Time) EpochMillis {
	return EpochMillis{Time: time.UnixMilli(t.UnixMilli()).UTC()}
}

func (d EpochMillis) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, d.UnixMilli(), 10), nil
}

func (d *EpochMillis) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("epoch millis: %w", err)
	}
	ms, err := n.Int64()
	if err != nil {
		return fmt.Errorf("epoch millis: %w", err)
	}
	d.Time = time.UnixMilli(ms).UTC()
	return nil
}
