package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// timestampStoreLayout always emits a six-digit fraction so stored strings
// are fixed-width and lexicographic order matches time order. RFC3339Nano
// would trim trailing zeros and break that: ".5Z" sorts after ".55Z".
const timestampStoreLayout = "2006-01-02T15:04:05.000000Z07:00"

// timestampLayouts are tried in order when parsing stored values. The store
// writes RFC 3339 with a UTC offset; the bare layout covers strings written
// without one.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// Timestamp is a point in time read back from a TEXT column. A value that
// does not parse as ISO-8601 is kept verbatim in Raw instead of being
// rejected, so records with malformed timestamps still round-trip.
type Timestamp struct {
	Time time.Time
	Raw  string
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// ParseTimestamp never fails; an unparseable input comes back as a raw value.
func ParseTimestamp(s string) Timestamp {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t.UTC()}
		}
	}
	return Timestamp{Raw: s}
}

func (ts Timestamp) IsZero() bool {
	return ts.Time.IsZero() && ts.Raw == ""
}

// Parsed reports whether the value carries an actual instant rather than an
// unparseable raw string.
func (ts Timestamp) Parsed() bool {
	return !ts.Time.IsZero()
}

func (ts Timestamp) String() string {
	if ts.Raw != "" {
		return ts.Raw
	}
	if ts.Time.IsZero() {
		return ""
	}
	return ts.Time.UTC().Format(timestampStoreLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*ts = ParseTimestamp(s)
	return nil
}

func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts = Timestamp{}
	case string:
		*ts = ParseTimestamp(v)
	case []byte:
		*ts = ParseTimestamp(string(v))
	case time.Time:
		*ts = NewTimestamp(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
	return nil
}

func (ts Timestamp) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return ts.String(), nil
}
