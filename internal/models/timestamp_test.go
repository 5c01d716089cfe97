package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestampRoundTrip(t *testing.T) {
	in := "2026-03-01T09:15:30.5Z"
	ts := ParseTimestamp(in)
	if !ts.Parsed() {
		t.Fatalf("expected parse to succeed for %q", in)
	}

	want := time.Date(2026, 3, 1, 9, 15, 30, 500000000, time.UTC)
	if !ts.Time.Equal(want) {
		t.Fatalf("expected %v, got %v", want, ts.Time)
	}

	stored, err := ts.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var back Timestamp
	if err := back.Scan(stored); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !back.Time.Equal(ts.Time) {
		t.Fatalf("round trip changed value: %v != %v", back.Time, ts.Time)
	}
}

func TestParseTimestampAcceptsOffsetAndBareForms(t *testing.T) {
	cases := []string{
		"2026-03-01T09:15:30+00:00",
		"2026-03-01T09:15:30+02:00",
		"2026-03-01T09:15:30.123456",
	}
	for _, in := range cases {
		if ts := ParseTimestamp(in); !ts.Parsed() {
			t.Errorf("expected %q to parse", in)
		}
	}
}

func TestParseTimestampKeepsRawOnFailure(t *testing.T) {
	in := "not-a-timestamp"
	ts := ParseTimestamp(in)
	if ts.Parsed() {
		t.Fatalf("expected parse failure for %q", in)
	}
	if ts.Raw != in {
		t.Fatalf("expected raw value retained, got %q", ts.Raw)
	}
	if ts.IsZero() {
		t.Fatal("raw value should not be zero")
	}

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"not-a-timestamp"` {
		t.Fatalf("raw value should marshal verbatim, got %s", data)
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2026-03-01T09:00:00.000000Z"` {
		t.Fatalf("unexpected JSON: %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Time.Equal(ts.Time) {
		t.Fatalf("JSON round trip changed value: %v != %v", back.Time, ts.Time)
	}
}

func TestZeroTimestampIsNull(t *testing.T) {
	var ts Timestamp
	if !ts.IsZero() {
		t.Fatal("zero value should report IsZero")
	}

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("expected null, got %s", data)
	}

	stored, err := ts.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if stored != nil {
		t.Fatalf("expected NULL, got %v", stored)
	}

	var back Timestamp
	if err := back.Scan(nil); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !back.IsZero() {
		t.Fatal("scanning NULL should produce the zero value")
	}
}

func TestTimestampStringOrder(t *testing.T) {
	// The window queries compare stored strings lexicographically, so
	// formatting must preserve time order. The fixed-width fraction is
	// what keeps sub-second values ordered; a trimming format would put
	// ".5Z" after ".55Z" and let whole-second cutoffs exclude values
	// later in the same second.
	cases := []struct {
		name    string
		earlier time.Time
		later   time.Time
	}{
		{
			name:    "whole seconds",
			earlier: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
			later:   time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name:    "mixed fraction widths",
			earlier: time.Date(2026, 3, 4, 8, 0, 0, 500000000, time.UTC),
			later:   time.Date(2026, 3, 4, 8, 0, 0, 550000000, time.UTC),
		},
		{
			name:    "midnight cutoff against sub-second deletion",
			earlier: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			later:   time.Date(2026, 3, 4, 0, 0, 0, 500000000, time.UTC),
		},
		{
			name:    "fraction against next whole second",
			earlier: time.Date(2026, 3, 4, 8, 0, 0, 900000000, time.UTC),
			later:   time.Date(2026, 3, 4, 8, 0, 1, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			earlier := NewTimestamp(tc.earlier).String()
			later := NewTimestamp(tc.later).String()
			if earlier >= later {
				t.Fatalf("expected %q < %q", earlier, later)
			}
		})
	}
}

func TestTimestampScanRejectsUnknownType(t *testing.T) {
	var ts Timestamp
	if err := ts.Scan(42); err == nil {
		t.Fatal("expected an error for an unsupported source type")
	}
}
