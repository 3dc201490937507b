package core

import "testing"

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in    any
		value float64
		valid bool
	}{
		{123.5, 123.5, true},
		{42, 42, true},
		{int64(7), 7, true},
		{"123", 123, true},
		{" 50000 ", 50000, true},
		{"1234,5", 1234.5, true},
		{"", 0, false},
		{"n/a", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got := CoerceNumber(tc.in)
		if got.Valid != tc.valid {
			t.Fatalf("%v: valid=%v, want %v", tc.in, got.Valid, tc.valid)
		}
		if got.Valid && got.Value != tc.value {
			t.Fatalf("%v: value=%v, want %v", tc.in, got.Value, tc.value)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.String() != "2024-03-05" || d.MonthKey() != "2024-03" {
		t.Fatalf("unexpected date %s (month %s)", d, d.MonthKey())
	}
	if _, err := ParseDate("05/03/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestDateBounds(t *testing.T) {
	var empty Dataset
	if _, _, ok := empty.DateBounds(); ok {
		t.Fatalf("expected no bounds for empty dataset")
	}

	ds := Dataset{Records: []Record{
		{Date: NewDate(2024, 6, 15)},
		{Date: NewDate(2024, 1, 1)},
		{Date: NewDate(2024, 12, 31)},
	}}
	min, max, ok := ds.DateBounds()
	if !ok || min.String() != "2024-01-01" || max.String() != "2024-12-31" {
		t.Fatalf("bounds: min=%s max=%s ok=%v", min, max, ok)
	}
}

func TestRegionsSortedDistinct(t *testing.T) {
	ds := Dataset{Records: []Record{
		{Region: "Tashkent"},
		{Region: "Bukhara"},
		{Region: "Tashkent"},
		{Region: "Fergana"},
	}}
	got := ds.Regions()
	want := []string{"Bukhara", "Fergana", "Tashkent"}
	if len(got) != len(want) {
		t.Fatalf("regions: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("regions: %v, want %v", got, want)
		}
	}
}

func TestHead(t *testing.T) {
	ds := Dataset{Records: []Record{{Region: "a"}, {Region: "b"}, {Region: "c"}}}
	if got := ds.Head(2).Len(); got != 2 {
		t.Fatalf("head(2): %d rows", got)
	}
	if got := ds.Head(10).Len(); got != 3 {
		t.Fatalf("head(10): %d rows", got)
	}
	if got := ds.Head(-1).Len(); got != 0 {
		t.Fatalf("head(-1): %d rows", got)
	}
}
