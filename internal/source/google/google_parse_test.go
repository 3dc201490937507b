package google

import (
	"strings"
	"testing"
)

func TestParseRecords(t *testing.T) {
	values := [][]interface{}{
		{"date", "sales", "customers", "product", "region"},
		{"2024-01-01", "52340", "115", "Product A", "Tashkent"},
		{"2024-01-02", 48990.5, 98, "Product C", "Samarkand"},
		{"2024-01-03", "n/a", "", "Product B", "Bukhara"},
	}
	records, err := parseRecords(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Date.String() != "2024-01-01" || records[0].Sales.Value != 52340 {
		t.Fatalf("first record: %+v", records[0])
	}
	if !records[1].Sales.Valid || records[1].Sales.Value != 48990.5 {
		t.Fatalf("numeric cell not coerced: %+v", records[1].Sales)
	}
	// Garbage numerics coerce to invalid, never error.
	if records[2].Sales.Valid || records[2].Customers.Valid {
		t.Fatalf("expected invalid numbers for garbage cells: %+v", records[2])
	}
}

func TestParseRecordsHeaderCaseAndOrder(t *testing.T) {
	values := [][]interface{}{
		{"Region", "Date", "Product", "Sales", "Customers"},
		{"Fergana", "2024-06-15", "Product D", "61000", "140"},
	}
	records, err := parseRecords(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Region != "Fergana" || r.Product != "Product D" || r.Sales.Value != 61000 || r.Customers.Value != 140 {
		t.Fatalf("columns mismapped: %+v", r)
	}
}

func TestParseRecordsSkipsUnparseableDates(t *testing.T) {
	values := [][]interface{}{
		{"date", "sales", "customers", "product", "region"},
		{"not a date", "100", "1", "Product A", "Tashkent"},
		{"2024-02-29", "200", "2", "Product B", "Bukhara"},
	}
	records, err := parseRecords(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 1 || records[0].Date.String() != "2024-02-29" {
		t.Fatalf("expected only the leap-day row: %+v", records)
	}
}

func TestParseRecordsMissingHeader(t *testing.T) {
	values := [][]interface{}{
		{"date", "amount", "customers", "product", "region"},
		{"2024-01-01", "100", "1", "Product A", "Tashkent"},
	}
	_, err := parseRecords(values)
	if err == nil || !strings.Contains(err.Error(), "missing sales") {
		t.Fatalf("expected missing header error, got %v", err)
	}
}

func TestParseRecordsEmptySheet(t *testing.T) {
	if _, err := parseRecords(nil); err == nil {
		t.Fatalf("expected error for empty sheet")
	}
}
