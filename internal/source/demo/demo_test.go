package demo

import "testing"

func TestGenerateShape(t *testing.T) {
	records := Generate()
	// 2024 is a leap year: one row per day.
	if len(records) != 366 {
		t.Fatalf("expected 366 rows, got %d", len(records))
	}
	if records[0].Date.String() != "2024-01-01" {
		t.Fatalf("first date: %s", records[0].Date)
	}
	if records[len(records)-1].Date.String() != "2024-12-31" {
		t.Fatalf("last date: %s", records[len(records)-1].Date)
	}
	// Consecutive calendar days, no gaps or duplicates.
	for i := 1; i < len(records); i++ {
		if records[i].Date.Sub(records[i-1].Date.Time).Hours() != 24 {
			t.Fatalf("gap between %s and %s", records[i-1].Date, records[i].Date)
		}
	}
}

func TestGenerateValueBounds(t *testing.T) {
	records := Generate()
	productSet := map[string]bool{"Product A": true, "Product B": true, "Product C": true, "Product D": true}
	regionSet := map[string]bool{"Tashkent": true, "Samarkand": true, "Bukhara": true, "Fergana": true}

	for i, r := range records {
		if !r.Sales.Valid || !r.Customers.Valid {
			t.Fatalf("row %d has invalid numbers", i)
		}
		base := float64(50000 + 100*i)
		if r.Sales.Value < base-5000 || r.Sales.Value > base+10000 {
			t.Fatalf("row %d sales %v outside [%v, %v]", i, r.Sales.Value, base-5000, base+10000)
		}
		if r.Customers.Value < 80 || r.Customers.Value > 150 {
			t.Fatalf("row %d customers %v outside [80, 150]", i, r.Customers.Value)
		}
		if !productSet[r.Product] {
			t.Fatalf("row %d unknown product %q", i, r.Product)
		}
		if !regionSet[r.Region] {
			t.Fatalf("row %d unknown region %q", i, r.Region)
		}
	}
}
