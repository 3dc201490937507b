package core

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	ds := sampleDataset()
	s := Summarize(ds)
	if s.TotalSales != 151315 {
		t.Fatalf("total sales: %v", s.TotalSales)
	}
	if math.Abs(s.MeanSales-151315.0/4) > 1e-9 {
		t.Fatalf("mean sales: %v", s.MeanSales)
	}
	if s.TotalCustomers != 320 {
		t.Fatalf("total customers: %v", s.TotalCustomers)
	}
	if math.Abs(s.AvgOrderValue-151315.0/320) > 1e-9 {
		t.Fatalf("avg order value: %v", s.AvgOrderValue)
	}
}

func TestSummarizeZeroCustomers(t *testing.T) {
	ds := Dataset{Records: []Record{
		{Date: NewDate(2024, 1, 1), Sales: Number{Value: 100, Valid: true}},
	}}
	s := Summarize(ds)
	if s.AvgOrderValue != 0 {
		t.Fatalf("avg order value with zero customers must be 0, got %v", s.AvgOrderValue)
	}
}

func TestSummarizeSkipsInvalidCells(t *testing.T) {
	ds := Dataset{Records: []Record{
		{Date: NewDate(2024, 1, 1), Sales: Number{Value: 100, Valid: true}, Customers: Number{Value: 10, Valid: true}},
		{Date: NewDate(2024, 1, 2), Sales: Number{}, Customers: Number{}},
	}}
	s := Summarize(ds)
	if s.TotalSales != 100 || s.MeanSales != 100 || s.TotalCustomers != 10 {
		t.Fatalf("invalid cells leaked into aggregates: %+v", s)
	}
}

func TestSummarizeEmptyDataset(t *testing.T) {
	s := Summarize(Dataset{})
	if s.TotalSales != 0 || s.MeanSales != 0 || s.AvgOrderValue != 0 {
		t.Fatalf("empty dataset: %+v", s)
	}
}

func TestGroupSumsPartitionTotal(t *testing.T) {
	ds := sampleDataset()
	total := Summarize(ds).TotalSales

	sum := func(groups []GroupTotal) float64 {
		var s float64
		for _, g := range groups {
			s += g.Sales
		}
		return s
	}
	if got := sum(SalesByProduct(ds)); math.Abs(got-total) > 1e-9 {
		t.Fatalf("product groups sum %v, total %v", got, total)
	}
	if got := sum(SalesByRegion(ds)); math.Abs(got-total) > 1e-9 {
		t.Fatalf("region groups sum %v, total %v", got, total)
	}
	if got := sum(SalesByMonth(ds)); math.Abs(got-total) > 1e-9 {
		t.Fatalf("month groups sum %v, total %v", got, total)
	}
	var byDate float64
	for _, p := range SalesByDate(ds) {
		byDate += p.Sales
	}
	if math.Abs(byDate-total) > 1e-9 {
		t.Fatalf("date groups sum %v, total %v", byDate, total)
	}
}

func TestSalesByDateSumsDuplicateDates(t *testing.T) {
	ds := sampleDataset()
	points := SalesByDate(ds)
	if len(points) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(points))
	}
	// Two rows share 2024-01-03 and must be summed.
	last := points[len(points)-1]
	if last.Date.String() != "2024-01-03" || last.Sales != 51210 {
		t.Fatalf("duplicate dates not summed: %s %v", last.Date, last.Sales)
	}
	for i := 1; i < len(points); i++ {
		if !points[i-1].Date.Before(points[i].Date.Time) {
			t.Fatalf("dates out of order at %d", i)
		}
	}
}

func TestSalesByRegionSortedAscending(t *testing.T) {
	ds := sampleDataset()
	groups := SalesByRegion(ds)
	for i := 1; i < len(groups); i++ {
		if groups[i-1].Sales > groups[i].Sales {
			t.Fatalf("regions not ascending: %+v", groups)
		}
	}
}

func TestSalesByMonthBuckets(t *testing.T) {
	n := func(v float64) Number { return Number{Value: v, Valid: true} }
	ds := Dataset{Records: []Record{
		{Date: NewDate(2024, 1, 31), Sales: n(10)},
		{Date: NewDate(2024, 2, 1), Sales: n(20)},
		{Date: NewDate(2024, 1, 2), Sales: n(5)},
	}}
	groups := SalesByMonth(ds)
	if len(groups) != 2 || groups[0].Label != "2024-01" || groups[0].Sales != 15 || groups[1].Label != "2024-02" {
		t.Fatalf("month buckets: %+v", groups)
	}
}
