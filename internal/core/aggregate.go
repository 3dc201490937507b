package core

import "sort"

type (
	// Summary holds the headline KPIs for a (filtered) dataset.
	Summary struct {
		TotalSales     float64
		MeanSales      float64
		TotalCustomers float64
		// AvgOrderValue is TotalSales / TotalCustomers, defined as zero
		// when no customers were counted.
		AvgOrderValue float64
	}

	// GroupTotal is summed sales for one category label.
	GroupTotal struct {
		Label string
		Sales float64
	}

	// DatePoint is summed sales for one calendar date.
	DatePoint struct {
		Date  Date
		Sales float64
	}
)

// Summarize computes the headline KPIs. Invalid numeric cells are skipped,
// matching the coercion policy: they count neither into sums nor into the
// mean's denominator.
func Summarize(ds Dataset) Summary {
	var s Summary
	validSales := 0
	for _, r := range ds.Records {
		if r.Sales.Valid {
			s.TotalSales += r.Sales.Value
			validSales++
		}
		if r.Customers.Valid {
			s.TotalCustomers += r.Customers.Value
		}
	}
	if validSales > 0 {
		s.MeanSales = s.TotalSales / float64(validSales)
	}
	if s.TotalCustomers > 0 {
		s.AvgOrderValue = s.TotalSales / s.TotalCustomers
	}
	return s
}

// SalesByDate sums sales per calendar date, chronologically ordered.
func SalesByDate(ds Dataset) []DatePoint {
	sums := map[Date]float64{}
	order := make([]Date, 0)
	for _, r := range ds.Records {
		if !r.Sales.Valid {
			continue
		}
		if _, ok := sums[r.Date]; !ok {
			order = append(order, r.Date)
		}
		sums[r.Date] += r.Sales.Value
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j].Time) })
	out := make([]DatePoint, 0, len(order))
	for _, d := range order {
		out = append(out, DatePoint{Date: d, Sales: sums[d]})
	}
	return out
}

// SalesByProduct sums sales per product, ordered by label.
func SalesByProduct(ds Dataset) []GroupTotal {
	return groupSales(ds, func(r Record) string { return r.Product }, byLabel)
}

// SalesByRegion sums sales per region, sorted ascending by summed sales for
// the ranked bar layout. Ties fall back to label order to keep output stable.
func SalesByRegion(ds Dataset) []GroupTotal {
	return groupSales(ds, func(r Record) string { return r.Region }, bySalesAscending)
}

// SalesByMonth sums sales per year-month bucket in chronological order
// (month keys sort lexically).
func SalesByMonth(ds Dataset) []GroupTotal {
	return groupSales(ds, func(r Record) string { return r.Date.MonthKey() }, byLabel)
}

type groupOrder int

const (
	byLabel groupOrder = iota
	bySalesAscending
)

func groupSales(ds Dataset, key func(Record) string, order groupOrder) []GroupTotal {
	sums := map[string]float64{}
	labels := make([]string, 0)
	for _, r := range ds.Records {
		if !r.Sales.Valid {
			continue
		}
		k := key(r)
		if _, ok := sums[k]; !ok {
			labels = append(labels, k)
		}
		sums[k] += r.Sales.Value
	}
	out := make([]GroupTotal, 0, len(labels))
	for _, l := range labels {
		out = append(out, GroupTotal{Label: l, Sales: sums[l]})
	}
	switch order {
	case bySalesAscending:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Sales != out[j].Sales {
				return out[i].Sales < out[j].Sales
			}
			return out[i].Label < out[j].Label
		})
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	}
	return out
}
