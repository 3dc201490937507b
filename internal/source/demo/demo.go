// Package demo generates the placeholder dataset used whenever the remote
// spreadsheet cannot be reached: one year of daily rows with a deterministic
// shape and random values. Randomness is deliberately unseeded; the data is
// throwaway demo content.
package demo

import (
	"math/rand"

	"salesboard/internal/core"
)

var (
	products = []string{"Product A", "Product B", "Product C", "Product D"}
	regions  = []string{"Tashkent", "Samarkand", "Bukhara", "Fergana"}
)

// Fixed demo calendar year. 2024 is a leap year, so the range yields 366 rows.
var (
	demoStart = core.NewDate(2024, 1, 1)
	demoEnd   = core.NewDate(2024, 12, 31)
)

// Generate produces one record per calendar day in the demo range. Sales
// follow a 50k baseline with a 100/day upward drift plus noise in
// [-5000, 10000]; customers hover around 100 with noise in [-20, 50].
func Generate() []core.Record {
	records := make([]core.Record, 0, 366)
	i := 0
	for d := demoStart.Time; !d.After(demoEnd.Time); d = d.AddDate(0, 0, 1) {
		records = append(records, core.Record{
			Date:      core.Date{Time: d},
			Sales:     number(50000 + 100*i + randBetween(-5000, 10000)),
			Customers: number(100 + randBetween(-20, 50)),
			Product:   products[rand.Intn(len(products))],
			Region:    regions[rand.Intn(len(regions))],
		})
		i++
	}
	return records
}

func number(v int) core.Number {
	return core.Number{Value: float64(v), Valid: true}
}

// randBetween returns a uniform int in [lo, hi], both ends inclusive.
func randBetween(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}
