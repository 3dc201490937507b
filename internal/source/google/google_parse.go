package google

import (
	"fmt"
	"strings"

	"salesboard/internal/core"
)

// parseRecords converts a values matrix (as returned by the Sheets API)
// into sales records. The first row is the header; column order in the
// sheet does not matter as long as the expected names are present.
//
// Numeric cells go through core.CoerceNumber so garbage becomes an invalid
// Number rather than an error. Rows whose date cannot be parsed are skipped;
// the table is best-effort at row granularity, all-or-nothing at sheet
// granularity.
func parseRecords(values [][]interface{}) ([]core.Record, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	headers := toStrings(values[0])
	colDate := indexOf(headers, "date")
	colSales := indexOf(headers, "sales")
	colCustomers := indexOf(headers, "customers")
	colProduct := indexOf(headers, "product")
	colRegion := indexOf(headers, "region")

	if colDate == -1 || colSales == -1 || colCustomers == -1 || colProduct == -1 || colRegion == -1 {
		missing := make([]string, 0, 5)
		for _, h := range []struct {
			name string
			col  int
		}{
			{"date", colDate},
			{"sales", colSales},
			{"customers", colCustomers},
			{"product", colProduct},
			{"region", colRegion},
		} {
			if h.col == -1 {
				missing = append(missing, h.name)
			}
		}
		return nil, fmt.Errorf("unexpected sheet header: missing %s; got headers=%v",
			strings.Join(missing, ","), headers)
	}

	records := make([]core.Record, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		date, err := core.ParseDate(safeGet(row, colDate))
		if err != nil {
			continue
		}
		records = append(records, core.Record{
			Date:      date,
			Sales:     core.CoerceNumber(safeGet(row, colSales)),
			Customers: core.CoerceNumber(safeGet(row, colCustomers)),
			Product:   strings.TrimSpace(safeGet(row, colProduct)),
			Region:    strings.TrimSpace(safeGet(row, colRegion)),
		})
	}
	return records, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func indexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return i
		}
	}
	return -1
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}
