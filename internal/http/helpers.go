package http

import (
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"salesboard/internal/core"
)

const (
	minTableRows     = 5
	maxTableRows     = 50
	defaultTableRows = 10
)

// parseFilter extracts the user-selected filter from query parameters.
// Unparseable dates are treated as unset; the filter itself then applies the
// incomplete-range rule.
func parseFilter(r *http.Request) core.Filter {
	f := core.Filter{Region: core.AllRegions}

	if v := strings.TrimSpace(r.URL.Query().Get("start")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			f.Start = d
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("end")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			f.End = d
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("region")); v != "" {
		f.Region = v
	}

	return f
}

// parseTableRows returns the row-count selection clamped to [5, 50].
func parseTableRows(r *http.Request) int {
	rows := defaultTableRows
	if v := strings.TrimSpace(r.URL.Query().Get("rows")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rows = n
		}
	}
	if rows < minTableRows {
		rows = minTableRows
	}
	if rows > maxTableRows {
		rows = maxTableRows
	}
	return rows
}

// formatAmount renders a sales figure the KPI way: dollar sign, thousands
// separators, no decimals.
func formatAmount(v float64) string {
	return "$" + groupThousands(v)
}

// formatCount renders a customer count with thousands separators.
func formatCount(v float64) string {
	return groupThousands(v)
}

func groupThousands(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))
	s := strconv.FormatInt(n, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// cell renders a numeric value for the data table; invalid cells stay blank.
func cell(n core.Number) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// sharePercent renders part as a percentage of total with one decimal.
func sharePercent(part, total float64) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", part/total*100)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"amount": formatAmount,
		"count":  formatCount,
		"pct":    sharePercent,
	}
}
