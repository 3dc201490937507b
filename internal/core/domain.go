package core

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

type (
	Date struct {
		time.Time
	}

	// Number is a numeric cell value after coercion. Coercion failures
	// produce Valid=false instead of an error, mirroring how the source
	// sheets carry occasional garbage in numeric columns.
	Number struct {
		Value float64
		Valid bool
	}

	// Record is one row of the sales table: a single day's activity for
	// one product/region combination. Dates are not unique; rows sharing
	// a date are summed by the date grouping.
	Record struct {
		Date      Date
		Sales     Number
		Customers Number
		Product   string
		Region    string
	}

	// Dataset is an ordered collection of records. Once produced by the
	// loader it is treated as immutable; filters return new views.
	Dataset struct {
		Records []Record
	}
)

// AllRegions is the sentinel region filter value that matches every row.
const AllRegions = "All"

var ErrInvalidDate = errors.New("invalid date")

// NewDate creates a Date at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// MonthKey returns the calendar year-month bucket, e.g. "2024-03".
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// IsEmpty reports whether the date is unset.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// CoerceNumber converts a raw cell value to a Number. Strings are trimmed
// and parsed with a decimal-comma fallback; anything unparseable yields an
// invalid Number rather than an error.
func CoerceNumber(v any) Number {
	switch n := v.(type) {
	case nil:
		return Number{}
	case float64:
		return Number{Value: n, Valid: true}
	case float32:
		return Number{Value: float64(n), Valid: true}
	case int:
		return Number{Value: float64(n), Valid: true}
	case int64:
		return Number{Value: float64(n), Valid: true}
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return Number{}
		}
		s = strings.ReplaceAll(s, ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}
		}
		return Number{Value: f, Valid: true}
	default:
		return CoerceNumber(fmt.Sprint(v))
	}
}

// Len returns the number of records.
func (ds Dataset) Len() int {
	return len(ds.Records)
}

// DateBounds returns the min and max date present in the dataset.
// ok is false for an empty dataset.
func (ds Dataset) DateBounds() (min, max Date, ok bool) {
	for _, r := range ds.Records {
		if !ok {
			min, max, ok = r.Date, r.Date, true
			continue
		}
		if r.Date.Before(min.Time) {
			min = r.Date
		}
		if r.Date.After(max.Time) {
			max = r.Date
		}
	}
	return min, max, ok
}

// Regions returns the sorted distinct region labels present in the data.
// Labels are preserved verbatim; no case folding.
func (ds Dataset) Regions() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, r := range ds.Records {
		if _, ok := seen[r.Region]; ok {
			continue
		}
		seen[r.Region] = struct{}{}
		out = append(out, r.Region)
	}
	sort.Strings(out)
	return out
}

// Head returns a new view containing at most n leading records.
func (ds Dataset) Head(n int) Dataset {
	if n < 0 {
		n = 0
	}
	if n > len(ds.Records) {
		n = len(ds.Records)
	}
	return Dataset{Records: append([]Record(nil), ds.Records[:n]...)}
}
