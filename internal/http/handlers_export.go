package http

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	applog "salesboard/internal/log"
)

var csvHeader = []string{"date", "sales", "customers", "product", "region", "month"}

// handleExportCSV streams the filtered dataset as a CSV download. The
// filter pipeline is the same one the dashboard uses, so the file matches
// what the user sees.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	res := s.loader.Load(r.Context())
	filtered := res.Dataset.Apply(parseFilter(r))

	filename := fmt.Sprintf("sales_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
		return
	}
	for _, rec := range filtered.Records {
		row := []string{
			rec.Date.String(),
			cell(rec.Sales),
			cell(rec.Customers),
			rec.Product,
			rec.Region,
			rec.Date.MonthKey(),
		}
		if err := cw.Write(row); err != nil {
			slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
		return
	}

	slog.InfoContext(r.Context(), "Dataset exported",
		applog.FieldOperation, applog.OpExport,
		applog.FieldRows, filtered.Len(),
		applog.FieldSource, string(res.Source),
	)
}
