package http

import (
	"log/slog"
	"net/http"
	"net/url"

	"salesboard/internal/core"
	"salesboard/internal/dataset"
)

type (
	dailyRow struct {
		Date  string
		Sales string
	}

	productRow struct {
		Name  string
		Sales string
		Share string // percent of filtered total
	}

	regionRow struct {
		Name  string
		Sales string
		Width int // progress bar width, percent of the largest region
	}

	monthRow struct {
		Month string
		Sales string
	}

	tableRow struct {
		Date      string
		Sales     string
		Customers string
		Product   string
		Region    string
	}

	dashboardData struct {
		// Acquisition status banner
		Source         string
		FromRemote     bool
		FallbackReason string

		// Filter controls
		MinDate        string
		MaxDate        string
		Regions        []string
		SelectedRegion string
		Start          string
		End            string
		Rows           int

		// KPI cards
		TotalSales     string
		MeanSales      string
		TotalCustomers string
		AvgOrderValue  string

		// Grouped aggregates
		Daily         []dailyRow
		Products      []productRow
		RegionsRanked []regionRow
		Monthly       []monthRow

		// Data table
		Table       []tableRow
		FilteredLen int

		ExportQuery string
	}
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	res := s.loader.Load(r.Context())
	data := buildDashboard(r, res)

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleDashboardPartial renders the dashboard body alone, for in-page
// filter refreshes.
func (s *Server) handleDashboardPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	res := s.loader.Load(r.Context())
	data := buildDashboard(r, res)

	if err := s.templates.ExecuteTemplate(w, "dashboard", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err, "template", "dashboard")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// buildDashboard runs the filter and aggregation pipeline for one request.
// The loaded dataset is shared and read-only; every step below works on
// derived views.
func buildDashboard(r *http.Request, res dataset.Result) dashboardData {
	full := res.Dataset
	filter := parseFilter(r)
	rows := parseTableRows(r)
	filtered := full.Apply(filter)
	summary := core.Summarize(filtered)

	data := dashboardData{
		Source:         string(res.Source),
		FromRemote:     res.FromRemote(),
		FallbackReason: res.FallbackReason,
		SelectedRegion: filter.Region,
		Rows:           rows,
		TotalSales:     formatAmount(summary.TotalSales),
		MeanSales:      formatAmount(summary.MeanSales),
		TotalCustomers: formatCount(summary.TotalCustomers),
		AvgOrderValue:  formatAmount(summary.AvgOrderValue),
		FilteredLen:    filtered.Len(),
	}

	// Date picker bounds come from the loaded data, not the filter.
	if min, max, ok := full.DateBounds(); ok {
		data.MinDate = min.String()
		data.MaxDate = max.String()
	}
	if !filter.Start.IsEmpty() {
		data.Start = filter.Start.String()
	}
	if !filter.End.IsEmpty() {
		data.End = filter.End.String()
	}
	data.Regions = append([]string{core.AllRegions}, full.Regions()...)

	for _, p := range core.SalesByDate(filtered) {
		data.Daily = append(data.Daily, dailyRow{Date: p.Date.String(), Sales: formatAmount(p.Sales)})
	}

	for _, g := range core.SalesByProduct(filtered) {
		data.Products = append(data.Products, productRow{
			Name:  g.Label,
			Sales: formatAmount(g.Sales),
			Share: sharePercent(g.Sales, summary.TotalSales),
		})
	}

	regionGroups := core.SalesByRegion(filtered)
	var maxRegion float64
	for _, g := range regionGroups {
		if g.Sales > maxRegion {
			maxRegion = g.Sales
		}
	}
	for _, g := range regionGroups {
		width := 0
		if maxRegion > 0 && g.Sales > 0 {
			width = int(g.Sales/maxRegion*100 + 0.5)
			if width > 0 && width < 2 { // ensure visibility for very small values
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		data.RegionsRanked = append(data.RegionsRanked, regionRow{Name: g.Label, Sales: formatAmount(g.Sales), Width: width})
	}

	for _, g := range core.SalesByMonth(filtered) {
		data.Monthly = append(data.Monthly, monthRow{Month: g.Label, Sales: formatAmount(g.Sales)})
	}

	for _, rec := range filtered.Head(rows).Records {
		data.Table = append(data.Table, tableRow{
			Date:      rec.Date.String(),
			Sales:     cell(rec.Sales),
			Customers: cell(rec.Customers),
			Product:   rec.Product,
			Region:    rec.Region,
		})
	}

	data.ExportQuery = exportQuery(filter)
	return data
}

// exportQuery rebuilds the filter query string for the CSV download link.
func exportQuery(f core.Filter) string {
	q := url.Values{}
	if !f.Start.IsEmpty() {
		q.Set("start", f.Start.String())
	}
	if !f.End.IsEmpty() {
		q.Set("end", f.End.String())
	}
	if f.Region != "" && f.Region != core.AllRegions {
		q.Set("region", f.Region)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
