// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/agriquote/server/cliparse"
	"github.com/agriquote/server/middleware"
	"github.com/agriquote/server/models"
	"github.com/agriquote/server/store"
)

type AnalyticsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAnalyticsHandler(conn *sql.DB, cfg cliparse.Config) *AnalyticsHandler {
	return &AnalyticsHandler{db: conn, cfg: cfg}
}

// GetAnalytics handles GET /api/analytics
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	report := ComputeAnalytics(h.db)
	middleware.JSONResponse(w, http.StatusOK, report)
}

// ComputeAnalytics runs the five aggregate sub-queries concurrently and
// assembles them into one report. Each sub-query owns its own failure:
// an error is logged and leaves that key nil, never failing the others.
// All five finish before the report is returned.
func ComputeAnalytics(conn *sql.DB) models.AnalyticsReport {
	var report models.AnalyticsReport

	var g errgroup.Group

	g.Go(func() error {
		count, err := countProposals(conn)
		if err != nil {
			slog.Error("analytics: proposal count failed", "error", err)
			return nil
		}
		report.TotalProposals = &count
		return nil
	})

	g.Go(func() error {
		total, err := sumTotalValue(conn)
		if err != nil {
			slog.Error("analytics: total value failed", "error", err)
			return nil
		}
		value := total.InexactFloat64()
		formatted := "$" + humanize.CommafWithDigits(value, 2)
		report.TotalValue = &value
		report.TotalValueFormatted = &formatted
		return nil
	})

	g.Go(func() error {
		avg, err := averageAcreage(conn)
		if err != nil {
			slog.Error("analytics: average acreage failed", "error", err)
			return nil
		}
		report.AverageAcreage = avg
		return nil
	})

	g.Go(func() error {
		top, err := topServices(conn, 5)
		if err != nil {
			slog.Error("analytics: top services failed", "error", err)
			return nil
		}
		report.TopServices = top
		return nil
	})

	g.Go(func() error {
		recent, err := store.ListRecent(conn, 10)
		if err != nil {
			slog.Error("analytics: recent proposals failed", "error", err)
			return nil
		}
		report.RecentProposals = recent
		return nil
	})

	// Sub-queries never return errors; Wait is a pure barrier here.
	g.Wait()

	return report
}

func countProposals(conn *sql.DB) (int, error) {
	var count int
	err := conn.QueryRow(`SELECT COUNT(*) FROM proposals`).Scan(&count)
	return count, err
}

// sumTotalValue adds up every total field after stripping currency
// formatting. A row whose total fails to parse contributes nothing.
func sumTotalValue(conn *sql.DB) (decimal.Decimal, error) {
	rows, err := conn.Query(`SELECT total FROM proposals WHERE total IS NOT NULL`)
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	sum := decimal.Zero
	for rows.Next() {
		var total string
		if err := rows.Scan(&total); err != nil {
			return decimal.Zero, err
		}
		value, ok := parseCurrency(total)
		if !ok {
			continue
		}
		sum = sum.Add(value)
	}

	return sum, rows.Err()
}

// parseCurrency strips symbols and thousands separators from currency
// text like "$1,234.56". Unparseable input reports ok=false.
func parseCurrency(text string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, text)

	if cleaned == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// averageAcreage returns nil when no row has a numeric acreage.
func averageAcreage(conn *sql.DB) (*float64, error) {
	var avg sql.NullFloat64
	err := conn.QueryRow(`SELECT AVG(acreage) FROM proposals WHERE acreage IS NOT NULL`).Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// topServices returns the n most frequent service names across all
// service lines, ties broken by storage order.
func topServices(conn *sql.DB, n int) ([]models.ServiceCount, error) {
	rows, err := conn.Query(`
		SELECT service_name, COUNT(*) AS uses
		FROM proposal_services
		GROUP BY service_name
		ORDER BY uses DESC, MIN(id) ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []models.ServiceCount{}
	for rows.Next() {
		var sc models.ServiceCount
		if err := rows.Scan(&sc.ServiceName, &sc.Count); err != nil {
			return nil, err
		}
		top = append(top, sc)
	}

	return top, rows.Err()
}
