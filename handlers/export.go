// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/agriquote/server/cliparse"
	"github.com/agriquote/server/middleware"
	"github.com/agriquote/server/models"
	"github.com/agriquote/server/store"
)

// exportHeader names the twelve fixed columns of the export format.
const exportHeader = "ID,Timestamp,Operation,Fields,Acres,Crop,Start Date,End Date,Email,Phone,Total,Status"

type ExportHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewExportHandler(conn *sql.DB, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{db: conn, cfg: cfg}
}

// Export handles GET /api/export
// Streams the full proposal collection as CSV with a download filename.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	proposals, err := store.ListAll(h.db)
	if err != nil {
		slog.Error("failed to list proposals for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := "proposals-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(FormatProposalsCSV(proposals))); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

// FormatProposalsCSV renders the proposal collection as the fixed
// twelve-column text table: one header line, one line per proposal in
// the given order. Text-bearing fields are wrapped in quotes to protect
// embedded separators. Embedded quote characters are NOT escaped; that
// is a known limitation of the format, kept for compatibility with
// consumers of the original export.
func FormatProposalsCSV(proposals []models.Proposal) string {
	var b strings.Builder
	b.WriteString(exportHeader + "\n")

	for _, p := range proposals {
		fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			p.ID,
			p.CreatedAt.Format(time.RFC3339),
			quoted(&p.OperationName),
			optionalInt(p.FieldCount),
			optionalFloat(p.Acreage),
			optionalText(p.CropType),
			optionalText(p.StartDate),
			optionalText(p.FinishDate),
			quoted(&p.Email),
			quoted(p.Phone),
			quoted(p.Total),
			p.Status,
		)
	}

	return b.String()
}

// quoted wraps a text field in quotes; absent values render as "".
func quoted(s *string) string {
	if s == nil {
		return `""`
	}
	return `"` + *s + `"`
}

func optionalText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func optionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
