// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/prompt-battle/middleware"
	"github.com/danielhkuo/prompt-battle/models"
	"github.com/danielhkuo/prompt-battle/store"
)

const (
	csvHeader = "ID,Name,Prompt,Votes,Timestamp"

	// csvTimeLayout mirrors the browser's en-US locale string
	csvTimeLayout = "1/2/2006, 3:04:05 PM"
)

type ExportHandler struct {
	store *store.SubmissionStore
	now   func() time.Time
}

func NewExportHandler(s *store.SubmissionStore) *ExportHandler {
	return &ExportHandler{store: s, now: time.Now}
}

// DownloadCSV handles GET /download-csv
// Returns the leaderboard as a CSV attachment
func (h *ExportHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	submissions := h.store.List()
	if len(submissions) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No submissions to download")
		return
	}

	filename := fmt.Sprintf("prompt-battle-submissions-%s.csv", h.now().UTC().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(FormatCSV(submissions))); err != nil {
		slog.Error("failed to write CSV", "error", err)
	}
}

// FormatCSV renders submissions with the header row first. Text fields are
// always quoted, with embedded quotes doubled.
func FormatCSV(submissions []models.Submission) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for i, sub := range submissions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(sub.ID))
		b.WriteString(",")
		b.WriteString(quoteCSV(sub.Name))
		b.WriteString(",")
		b.WriteString(quoteCSV(sub.Prompt))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(sub.Votes))
		b.WriteString(",")
		b.WriteString(quoteCSV(sub.Timestamp.Local().Format(csvTimeLayout)))
	}

	return b.String()
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
