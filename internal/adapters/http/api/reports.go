package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/sportfit/internal/adapters/report"
	"github.com/okian/sportfit/pkg/logger"
)

// ReportsHandler serves downloadable documents.
type ReportsHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps Dependencies, log logger.Logger) *ReportsHandler {
	return &ReportsHandler{deps: deps, log: log}
}

// HandleXLSX handles POST /reports/xlsx requests.
func (h *ReportsHandler) HandleXLSX(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_report_xlsx"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	req, err := decodeProfile(op, w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	data, err := h.deps.ExportXLSX(r.Context(), req.query(requestLocale(r, req.Locale)))
	if err != nil {
		h.log.Error(r.Context(), "xlsx export failed", logger.Error(err))
		writeFailure(w, WrapKind(op, ErrInternal, err))
		return
	}
	writeAttachment(w, report.ContentTypeXLSX, report.FileName("", "xlsx"), data)
}

// HandleChart handles POST /reports/chart.png requests.
func (h *ReportsHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_report_chart"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	req, err := decodeProfile(op, w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	data, err := h.deps.RenderChart(r.Context(), req.Profile, requestLocale(r, req.Locale))
	if err != nil {
		h.log.Error(r.Context(), "chart render failed", logger.Error(err))
		writeFailure(w, WrapKind(op, ErrInternal, err))
		return
	}
	w.Header().Set("Content-Type", report.ContentTypePNG)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeAttachment(w http.ResponseWriter, contentType, name string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
