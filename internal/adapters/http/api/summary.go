package api

import (
	"net/http"

	"github.com/okian/sportfit/pkg/logger"
)

// SummaryHandler handles profile summary requests.
type SummaryHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps Dependencies, log logger.Logger) *SummaryHandler {
	return &SummaryHandler{deps: deps, log: log}
}

// HandlePost handles POST /profile/summary requests.
func (h *SummaryHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_profile_summary"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	req, err := decodeProfile(op, w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	summary, err := h.deps.Summarize(r.Context(), req.Profile, requestLocale(r, req.Locale))
	if err != nil {
		h.log.Error(r.Context(), "summary failed", logger.Error(err))
		writeFailure(w, WrapKind(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
