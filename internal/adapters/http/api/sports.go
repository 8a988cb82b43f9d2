package api

import (
	"net/http"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/logger"
)

// SportsHandler lists the loaded catalogue.
type SportsHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewSportsHandler creates a new sports handler.
func NewSportsHandler(deps Dependencies, log logger.Logger) *SportsHandler {
	return &SportsHandler{deps: deps, log: log}
}

type sportsResponse struct {
	Count  int               `json:"count"`
	Sports []types.SportInfo `json:"sports"`
}

// HandleGet handles GET /sports requests. The optional gender query parameter
// limits the listing to events the gender may enter.
func (h *SportsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_sports"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sports, err := h.deps.Sports(r.Context(), requestLocale(r, ""))
	if err != nil {
		h.log.Error(r.Context(), "list sports failed", logger.Error(err))
		writeFailure(w, WrapKind(op, ErrInternal, err))
		return
	}
	if g := r.URL.Query().Get("gender"); g != "" {
		sports = filterGender(sports, g)
	}
	writeJSON(w, http.StatusOK, sportsResponse{Count: len(sports), Sports: sports})
}

func filterGender(sports []types.SportInfo, gender string) []types.SportInfo {
	g := model.ParseGender(gender)
	out := make([]types.SportInfo, 0, len(sports))
	for _, s := range sports {
		if model.EventGender(s.Gender).Eligible(g) {
			out = append(out, s)
		}
	}
	return out
}
