package api

import (
	"net/http"

	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/logger"
)

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps Dependencies, log logger.Logger) *RecommendHandler {
	return &RecommendHandler{deps: deps, log: log}
}

type recommendResponse struct {
	RequestID string `json:"request_id"`
	types.RecommendationResult
}

// HandlePost handles POST /recommendations requests.
func (h *RecommendHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommendations"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	req, err := decodeProfile(op, w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	res, err := h.deps.Recommend(r.Context(), req.query(requestLocale(r, req.Locale)))
	if err != nil {
		h.log.Error(r.Context(), "recommendation failed",
			logger.String("request_id", RequestIDFromContext(r.Context())),
			logger.Error(err))
		writeFailure(w, WrapKind(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, recommendResponse{
		RequestID:            RequestIDFromContext(r.Context()),
		RecommendationResult: res,
	})
}
