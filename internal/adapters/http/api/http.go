// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/okian/sportfit/internal/adapters/report"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/ranking"
	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/logger"
)

const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Recommend(ctx context.Context, q types.RecommendationQuery) (types.RecommendationResult, error)
	Summarize(ctx context.Context, u model.UserProfile, locale string) (types.ProfileSummary, error)
	Sports(ctx context.Context, locale string) ([]types.SportInfo, error)
	ExportXLSX(ctx context.Context, q types.RecommendationQuery) ([]byte, error)
	RenderChart(ctx context.Context, u model.UserProfile, locale string) ([]byte, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recommendHandler *RecommendHandler
	summaryHandler   *SummaryHandler
	sportsHandler    *SportsHandler
	reportsHandler   *ReportsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		recommendHandler: NewRecommendHandler(deps, log),
		summaryHandler:   NewSummaryHandler(deps, log),
		sportsHandler:    NewSportsHandler(deps, log),
		reportsHandler:   NewReportsHandler(deps, log),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendHandler.HandlePost, "recommendations"))
	mux.HandleFunc("/profile/summary", MetricsMiddleware(s.summaryHandler.HandlePost, "profile_summary"))
	mux.HandleFunc("/sports", MetricsMiddleware(s.sportsHandler.HandleGet, "sports"))
	mux.HandleFunc("/reports/xlsx", MetricsMiddleware(s.reportsHandler.HandleXLSX, "reports_xlsx"))
	mux.HandleFunc("/reports/chart.png", MetricsMiddleware(s.reportsHandler.HandleChart, "reports_chart"))
}

// profileRequest mirrors the OpenAPI schema shared by the profile endpoints.
type profileRequest struct {
	Profile model.UserProfile `json:"profile"`
	TopK    int               `json:"top_k" validate:"gte=0,lte=10"`
	Locale  string            `json:"locale" validate:"omitempty,max=35"`
	Refine  bool              `json:"refine"`
}

func (p profileRequest) query(locale string) types.RecommendationQuery {
	return types.RecommendationQuery{Profile: p.Profile, TopK: p.TopK, Locale: locale, Refine: p.Refine}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// decodeProfile reads and validates a profileRequest. Free-form gender input
// is folded to the canonical values before validation.
func decodeProfile(op string, w http.ResponseWriter, r *http.Request) (profileRequest, error) {
	var req profileRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, WrapKind(op, ErrBadRequest, err)
	}
	if req.Profile.Gender != "" {
		req.Profile.Gender = model.ParseGender(string(req.Profile.Gender))
	}
	if err := getValidator().Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, strings.ToLower(fe.Namespace())+":"+fe.Tag())
			}
			return req, WrapKind(op, ErrValidation, errors.New(strings.Join(fields, ", ")))
		}
		return req, WrapKind(op, ErrValidation, err)
	}
	return req, nil
}

// requestLocale prefers the body locale, then Accept-Language.
func requestLocale(r *http.Request, body string) string {
	if body != "" {
		return body
	}
	if q := r.URL.Query().Get("locale"); q != "" {
		return q
	}
	return r.Header.Get("Accept-Language")
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps an error kind to its HTTP status and code.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, ErrUnprocessable), errors.Is(err, ranking.ErrIncompleteProfile),
		errors.Is(err, report.ErrNothingToExport):
		writeError(w, http.StatusUnprocessableEntity, "incomplete_profile", err)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "timeout", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
