package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/sportfit/internal/adapters/http/api"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/ranking"
	"github.com/okian/sportfit/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

type mockDependencies struct {
	lastQuery  types.RecommendationQuery
	lastLocale string
	recErr     error
	panicOn    bool
}

func (m *mockDependencies) Recommend(_ context.Context, q types.RecommendationQuery) (types.RecommendationResult, error) {
	if m.panicOn {
		panic("boom")
	}
	m.lastQuery = q
	if m.recErr != nil {
		return types.RecommendationResult{}, m.recErr
	}
	return types.RecommendationResult{
		Locale: q.Locale,
		Recommendations: []types.Recommendation{
			{Rank: 1, SportName: "Athletics Women's 100 metres", Compatibility: 49, Source: types.SourceScorer},
		},
	}, nil
}

func (m *mockDependencies) Summarize(_ context.Context, u model.UserProfile, locale string) (types.ProfileSummary, error) {
	m.lastLocale = locale
	return types.ProfileSummary{AgeGroup: "13-15", Complete: u.Complete()}, nil
}

func (m *mockDependencies) Sports(_ context.Context, _ string) ([]types.SportInfo, error) {
	return []types.SportInfo{
		{EventName: "Judo Men's Middleweight", Gender: "male"},
		{EventName: "Judo Women's Middleweight", Gender: "female"},
		{EventName: "Sailing Mixed Nacra 17", Gender: "mixed"},
	}, nil
}

func (m *mockDependencies) ExportXLSX(_ context.Context, q types.RecommendationQuery) ([]byte, error) {
	m.lastQuery = q
	return []byte("PK\x03\x04"), nil
}

func (m *mockDependencies) RenderChart(_ context.Context, _ model.UserProfile, _ string) ([]byte, error) {
	return []byte("\x89PNG"), nil
}

type mockStatsProvider struct {
	stats map[string]any
}

func (m *mockStatsProvider) GetStats() map[string]any { return m.stats }

func newMux(deps *mockDependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, &mockStatsProvider{stats: map[string]any{"catalogue_size": 73}}, nil).Register(context.Background(), mux)
	return mux
}

func do(h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("Then the health endpoint serves metrics", func() {
			w := do(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then the stats endpoint serves JSON", func() {
			w := do(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "catalogue_size")
		})

		Convey("Then wrong methods are not found", func() {
			So(do(mux, http.MethodGet, "/recommendations", "").Code, ShouldEqual, http.StatusNotFound)
			So(do(mux, http.MethodPost, "/sports", "").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then unknown paths are not found", func() {
			So(do(mux, http.MethodGet, "/unknown", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRecommendHandler(t *testing.T) {
	Convey("Given the recommendations endpoint", t, func() {
		deps := &mockDependencies{}
		h := api.Wrap(newMux(deps), api.MiddlewareConfig{})

		Convey("When posting a valid profile", func() {
			body := `{"profile":{"gender":"Feminino","age":15,"physical":{"sprint_time_s":3.2}},"top_k":3,"locale":"pt-BR"}`
			w := do(h, http.MethodPost, "/recommendations", body)

			Convey("Then the ranked list is returned with a request id", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var resp map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["request_id"], ShouldNotBeEmpty)
				So(resp["request_id"], ShouldEqual, w.Header().Get(api.RequestIDHeader))
				So(resp["locale"], ShouldEqual, "pt-BR")
				So(resp["recommendations"], ShouldHaveLength, 1)
			})

			Convey("Then gender is normalized before reaching the service", func() {
				So(deps.lastQuery.Profile.Gender, ShouldEqual, model.GenderFemale)
				So(deps.lastQuery.TopK, ShouldEqual, 3)
			})
		})

		Convey("When the client sends its own request id", func() {
			w := do(h, http.MethodPost, "/recommendations", `{"profile":{}}`, api.RequestIDHeader, "abc-123")
			So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "abc-123")
		})

		Convey("When the locale only comes from Accept-Language", func() {
			do(h, http.MethodPost, "/recommendations", `{"profile":{}}`, "Accept-Language", "pt-BR,pt;q=0.9")
			So(deps.lastQuery.Locale, ShouldEqual, "pt-BR,pt;q=0.9")
		})

		Convey("When the body is not JSON", func() {
			w := do(h, http.MethodPost, "/recommendations", `{`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, "bad_request")
		})

		Convey("When values are out of range", func() {
			cases := []string{
				`{"profile":{"age":130}}`,
				`{"profile":{},"top_k":11}`,
				`{"profile":{"physical":{"upper_body_reps":-1}}}`,
				`{"profile":{"psychological":{"motivation":[5,11,5]}}}`,
			}
			for _, c := range cases {
				w := do(h, http.MethodPost, "/recommendations", c)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, "validation_failed")
			}
		})

		Convey("When the profile is incomplete and completeness is required", func() {
			deps.recErr = ranking.ErrIncompleteProfile
			w := do(h, http.MethodPost, "/recommendations", `{"profile":{}}`)
			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(w.Body.String(), ShouldContainSubstring, "incomplete_profile")
		})

		Convey("When the service fails", func() {
			deps.recErr = errors.New("catalogue unavailable")
			w := do(h, http.MethodPost, "/recommendations", `{"profile":{}}`)
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("When the handler panics", func() {
			deps.panicOn = true
			w := do(h, http.MethodPost, "/recommendations", `{"profile":{}}`)
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestOtherHandlers(t *testing.T) {
	Convey("Given the remaining endpoints", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When summarizing a profile", func() {
			w := do(mux, http.MethodPost, "/profile/summary?locale=en", `{"profile":{"age":14}}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"age_group":"13-15"`)
			So(deps.lastLocale, ShouldEqual, "en")
		})

		Convey("When listing sports for a gender", func() {
			w := do(mux, http.MethodGet, "/sports?gender=female", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var resp struct {
				Count  int               `json:"count"`
				Sports []types.SportInfo `json:"sports"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Count, ShouldEqual, 2)
			for _, s := range resp.Sports {
				So(s.Gender, ShouldNotEqual, "male")
			}
		})

		Convey("When exporting a spreadsheet", func() {
			w := do(mux, http.MethodPost, "/reports/xlsx", `{"profile":{},"top_k":10}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Disposition"), ShouldStartWith, `attachment; filename="sportfit-report-`)
			So(deps.lastQuery.TopK, ShouldEqual, 10)
		})

		Convey("When rendering a chart", func() {
			w := do(mux, http.MethodPost, "/reports/chart.png", `{"profile":{}}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "image/png")
		})
	})
}

func TestWrap_RateLimit(t *testing.T) {
	Convey("Given a rate limit of two requests per minute", t, func() {
		h := api.Wrap(newMux(&mockDependencies{}), api.MiddlewareConfig{RateLimitPerMin: 2})

		Convey("Then the third request from one client is rejected", func() {
			So(do(h, http.MethodGet, "/stats", "").Code, ShouldEqual, http.StatusOK)
			So(do(h, http.MethodGet, "/stats", "").Code, ShouldEqual, http.StatusOK)
			So(do(h, http.MethodGet, "/stats", "").Code, ShouldEqual, http.StatusTooManyRequests)
		})
	})
}

func TestWrap_CORS(t *testing.T) {
	Convey("Given a restricted origin list", t, func() {
		h := api.Wrap(newMux(&mockDependencies{}), api.MiddlewareConfig{AllowedOrigins: []string{"https://app.example"}})

		Convey("Then an allowed origin is echoed", func() {
			w := do(h, http.MethodGet, "/stats", "", "Origin", "https://app.example")
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://app.example")
		})

		Convey("Then other origins get no CORS header", func() {
			w := do(h, http.MethodGet, "/stats", "", "Origin", "https://evil.example")
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
		})
	})
}

func TestOpError(t *testing.T) {
	Convey("Given an operation error", t, func() {
		cause := errors.New("decode")
		err := api.WrapKind("api.op", api.ErrBadRequest, cause)
		So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
		So(errors.Is(err, cause), ShouldBeTrue)
		So(err.Error(), ShouldEqual, "api.op: bad request: decode")

		var op *api.OpError
		So(errors.As(api.NewKind("api.x", api.ErrInternal), &op), ShouldBeTrue)
		So(op.Op, ShouldEqual, "api.x")
	})
}
