package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tone-backend/internal/analysis"
	"tone-backend/internal/classify"
	"tone-backend/internal/emotion"
	"tone-backend/internal/phrasebook"
	"tone-backend/internal/segment"
	"tone-backend/internal/sentiment"
	"tone-backend/internal/services/health"
	"tone-backend/internal/shared/config"
	"tone-backend/internal/suggestions"
)

func testDeps(t *testing.T, cfg config.Config) RouterDeps {
	t.Helper()
	seg, err := segment.New()
	if err != nil {
		t.Fatalf("segmenter: %v", err)
	}
	analysisSvc := analysis.NewService(seg, sentiment.NewScorer(classify.LexiconSentiment{}), emotion.NewScorer(nil, emotion.DefaultLexicon()), 16)
	suggestSvc := suggestions.NewService(analysisSvc, phrasebook.Builtin(), nil, "moderate")
	return RouterDeps{
		Config:             cfg,
		Health:             health.NewService(nil, health.Component{Name: "sentiment", Mode: "lexicon"}),
		AnalysisHandler:    analysis.NewHandler(analysisSvc, 4096),
		SuggestionsHandler: suggestions.NewHandler(suggestSvc, 4096),
	}
}

func postJSON(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:1234"
	return req
}

func TestRouterServesEndpoints(t *testing.T) {
	r := NewRouter(testDeps(t, config.Config{CORSAllowOrigin: []string{"http://localhost:5173"}}))

	tests := []struct {
		name string
		req  *http.Request
		want int
	}{
		{name: "health", req: httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), want: http.StatusOK},
		{name: "metrics", req: httptest.NewRequest(http.MethodGet, "/metrics", nil), want: http.StatusOK},
		{name: "emotions", req: httptest.NewRequest(http.MethodGet, "/api/v1/emotions", nil), want: http.StatusOK},
		{name: "analyze", req: postJSON(t, "/api/v1/analyze", map[string]string{"text": "I am happy. I am sad."}), want: http.StatusOK},
		{name: "suggestions", req: postJSON(t, "/api/v1/suggestions", map[string]string{"text": "I am sad.", "target_emotion": "joy"}), want: http.StatusOK},
		{name: "unknown", req: httptest.NewRequest(http.MethodGet, "/api/v1/missing", nil), want: http.StatusNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, tt.req)
			if resp.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, resp.Code, resp.Body.String())
			}
			if resp.Header().Get("X-Request-ID") == "" {
				t.Fatalf("expected request id header")
			}
		})
	}
}

func TestRouterRateLimitsAnalyzeOnly(t *testing.T) {
	r := NewRouter(testDeps(t, config.Config{RateLimitRPS: 0.001, RateLimitBurst: 1}))

	first := httptest.NewRecorder()
	r.ServeHTTP(first, postJSON(t, "/api/v1/analyze", map[string]string{"text": "Fine."}))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first analyze to pass, got %d", first.Code)
	}
	second := httptest.NewRecorder()
	r.ServeHTTP(second, postJSON(t, "/api/v1/suggestions", map[string]string{"text": "Fine.", "target_emotion": "joy"}))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	healthResp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(healthResp, req)
	if healthResp.Code != http.StatusOK {
		t.Fatalf("expected health to bypass analyze bucket, got %d", healthResp.Code)
	}
}

func TestRateGroupFor(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodPost, "/api/v1/analyze", rateGroupAnalyze},
		{http.MethodPost, "/api/v1/documents/analyze", rateGroupAnalyze},
		{http.MethodPost, "/api/v1/suggestions", rateGroupAnalyze},
		{http.MethodGet, "/api/v1/emotions", rateGroupRead},
	}
	for _, tt := range tests {
		c, _ := ginTestContext(tt.method, tt.path)
		if got := rateGroupFor(c); got != tt.want {
			t.Fatalf("%s %s: expected %s, got %s", tt.method, tt.path, tt.want, got)
		}
	}
}

func TestAddr(t *testing.T) {
	for in, want := range map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"} {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}

func ginTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, resp
}
