package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tone-backend/internal/llm"
	"tone-backend/internal/shared/config"
	"tone-backend/internal/suggestions"
)

func devConfig() config.Config {
	return config.Config{
		Port:              "8080",
		Env:               "dev",
		HFBaseURL:         "https://router.huggingface.co/hf-inference",
		SentimentModel:    "distilbert-base-uncased-finetuned-sst-2-english",
		EmotionModel:      "j-hartmann/emotion-english-distilroberta-base",
		ClassifierTimeout: time.Second,
		LLMModel:          "gpt-3.5-turbo-instruct",
		LLMMaxTokens:      150,
		LLMTemperature:    0.7,
		LLMTopP:           1,
		RewriteIntensity:  "moderate",
		MaxTextBytes:      4096,
		ScoreCacheSize:    16,
	}
}

func TestBuildDevUsesLocalStandIns(t *testing.T) {
	app, err := Build(context.Background(), devConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()
	if app.DB != nil {
		t.Fatalf("expected no database without DATABASE_URL")
	}

	status := app.Health.Status(context.Background())
	modes := map[string]string{}
	for _, c := range status.Components {
		modes[c.Name] = c.Mode
	}
	if modes["sentiment"] != "lexicon" || modes["emotion"] != "lexicon" {
		t.Fatalf("expected lexicon classifiers, got %+v", modes)
	}
	if modes["generator"] != "pattern" || modes["phrasebook"] != "builtin" {
		t.Fatalf("unexpected modes %+v", modes)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"text":"What a happy day."}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestBuildWithHostedServices(t *testing.T) {
	cfg := devConfig()
	cfg.HFAPIToken = "hf_test"
	cfg.OpenAIAPIKey = "sk-test"
	app, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	modes := map[string]string{}
	for _, c := range app.Health.Status(context.Background()).Components {
		modes[c.Name] = c.Mode
	}
	if modes["sentiment"] != "huggingface:"+cfg.SentimentModel || modes["emotion"] != "huggingface:"+cfg.EmotionModel {
		t.Fatalf("unexpected classifier modes %+v", modes)
	}
	if modes["generator"] != "openai:gpt-3.5-turbo-instruct" {
		t.Fatalf("unexpected modes %+v", modes)
	}
}

func TestBuildWithoutGeneratorFallsBackToPatterns(t *testing.T) {
	app, err := Build(context.Background(), devConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	primary, ok := app.SuggestionsService.Primary.(suggestions.ServiceRewriter)
	if !ok {
		t.Fatalf("expected service rewriter, got %T", app.SuggestionsService.Primary)
	}
	if _, ok := primary.Generator.(llm.PlaceholderGenerator); !ok {
		t.Fatalf("expected placeholder generator, got %T", primary.Generator)
	}

	res, err := app.SuggestionsService.Suggest(context.Background(), suggestions.Request{Text: "He ran.", TargetEmotion: "joy"})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(res.Specific) != 1 || res.Specific[0].Method != suggestions.MethodPattern {
		t.Fatalf("expected pattern rewrite, got %+v", res.Specific)
	}
}

func TestBuildProductionRequiresClassifierToken(t *testing.T) {
	cfg := devConfig()
	cfg.Env = "production"
	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without HF_API_TOKEN in production")
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := devConfig()
	cfg.LLMMaxTokens = 0
	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadPhrasebookLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrasebook.yaml")
	if err := os.WriteFile(path, []byte("endings:\n  joy: \", file ending.\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := devConfig()
	cfg.PhrasebookPath = path

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	mock.ExpectQuery("FROM phrasebook_replacements").
		WillReturnRows(sqlmock.NewRows([]string{"emotion", "phrase", "replacement"}).AddRow("joy", "rain", "sunshine"))
	mock.ExpectQuery("FROM phrasebook_endings").
		WillReturnRows(sqlmock.NewRows([]string{"emotion", "ending"}))
	mock.ExpectQuery("FROM phrasebook_advice").
		WillReturnRows(sqlmock.NewRows([]string{"emotion", "advice"}))

	tables, source, err := LoadPhrasebook(context.Background(), cfg, db)
	if err != nil {
		t.Fatalf("LoadPhrasebook: %v", err)
	}
	if source != "database" {
		t.Fatalf("expected database source, got %q", source)
	}
	if tables.EndingFor("joy") != ", file ending." {
		t.Fatalf("expected file ending, got %q", tables.EndingFor("joy"))
	}
	reps := tables.ReplacementsFor("joy")
	if len(reps) != 1 || reps[0].With != "sunshine" {
		t.Fatalf("expected database replacements, got %+v", reps)
	}
	if len(tables.GeneralFor("sadness")) == 0 {
		t.Fatalf("builtin advice should survive layering")
	}
}

func TestLoadPhrasebookDatabaseFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	mock.ExpectQuery("FROM phrasebook_replacements").WillReturnError(errors.New("relation missing"))

	_, source, err := LoadPhrasebook(context.Background(), devConfig(), db)
	if err != nil || source != "builtin" {
		t.Fatalf("dev should fall back to builtin, got %q %v", source, err)
	}

	cfg := devConfig()
	cfg.Env = "production"
	mock.ExpectQuery("FROM phrasebook_replacements").WillReturnError(errors.New("relation missing"))
	if _, _, err := LoadPhrasebook(context.Background(), cfg, db); err == nil {
		t.Fatalf("production should surface database errors")
	}
}

func TestGenerationConfig(t *testing.T) {
	cfg := devConfig()
	cfg.LLMPresencePenalty = 0.5
	gc := GenerationConfig(cfg)
	if gc.Model != cfg.LLMModel || gc.MaxTokens != 150 || gc.PresencePenalty != 0.5 {
		t.Fatalf("unexpected generation config %+v", gc)
	}
}
