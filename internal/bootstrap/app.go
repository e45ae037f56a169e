package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"tone-backend/internal/analysis"
	"tone-backend/internal/classify"
	"tone-backend/internal/classify/huggingface"
	"tone-backend/internal/emotion"
	"tone-backend/internal/llm"
	openai "tone-backend/internal/llm/openai"
	"tone-backend/internal/phrasebook"
	"tone-backend/internal/segment"
	"tone-backend/internal/sentiment"
	"tone-backend/internal/services/health"
	"tone-backend/internal/shared/config"
	"tone-backend/internal/shared/server"
	"tone-backend/internal/shared/storage/db"
	"tone-backend/internal/shared/telemetry"
	"tone-backend/internal/suggestions"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Phrasebook         phrasebook.Tables
	AnalysisService    *analysis.Service
	SuggestionsService *suggestions.Service
	Health             *health.Service
}

// Build prepares every dependency and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(ctx, app); err != nil {
		if sqlDB != nil {
			sqlDB.Close()
		}
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		Health:             app.Health,
		AnalysisHandler:    analysis.NewHandler(app.AnalysisService, cfg.MaxTextBytes),
		SuggestionsHandler: suggestions.NewHandler(app.SuggestionsService, cfg.MaxTextBytes),
	})
	return app, nil
}

// Close releases the database handle if one was opened.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.db_skipped", map[string]any{"reason": "DATABASE_URL empty"})
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			sqlDB = nil
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db_unavailable", map[string]any{"error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(ctx context.Context, app *App) error {
	cfg := app.Config

	seg, err := segment.New()
	if err != nil {
		return fmt.Errorf("sentence tokenizer: %w", err)
	}

	sentimentClassifier, emotionClassifier, err := buildClassifiers(cfg)
	if err != nil {
		return err
	}

	tables, source, err := LoadPhrasebook(ctx, cfg, app.DB)
	if err != nil {
		return err
	}

	gen := llm.Generator(llm.PlaceholderGenerator{})
	generatorMode := "pattern"
	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		client, err := openai.NewClient(openai.Options{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			return err
		}
		gen = client
		generatorMode = "openai:" + cfg.LLMModel
	} else {
		telemetry.Info("bootstrap.generator_skipped", map[string]any{"reason": "OPENAI_API_KEY empty"})
	}
	primary := suggestions.ServiceRewriter{Generator: gen, Config: GenerationConfig(cfg)}

	analysisSvc := analysis.NewService(
		seg,
		sentiment.NewScorer(sentimentClassifier),
		emotion.NewScorer(emotionClassifier, emotion.DefaultLexicon()),
		cfg.ScoreCacheSize,
	)

	app.Phrasebook = tables
	app.AnalysisService = analysisSvc
	app.SuggestionsService = suggestions.NewService(analysisSvc, tables, primary, cfg.RewriteIntensity)
	app.Health = health.NewService(app.DB,
		health.Component{Name: "sentiment", Mode: classifierMode(sentimentClassifier)},
		health.Component{Name: "emotion", Mode: classifierMode(emotionClassifier)},
		health.Component{Name: "generator", Mode: generatorMode},
		health.Component{Name: "phrasebook", Mode: source},
	)

	if app.AnalysisService == nil || app.SuggestionsService == nil {
		return errors.New("failed to initialize services")
	}
	return nil
}

// buildClassifiers returns the hosted classifiers, or local stand-ins in
// dev-like environments. A nil emotion classifier selects lexicon-only scoring.
func buildClassifiers(cfg config.Config) (classify.Classifier, classify.Classifier, error) {
	if strings.TrimSpace(cfg.HFAPIToken) == "" {
		if !cfg.IsDevLike() {
			return nil, nil, fmt.Errorf("HF_API_TOKEN is required in %s", cfg.Env)
		}
		telemetry.Warn("bootstrap.classifiers_local", map[string]any{"reason": "HF_API_TOKEN empty"})
		return classify.LexiconSentiment{}, nil, nil
	}
	sent, err := huggingface.NewClient(cfg.HFBaseURL, cfg.HFAPIToken, cfg.SentimentModel, cfg.ClassifierTimeout)
	if err != nil {
		return nil, nil, err
	}
	emo, err := huggingface.NewClient(cfg.HFBaseURL, cfg.HFAPIToken, cfg.EmotionModel, cfg.ClassifierTimeout)
	if err != nil {
		return nil, nil, err
	}
	return sent, emo, nil
}

func classifierMode(c classify.Classifier) string {
	switch v := c.(type) {
	case *huggingface.Client:
		return "huggingface:" + v.Model()
	case nil, classify.LexiconSentiment:
		return "lexicon"
	default:
		return "custom"
	}
}

// GenerationConfig maps configuration onto completion parameters.
func GenerationConfig(cfg config.Config) llm.GenerationConfig {
	return llm.GenerationConfig{
		Model:            cfg.LLMModel,
		MaxTokens:        cfg.LLMMaxTokens,
		Temperature:      cfg.LLMTemperature,
		TopP:             cfg.LLMTopP,
		FrequencyPenalty: cfg.LLMFrequencyPenalty,
		PresencePenalty:  cfg.LLMPresencePenalty,
	}
}

// LoadPhrasebook layers the built-in tables, an optional YAML file and any
// rows stored in the database, later layers overriding earlier ones per emotion.
// The returned source names the last layer that contributed.
func LoadPhrasebook(ctx context.Context, cfg config.Config, sqlDB *sql.DB) (phrasebook.Tables, string, error) {
	tables := phrasebook.Builtin()
	source := "builtin"

	if path := strings.TrimSpace(cfg.PhrasebookPath); path != "" {
		fileTables, err := phrasebook.LoadFile(path)
		if err != nil {
			return phrasebook.Tables{}, "", fmt.Errorf("load phrasebook %s: %w", path, err)
		}
		tables = tables.Merge(fileTables)
		source = "file"
	}

	if sqlDB != nil {
		repo := &phrasebook.PGRepo{DB: sqlDB}
		stored, err := repo.Load(ctx)
		if err != nil {
			if !cfg.IsDevLike() {
				return phrasebook.Tables{}, "", fmt.Errorf("load phrasebook from database: %w", err)
			}
			telemetry.Warn("bootstrap.phrasebook_db_failed", map[string]any{"error": err.Error()})
		} else if !stored.Empty() {
			tables = tables.Merge(stored)
			source = "database"
		}
	}

	telemetry.Info("bootstrap.phrasebook", map[string]any{"source": source})
	return tables, source, nil
}
