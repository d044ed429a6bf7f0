package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resumedeck-backend/internal/ats"
	googleauth "resumedeck-backend/internal/auth"
	"resumedeck-backend/internal/letters"
	"resumedeck-backend/internal/links"
	"resumedeck-backend/internal/llm"
	openai "resumedeck-backend/internal/llm/openai"
	"resumedeck-backend/internal/resumes"
	"resumedeck-backend/internal/shared/cache"
	"resumedeck-backend/internal/shared/config"
	"resumedeck-backend/internal/shared/server"
	"resumedeck-backend/internal/shared/storage/db"
	"resumedeck-backend/internal/users"
	"resumedeck-backend/internal/versions"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Cache  cache.Cache

	UsersRepo    users.Repo
	ResumesRepo  resumes.Repo
	VersionsRepo versions.Repo
	LettersRepo  letters.Repo
	LinksRepo    links.Repo

	UsersService    *users.Service
	ResumesService  *resumes.Service
	VersionsService *versions.Service
	LettersService  *letters.Service
	LinksService    *links.Service
	ViewCounter     *links.ViewCounter

	UsersHandler    *users.Handler
	ResumesHandler  *resumes.Handler
	VersionsHandler *versions.Handler
	LettersHandler  *letters.Handler
	LinksHandler    *links.Handler
	PublicHandler   *links.PublicHandler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Cache:  buildCache(cfg),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		GoogleAuth:     app.GoogleAuth,
		UserHandler:    app.UsersHandler,
		ResumeHandler:  app.ResumesHandler,
		VersionHandler: app.VersionsHandler,
		LetterHandler:  app.LettersHandler,
		LinkHandler:    app.LinksHandler,
		PublicHandler:  app.PublicHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildCache(cfg config.Config) cache.Cache {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return cache.Noop{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return cache.NewRedisCache(rdb)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var (
		userRepo    users.Repo
		resumeRepo  resumes.Repo
		versionRepo versions.Repo
		letterRepo  letters.Repo
		linkRepo    links.Repo
	)

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		versionRepo = &versions.PGRepo{DB: app.DB}
		letterRepo = &letters.PGRepo{DB: app.DB}
		linkRepo = &links.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		versionRepo = versions.NewMemoryRepo()
		letterRepo = letters.NewMemoryRepo()
		linkRepo = links.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" && os.Getenv("OPENAI_API_KEY") != "" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	userSvc := users.NewService(userRepo)
	resumeSvc := &resumes.Service{Repo: resumeRepo, LLM: llmClient}
	atsSvc := &ats.Service{LLM: llmClient}
	versionSvc := &versions.Service{
		Repo:    versionRepo,
		Resumes: versionResumeAdapter{repo: resumeRepo},
		LLM:     llmClient,
		ATS:     atsSvc,
	}
	letterSvc := &letters.Service{
		Repo:    letterRepo,
		Resumes: letterResumeAdapter{repo: resumeRepo},
		LLM:     llmClient,
	}

	viewCounter := links.NewViewCounter(linkRepo)
	linkSvc := &links.Service{
		Repo:     linkRepo,
		Resumes:  linkResumeAdapter{repo: resumeRepo},
		Owners:   ownerAdapter{repo: userRepo},
		Versions: versionAdapter{repo: versionRepo},
		Decks:    deckAdapter{repo: letterRepo},
		Views:    viewCounter,
		Cache:    app.Cache,
	}

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.UsersRepo = userRepo
	app.ResumesRepo = resumeRepo
	app.VersionsRepo = versionRepo
	app.LettersRepo = letterRepo
	app.LinksRepo = linkRepo
	app.UsersService = userSvc
	app.ResumesService = resumeSvc
	app.VersionsService = versionSvc
	app.LettersService = letterSvc
	app.LinksService = linkSvc
	app.ViewCounter = viewCounter
	app.UsersHandler = users.NewHandler(userSvc)
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.VersionsHandler = versions.NewHandler(versionSvc)
	app.LettersHandler = letters.NewHandler(letterSvc)
	app.LinksHandler = links.NewHandler(linkSvc)
	app.PublicHandler = links.NewPublicHandler(linkSvc, app.Config.UpgradeURL, app.Config.SignupURL)
	app.GoogleAuth = googleAuthSvc

	return nil
}

// The adapters below expose the resumes repository to the packages that only
// need a narrow slice of a resume, translating sentinel errors as they go.
// Each consuming package declares its own record type, so each gets its own
// adapter.

type versionResumeAdapter struct {
	repo resumes.Repo
}

func (a versionResumeAdapter) GetResumeByID(ctx context.Context, ownerID, resumeID string) (versions.ResumeRecord, error) {
	resume, err := a.repo.GetByID(ctx, ownerID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return versions.ResumeRecord{}, versions.ErrNotFound
		}
		return versions.ResumeRecord{}, err
	}
	return versions.ResumeRecord{
		ID:              resume.ID,
		OwnerID:         resume.OwnerID,
		AIGeneratedJSON: resume.AIGeneratedJSON,
		ImportedJSON:    resume.OriginalImportedJSON,
	}, nil
}

type letterResumeAdapter struct {
	repo resumes.Repo
}

func (a letterResumeAdapter) GetResumeByID(ctx context.Context, ownerID, resumeID string) (letters.ResumeRecord, error) {
	resume, err := a.repo.GetByID(ctx, ownerID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return letters.ResumeRecord{}, letters.ErrNotFound
		}
		return letters.ResumeRecord{}, err
	}
	return letters.ResumeRecord{
		ID:              resume.ID,
		OwnerID:         resume.OwnerID,
		AIGeneratedJSON: resume.AIGeneratedJSON,
		ImportedJSON:    resume.OriginalImportedJSON,
	}, nil
}

type linkResumeAdapter struct {
	repo resumes.Repo
}

func (a linkResumeAdapter) GetResume(ctx context.Context, resumeID string) (links.ResumeRecord, error) {
	resume, err := a.repo.GetAny(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return links.ResumeRecord{}, links.ErrNotFound
		}
		return links.ResumeRecord{}, err
	}
	return toLinkResume(resume), nil
}

func (a linkResumeAdapter) GetOwnedResume(ctx context.Context, ownerID, resumeID string) (links.ResumeRecord, error) {
	resume, err := a.repo.GetByID(ctx, ownerID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return links.ResumeRecord{}, links.ErrNotFound
		}
		return links.ResumeRecord{}, err
	}
	return toLinkResume(resume), nil
}

func toLinkResume(resume resumes.Resume) links.ResumeRecord {
	return links.ResumeRecord{
		ID:                   resume.ID,
		OwnerID:              resume.OwnerID,
		Title:                resume.Title,
		AIGeneratedJSON:      resume.AIGeneratedJSON,
		OriginalImportedJSON: resume.OriginalImportedJSON,
	}
}

type ownerAdapter struct {
	repo users.Repo
}

func (a ownerAdapter) GetOwner(ctx context.Context, userID string) (links.OwnerProfile, error) {
	user, err := a.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return links.OwnerProfile{}, links.ErrNotFound
		}
		return links.OwnerProfile{}, err
	}
	return links.OwnerProfile{
		ID:                 user.ID,
		SubscriptionStatus: user.SubscriptionStatus,
		TrialEndDate:       user.TrialEndDate,
	}, nil
}

type versionAdapter struct {
	repo versions.Repo
}

func (a versionAdapter) GetVersion(ctx context.Context, versionID string) (links.VersionRecord, error) {
	version, err := a.repo.GetByID(ctx, versionID)
	if err != nil {
		if errors.Is(err, versions.ErrNotFound) {
			return links.VersionRecord{}, links.ErrNotFound
		}
		return links.VersionRecord{}, err
	}
	return links.VersionRecord{
		ID:            version.ID,
		ResumeID:      version.ResumeID,
		OptimizedJSON: version.OptimizedJSON,
	}, nil
}

// deckAdapter surfaces the latest pitch deck for a resume. A resume without
// decks is a normal state, not an error.
type deckAdapter struct {
	repo letters.Repo
}

func (a deckAdapter) LatestSlides(ctx context.Context, resumeID string) ([]links.Slide, error) {
	deck, err := a.repo.LatestByResume(ctx, resumeID)
	if err != nil {
		if errors.Is(err, letters.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	slides := deck.Slides()
	if slides == nil {
		return nil, nil
	}
	out := make([]links.Slide, 0, len(slides))
	for _, s := range slides {
		out = append(out, links.Slide{Title: s.Title, Subtitle: s.Subtitle, Content: s.Content})
	}
	return out, nil
}
