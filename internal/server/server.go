// Package server wires the matching engines, chat webhook and account
// endpoints into an HTTP service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arvind/jobseeker-engine/internal/catalog"
	"github.com/arvind/jobseeker-engine/internal/chat"
	"github.com/arvind/jobseeker-engine/internal/config"
	"github.com/arvind/jobseeker-engine/internal/db"
	"github.com/arvind/jobseeker-engine/internal/gap"
	"github.com/arvind/jobseeker-engine/internal/recommend"
	"github.com/arvind/jobseeker-engine/internal/resume"
	"github.com/arvind/jobseeker-engine/internal/server/middleware"
	"github.com/arvind/jobseeker-engine/internal/server/ratelimit"
	"github.com/arvind/jobseeker-engine/internal/skills"
	"github.com/arvind/jobseeker-engine/internal/taxonomy"
)

const shutdownTimeout = 10 * time.Second

// Server hosts the engine and account endpoints.
type Server struct {
	httpServer *http.Server
	log        *zap.Logger

	engineHandler *EngineHandler
	authHandler   *AuthHandler
	jwtService    *JWTService
	database      *db.DB
	rateLimiter   *ratelimit.Limiter
}

// New loads the taxonomy and job catalog, connects to the database when
// one is configured, and builds the fully-routed server.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		tax      *taxonomy.Taxonomy
		database *db.DB
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tax, err = taxonomy.Load(cfg.TaxonomyPath)
		return err
	})
	g.Go(func() error {
		// Verify the catalog parses at startup rather than on first request.
		jobs, skipped, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
		log.Info("job catalog loaded", zap.Int("jobs", len(jobs)), zap.Int("skipped_rows", skipped))
		return nil
	})
	if cfg.DatabaseURL != "" {
		g.Go(func() error {
			var err error
			database, err = db.Connect(gctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("database connect: %w", err)
			}
			return database.EnsureSchema(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	extractor := skills.NewExtractor(tax)
	recommender := recommend.New(cfg.CatalogPath, extractor, log)
	analyzer := gap.New(tax, extractor)
	scorer := resume.NewScorer(tax, extractor)
	responder := chat.NewResponder(recommender, analyzer, scorer, log)

	s := &Server{
		log:           log,
		database:      database,
		engineHandler: NewEngineHandler(recommender, analyzer, scorer, responder, log),
		rateLimiter:   ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	if database != nil {
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return nil, err
		}
		pwCfg, err := config.NewPasswordConfig()
		if err != nil {
			return nil, err
		}
		s.jwtService = NewJWTService(jwtCfg)
		s.authHandler = NewAuthHandler(NewUserService(database, pwCfg), s.jwtService)
	} else {
		log.Warn("no DATABASE_URL configured, auth endpoints disabled")
	}

	s.httpServer = &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /recommend", s.engineHandler.Recommend)
	mux.HandleFunc("POST /recommend/resume", s.engineHandler.RecommendFromResume)
	mux.HandleFunc("POST /skill-gap", s.engineHandler.SkillGap)
	mux.HandleFunc("POST /skill-gap/resume", s.engineHandler.SkillGapFromResume)
	mux.HandleFunc("POST /resume-tips", s.engineHandler.ResumeTips)
	mux.HandleFunc("POST /chatbot/webhook", s.engineHandler.ChatWebhook)

	if s.authHandler != nil {
		requireAuth := middleware.Auth(s.jwtService.AsTokenValidator())
		mux.HandleFunc("POST /auth/register", s.authHandler.Register)
		mux.HandleFunc("POST /auth/login", s.authHandler.Login)
		mux.Handle("PUT /auth/password", requireAuth(http.HandlerFunc(s.authHandler.UpdatePassword)))
	} else {
		mux.HandleFunc("POST /auth/register", s.handleAuthUnavailable)
		mux.HandleFunc("POST /auth/login", s.handleAuthUnavailable)
		mux.HandleFunc("PUT /auth/password", s.handleAuthUnavailable)
	}

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "jobseeker-engine",
		"status":  "running",
		"endpoints": []string{
			"POST /recommend",
			"POST /recommend/resume",
			"POST /skill-gap",
			"POST /skill-gap/resume",
			"POST /resume-tips",
			"POST /chatbot/webhook",
			"GET /health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "healthy"}
	if s.database != nil {
		status["database"] = "connected"
	} else {
		status["database"] = "disabled"
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleAuthUnavailable(w http.ResponseWriter, r *http.Request) {
	err := &ErrAuthUnavailable{}
	http.Error(w, err.Error(), HTTPStatus(err))
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientAddr(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		}
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
			}
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientAddr prefers the first X-Forwarded-For hop so limits apply to
// the originating client behind a proxy.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	return r.RemoteAddr
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until the context is cancelled or an interrupt
// arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.rateLimiter.Stop()
	if s.database != nil {
		s.database.Close()
	}
	return err
}
