package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/ecochat/internal/ai"
	"github.com/2beens/ecochat/internal/auth"
	"github.com/2beens/ecochat/internal/chat"
	"github.com/2beens/ecochat/internal/config"
	"github.com/2beens/ecochat/internal/db"
	"github.com/2beens/ecochat/internal/middleware"
	"github.com/2beens/ecochat/internal/telemetry/metrics"
	"github.com/2beens/ecochat/internal/telemetry/tracing"
	"github.com/2beens/ecochat/internal/workouts"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	config      *config.Config
	versionInfo string

	httpServer        *http.Server
	metricsHttpServer *http.Server

	dbPool         *pgxpool.Pool
	redisClient    *redis.Client
	sessionChecker *auth.SessionChecker
	authService    *auth.Service

	geminiClient *ai.GeminiClient
	chatService  *chat.Service
	summarizer   *chat.Summarizer
	workoutsRepo *workouts.Repo

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config        *config.Config
	GeminiAPIKey  string
	RedisPassword string
	VersionInfo   string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: cfg.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("ping db pool: %s", err)
	} else {
		log.Debugln("db pool ping: ok")
	}

	pgxPoolCollector := pgxpoolprometheus.NewCollector(dbPool, map[string]string{"db_name": cfg.PostgresDBName})
	promRegistry := metrics.SetupPrometheus(pgxPoolCollector)
	metricsManager := metrics.NewManager(
		cfg.PrometheusMetricsNamespace,
		cfg.PrometheusMetricsSubsystem,
		promRegistry,
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	if statusCmd := redisClient.Ping(ctx); statusCmd.Err() != nil {
		log.Errorf("--> failed to ping redis: %s", statusCmd.Err())
	} else {
		log.Debugln("redis ping: ok")
	}

	authService := auth.NewService(auth.DefaultTTL, redisClient)
	go func() {
		ticker := time.NewTicker(8 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	otelShutdown, err := tracing.HoneycombSetup(cfg.HoneycombTracingEnabled, "ecochat-backend")
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Minute,
	}
	geminiClient, err := ai.NewGeminiClient(ctx, params.GeminiAPIKey, cfg.GeminiModel, tracedHttpClient)
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}

	chatRepo := chat.NewRepo(dbPool)
	workoutsRepo := workouts.NewRepo(dbPool)
	summarizer := chat.NewSummarizer(chatRepo, geminiClient, metricsManager)
	chatService := chat.NewService(chatRepo, geminiClient, workoutsRepo, summarizer, metricsManager)

	return &Server{
		config:         cfg,
		versionInfo:    params.VersionInfo,
		dbPool:         dbPool,
		redisClient:    redisClient,
		sessionChecker: auth.NewSessionChecker(redisClient),
		authService:    authService,
		geminiClient:   geminiClient,
		chatService:    chatService,
		summarizer:     summarizer,
		workoutsRepo:   workoutsRepo,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("ecochat-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	chatHandler := chat.NewHandler(s.chatService)
	chatHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.ChatMessagesPerMinLimit)

	workoutsHandler := workouts.NewHandler(s.workoutsRepo)
	workoutsHandler.SetupRoutes(r)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("I am OK, thanks ;)"))
	}).Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(s.versionInfo))
	}).Name("version")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Tracef("unknown path: %s", r.URL.Path)
		http.Error(w, "unknown path", http.StatusNotFound)
	})

	authMiddlewareHandler := middleware.NewAuthMiddlewareHandler(s.sessionChecker)

	r.Use(
		middleware.PanicRecovery(s.metricsManager),
		middleware.LogRequest(),
		middleware.RequestMetrics(s.metricsManager),
		middleware.Cors(),
		authMiddlewareHandler.AuthCheck(),
		middleware.DrainAndCloseRequest(),
	)

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Addr:         ipAndPort,
		Handler:      s.routerSetup(),
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Inc()
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Dec()
	}
}

func (s *Server) GracefulShutdown() {
	log.Debugln("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	// stop serving requests first, in-flight turns may still enqueue
	// summary jobs until the server is drained
	maxWaitDuration := 15 * time.Second
	ctxShutdown, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctxShutdown); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctxShutdown); err != nil {
			log.Errorf("metrics server shutdown: %s", err)
		}
	}

	s.summarizer.Close()

	if s.otelShutdown != nil {
		s.otelShutdown()
	}

	if err := s.redisClient.Close(); err != nil {
		log.Errorf("close redis client: %s", err)
	}

	s.dbPool.Close()

	sentry.Flush(5 * time.Second)

	log.Warnln("server shut down")
}
