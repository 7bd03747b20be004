package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

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

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/catalog"
	"github.com/2beens/mesocycles/internal/config"
	"github.com/2beens/mesocycles/internal/db"
	mesomcp "github.com/2beens/mesocycles/internal/mcp"
	"github.com/2beens/mesocycles/internal/mesocycle"
	"github.com/2beens/mesocycles/internal/middleware"
	"github.com/2beens/mesocycles/internal/misc"
	"github.com/2beens/mesocycles/internal/preferences"
	"github.com/2beens/mesocycles/internal/telemetry/metrics"
	"github.com/2beens/mesocycles/internal/telemetry/tracing"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	catalogCache *catalog.GlobalCache

	redisClient  *redis.Client
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
	// SeedCatalog fills the global exercise catalog with the default exercises
	SeedCatalog bool
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
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authService := auth.NewService(auth.NewUsersRepo(dbPool), sessionTTL, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
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

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "mesocycles-backend", rdb)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		dbPool:       dbPool,
		catalogCache: catalog.NewGlobalCache(cfg.CatalogCacheSizeMB, cfg.CatalogCacheTTLSeconds),
		versionInfo:  params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(sessionTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.SeedCatalog {
		added, err := s.catalogService().SeedGlobal(ctx, catalog.DefaultGlobalExercises)
		if err != nil {
			return nil, fmt.Errorf("seed global catalog: %w", err)
		}
		log.Infof("global exercise catalog seeded, %d new exercises", added)
	}

	return s, nil
}

func (s *Server) catalogService() *catalog.Service {
	return catalog.NewService(catalog.NewRepo(s.dbPool), s.catalogCache)
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.metricsManager)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.config.AllowedOrigins)

	mesocycleService := mesocycle.NewService(mesocycle.NewRepo(s.dbPool), s.metricsManager)
	mesoHandler := mesocycle.NewHandler(mesocycleService)
	// static paths first, so they do not end up as {id}
	r.HandleFunc("/mesocycles", mesoHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-mesocycle")
	r.HandleFunc("/mesocycles", mesoHandler.HandleList).Methods("GET", "OPTIONS").Name("list-mesocycles")
	r.HandleFunc("/mesocycles/current", mesoHandler.HandleCurrent).Methods("GET", "OPTIONS").Name("current-mesocycle")
	r.HandleFunc("/mesocycles/validate", mesoHandler.HandleValidate).Methods("POST", "OPTIONS").Name("validate-mesocycle")
	r.HandleFunc("/mesocycles/{id}", mesoHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-mesocycle")
	r.HandleFunc("/mesocycles/{id}", mesoHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-mesocycle")
	r.HandleFunc("/mesocycles/{id}/calendar", mesoHandler.HandleCalendar).Methods("GET", "OPTIONS").Name("mesocycle-calendar")
	r.HandleFunc("/mesocycles/{id}/note", mesoHandler.HandleUpdateNote).Methods("PUT", "OPTIONS").Name("mesocycle-note")
	r.HandleFunc("/mesocycles/{id}/complete", mesoHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-mesocycle")
	r.HandleFunc("/mesocycles/{id}/weeks/{week}/days/{day}/exercises/{ex}/sets", mesoHandler.HandleLogSets).Methods("PUT", "OPTIONS").Name("log-sets")
	r.HandleFunc("/mesocycles/{id}/weeks/{week}/days/{day}/complete", mesoHandler.HandleCompleteWorkout).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/rir", mesoHandler.HandleRIR).Methods("GET", "OPTIONS").Name("rir")

	catalogService := s.catalogService()
	catalogHandler := catalog.NewHandler(catalogService)
	r.HandleFunc("/exercises", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/global", catalogHandler.HandleListGlobal).Methods("GET", "OPTIONS").Name("list-global-exercises")
	r.HandleFunc("/exercises", catalogHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", catalogHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	prefsHandler := preferences.NewHandler(preferences.NewService(preferences.NewRepo(s.redisClient)))
	r.HandleFunc("/preferences/logo", prefsHandler.HandleGetLogo).Methods("GET", "OPTIONS").Name("get-logo")
	r.HandleFunc("/preferences/logo", prefsHandler.HandleSetLogo).Methods("PUT", "OPTIONS").Name("set-logo")

	mcpHandler := mesomcp.NewHTTPHandler(mesocycleService, catalogService)
	r.Handle("/mcp", otelhttp.NewHandler(mcpHandler, "mcp")).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
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

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
