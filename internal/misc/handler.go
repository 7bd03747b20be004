package misc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/middleware"
	"github.com/2beens/mesocycles/internal/telemetry/metrics"
	"github.com/2beens/mesocycles/internal/telemetry/tracing"
	"github.com/2beens/mesocycles/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc_test

type authService interface {
	SignUp(ctx context.Context, creds auth.Credentials) (*auth.User, error)
	Login(ctx context.Context, creds auth.Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	versionInfo    string
	authService    authService
	metricsManager *metrics.Manager
}

func NewHandler(
	versionInfo string,
	authService authService,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		versionInfo:    versionInfo,
		authService:    authService,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	allowedOrigins []string,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/signup", handler.handleSignUp).
		Methods("POST", "OPTIONS").Name("signup")
	loginSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the /a endpoints to slow down credential guessing
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", allowedPerMin, handler.metricsManager))
	loginSubrouter.Use(middleware.Cors(allowedOrigins))
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func readCredentials(r *http.Request) (auth.Credentials, error) {
	var creds auth.Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return auth.Credentials{}, err
		}
		return creds, nil
	}

	if err := r.ParseForm(); err != nil {
		return auth.Credentials{}, err
	}
	return auth.Credentials{
		Email:    r.Form.Get("email"),
		Password: r.Form.Get("password"),
	}, nil
}

func (handler *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.signup")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	creds, err := readCredentials(r)
	if err != nil {
		log.Errorf("signup, read credentials: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}

	user, err := handler.authService.SignUp(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, auth.ErrUserExists):
			http.Error(w, "error, user already exists", http.StatusConflict)
		default:
			span.SetStatus(codes.Error, err.Error())
			log.Errorf("signup failed: %s", err)
			http.Error(w, "signup failed", http.StatusInternalServerError)
		}
		return
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	handler.metricsManager.CounterSignups.Inc()

	userBytes, err := json.Marshal(user)
	if err != nil {
		log.Errorf("signup, marshal user: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new signup: %s", user.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userBytes, http.StatusCreated)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	creds, err := readCredentials(r)
	if err != nil {
		log.Errorf("login, read credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, creds, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrWrongPassword) {
			log.Tracef("failed login attempt for: %s", creds.Email)
			handler.metricsManager.CounterLogins.WithLabelValues("failed").Inc()
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("login failed: %s", err)
		handler.metricsManager.CounterLogins.WithLabelValues("error").Inc()
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogins.WithLabelValues("success").Inc()

	respBytes, err := json.Marshal(LoginResponse{Token: token})
	if err != nil {
		log.Errorf("login, marshal response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get(middleware.TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(ctx, authToken); err != nil {
		if !errors.Is(err, auth.ErrSessionNotFound) {
			log.Errorf("logout => %s: %s", r.URL.Path, err)
		}
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Trace("logout success")
	pkg.WriteTextResponseOK(w, "logged-out")
}
