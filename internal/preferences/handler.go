package preferences

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/telemetry/tracing"
	"github.com/2beens/mesocycles/pkg"

	log "github.com/sirupsen/logrus"
)

type LogoResponse struct {
	Selected Logo   `json:"selected"`
	Options  []Logo `json:"options"`
}

type SetLogoRequest struct {
	Key string `json:"key"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) writeLogo(w http.ResponseWriter, logo Logo) {
	respBytes, err := json.Marshal(LogoResponse{
		Selected: logo,
		Options:  AllLogos(),
	})
	if err != nil {
		log.Errorf("marshal logo response: %s", err)
		http.Error(w, "error, logo preference", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleGetLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.get_logo")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	logo, err := handler.service.Logo(ctx, userID)
	if err != nil {
		log.Errorf("get logo preference for %s: %s", userID, err)
		http.Error(w, "error, get logo preference", http.StatusInternalServerError)
		return
	}

	handler.writeLogo(w, logo)
}

func (handler *Handler) HandleSetLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.set_logo")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SetLogoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "set logo failed", http.StatusBadRequest)
		return
	}

	logo, err := handler.service.SetLogo(ctx, userID, req.Key)
	if err != nil {
		if errors.Is(err, ErrUnknownLogo) {
			http.Error(w, "error, unknown logo", http.StatusBadRequest)
			return
		}
		log.Errorf("set logo preference for %s: %s", userID, err)
		http.Error(w, "error, set logo preference", http.StatusInternalServerError)
		return
	}

	handler.writeLogo(w, logo)
}
