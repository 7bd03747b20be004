package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/telemetry/tracing"
	"github.com/2beens/mesocycles/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test
type catalogService interface {
	ListGlobal(ctx context.Context, filter Filter) ([]Exercise, error)
	ListMerged(ctx context.Context, userID string, filter Filter) ([]Exercise, error)
	AddUserExercise(ctx context.Context, userID, name, muscleGroup string) (*Exercise, error)
	DeleteUserExercise(ctx context.Context, userID, id string) error
}

type ListResponse struct {
	Exercises    []Exercise `json:"exercises"`
	MuscleGroups []string   `json:"muscleGroups"`
	Total        int        `json:"total"`
}

type AddExerciseRequest struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
}

type DeleteExerciseResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service catalogService
}

func NewHandler(service catalogService) *Handler {
	return &Handler{
		service: service,
	}
}

func filterFromRequest(r *http.Request) Filter {
	return Filter{
		MuscleGroup: r.URL.Query().Get("group"),
		Search:      r.URL.Query().Get("search"),
	}
}

func writeList(w http.ResponseWriter, exercises []Exercise) {
	respBytes, err := json.Marshal(ListResponse{
		Exercises:    exercises,
		MuscleGroups: MuscleGroups(exercises),
		Total:        len(exercises),
	})
	if err != nil {
		log.Errorf("marshal exercises: %s", err)
		http.Error(w, "error, failed to list exercises", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exercises, err := handler.service.ListMerged(ctx, userID, filterFromRequest(r))
	if err != nil {
		log.Errorf("list exercises for user %s: %s", userID, err)
		http.Error(w, "error, failed to list exercises", http.StatusInternalServerError)
		return
	}

	writeList(w, exercises)
}

func (handler *Handler) HandleListGlobal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list_global")
	defer span.End()

	exercises, err := handler.service.ListGlobal(ctx, filterFromRequest(r))
	if err != nil {
		log.Errorf("list global exercises: %s", err)
		http.Error(w, "error, failed to list exercises", http.StatusInternalServerError)
		return
	}

	writeList(w, exercises)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add")
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

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	e, err := handler.service.AddUserExercise(ctx, userID, req.Name, req.MuscleGroup)
	if err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			http.Error(w, "error, exercise name or muscle group empty", http.StatusBadRequest)
			return
		}
		log.Errorf("add exercise [%s] [%s]: %s", req.MuscleGroup, req.Name, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	addedBytes, err := json.Marshal(e)
	if err != nil {
		log.Errorf("marshal added exercise: %s", err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedBytes, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteUserExercise(ctx, userID, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "error, exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise %s: %s", id, err)
		http.Error(w, "error, failed to delete exercise", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(DeleteExerciseResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete response: %s", err)
		http.Error(w, "error, failed to delete exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
