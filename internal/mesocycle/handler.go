package mesocycle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/telemetry/tracing"
	"github.com/2beens/mesocycles/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=mesocycle_test
type mesocycleService interface {
	Create(ctx context.Context, userID string, d Draft) (*Mesocycle, error)
	List(ctx context.Context, userID string, params ListParams) ([]Mesocycle, error)
	Get(ctx context.Context, userID, id string) (*Mesocycle, error)
	Current(ctx context.Context, userID string) (*Mesocycle, error)
	UpdateNote(ctx context.Context, userID, id, note string) error
	MarkCompleted(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
	Calendar(ctx context.Context, userID, id string) (*CalendarView, error)
	LogSets(ctx context.Context, userID, id string, week, dayIndex, exerciseIndex int, sets []Set) (*Workout, error)
	CompleteWorkout(ctx context.Context, userID, id string, week, dayIndex int) (*CompleteWorkoutResult, error)
}

type ListResponse struct {
	Mesocycles []Mesocycle `json:"mesocycles"`
	Total      int         `json:"total"`
}

type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

type RIRResponse struct {
	Weeks int `json:"weeks"`
	Week  int `json:"week"`
	RIR   int `json:"rir"`
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}

type LogSetsRequest struct {
	Sets []Set `json:"sets"`
}

type Handler struct {
	service mesocycleService
}

func NewHandler(service mesocycleService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any, status int) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "error, failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, status)
}

// writeError maps domain errors to status codes.
func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrMesocycleNotFound), errors.Is(err, ErrNoMesocycles):
		http.Error(w, "error, mesocycle not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidMesocycle),
		errors.Is(err, ErrInvalidWorkoutRef),
		errors.Is(err, ErrInvalidSet):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, failed to "+op, http.StatusInternalServerError)
	}
}

// idVar reads the {id} path var, which must be a UUID.
func (handler *Handler) idVar(w http.ResponseWriter, vars map[string]string) (string, bool) {
	id := vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		log.Tracef("invalid mesocycle id [%s]: %s", id, err)
		http.Error(w, "error, invalid mesocycle id", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func intVar(vars map[string]string, name string) (int, error) {
	v, ok := vars[name]
	if !ok || v == "" {
		return 0, errors.New(name + " empty")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(name + " NaN")
	}
	return n, nil
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.create")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Tracef("new mesocycle, unmarshal json params: %s", err)
		http.Error(w, "create mesocycle failed", http.StatusBadRequest)
		return
	}

	m, err := handler.service.Create(ctx, userID, draft)
	if err != nil {
		handler.writeError(w, "create mesocycle", err)
		return
	}

	log.Debugf("new mesocycle created: %s", m.ID)
	handler.writeJSON(w, m, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.list")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	sortOpt, err := ParseSortOption(r.URL.Query().Get("sort"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mesocycles, err := handler.service.List(ctx, userID, ListParams{
		Search: r.URL.Query().Get("search"),
		Sort:   sortOpt,
	})
	if err != nil {
		handler.writeError(w, "list mesocycles", err)
		return
	}

	handler.writeJSON(w, ListResponse{
		Mesocycles: mesocycles,
		Total:      len(mesocycles),
	}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.get")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	id, ok := handler.idVar(w, mux.Vars(r))
	if !ok {
		return
	}

	m, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		handler.writeError(w, "get mesocycle", err)
		return
	}

	handler.writeJSON(w, m, http.StatusOK)
}

func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.current")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	m, err := handler.service.Current(ctx, userID)
	if err != nil {
		handler.writeError(w, "get current mesocycle", err)
		return
	}

	handler.writeJSON(w, m, http.StatusOK)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.calendar")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	id, ok := handler.idVar(w, mux.Vars(r))
	if !ok {
		return
	}

	calendar, err := handler.service.Calendar(ctx, userID, id)
	if err != nil {
		handler.writeError(w, "get calendar", err)
		return
	}

	handler.writeJSON(w, calendar, http.StatusOK)
}

func (handler *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.update_note")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	id, ok := handler.idVar(w, mux.Vars(r))
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update note, unmarshal json params: %s", err)
		http.Error(w, "update note failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateNote(ctx, userID, id, req.Note); err != nil {
		handler.writeError(w, "update note", err)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.complete")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	id, ok := handler.idVar(w, mux.Vars(r))
	if !ok {
		return
	}

	if err := handler.service.MarkCompleted(ctx, userID, id); err != nil {
		handler.writeError(w, "complete mesocycle", err)
		return
	}

	pkg.WriteTextResponseOK(w, "completed")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.delete")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	id, ok := handler.idVar(w, mux.Vars(r))
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		handler.writeError(w, "delete mesocycle", err)
		return
	}

	handler.writeJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleLogSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.log_sets")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, ok := handler.idVar(w, vars)
	if !ok {
		return
	}

	week, err := intVar(vars, "week")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	day, err := intVar(vars, "day")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	ex, err := intVar(vars, "ex")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req LogSetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log sets, unmarshal json params: %s", err)
		http.Error(w, "log sets failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.LogSets(ctx, userID, id, week, day, ex, req.Sets)
	if err != nil {
		handler.writeError(w, "log sets", err)
		return
	}

	handler.writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.complete_workout")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, ok := handler.idVar(w, vars)
	if !ok {
		return
	}

	week, err := intVar(vars, "week")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	day, err := intVar(vars, "day")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.CompleteWorkout(ctx, userID, id, week, day)
	if err != nil {
		handler.writeError(w, "complete workout", err)
		return
	}

	handler.writeJSON(w, result, http.StatusOK)
}

// HandleValidate runs the create form rules without creating anything.
func (handler *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycle.validate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "validate failed", http.StatusBadRequest)
		return
	}

	resp := ValidateResponse{Valid: true}
	if err := Validate(draft); err != nil {
		resp.Valid = false
		resp.Errors = ValidationErrors(err)
	}

	handler.writeJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleRIR(w http.ResponseWriter, r *http.Request) {
	weeks, err := strconv.Atoi(r.URL.Query().Get("weeks"))
	if err != nil || weeks < MinWeeks || weeks > MaxWeeks {
		http.Error(w, "error, invalid weeks", http.StatusBadRequest)
		return
	}
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 || week > weeks {
		http.Error(w, "error, invalid week", http.StatusBadRequest)
		return
	}

	handler.writeJSON(w, RIRResponse{
		Weeks: weeks,
		Week:  week,
		RIR:   RIR(weeks, week),
	}, http.StatusOK)
}
