package mesocycle

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/mesocycles/internal/telemetry/metrics"
	"github.com/2beens/mesocycles/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=mesocycle
type mesocycleRepo interface {
	Add(ctx context.Context, m Mesocycle) error
	Get(ctx context.Context, userID, id string) (*Mesocycle, error)
	List(ctx context.Context, userID string) ([]Mesocycle, error)
	Save(ctx context.Context, m Mesocycle) error
	UpdateNote(ctx context.Context, userID, id, note string) error
	MarkCompleted(ctx context.Context, userID, id string) (bool, error)
	Delete(ctx context.Context, userID, id string) error
}

type ListParams struct {
	Search string
	Sort   SortOption
}

type CalendarView struct {
	MesocycleID string           `json:"mesocycleId"`
	Name        string           `json:"name"`
	Weeks       int              `json:"weeks"`
	Completed   bool             `json:"completed"`
	Grid        [][]CalendarCell `json:"grid"`
}

type CompleteWorkoutResult struct {
	Workout            Workout `json:"workout"`
	MesocycleCompleted bool    `json:"mesocycleCompleted"`
}

type Service struct {
	repo           mesocycleRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo mesocycleRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID string, d Draft) (_ *Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMesocycle, err)
	}

	m := Mesocycle{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      d.Name,
		Weeks:     d.Weeks,
		Days:      d.Days,
		Workouts:  []Workout{},
		Completed: false,
		CreatedAt: s.now(),
	}
	if err := s.repo.Add(ctx, m); err != nil {
		return nil, fmt.Errorf("add mesocycle: %w", err)
	}

	s.metricsManager.CounterMesocyclesCreated.Inc()
	span.SetAttributes(attribute.String("mesocycle.id", m.ID))
	return &m, nil
}

func (s *Service) List(ctx context.Context, userID string, params ListParams) (_ []Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("params.search", params.Search),
		attribute.String("params.sort", string(params.Sort)),
	)

	all, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list mesocycles: %w", err)
	}

	return Sort(Search(all, params.Search), params.Sort), nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (_ *Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Get(ctx, userID, id)
}

// Current returns the mesocycle to train today: the newest incomplete one,
// or the newest one when all are completed.
func (s *Service) Current(ctx context.Context, userID string) (_ *Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list mesocycles: %w", err)
	}

	return Current(all)
}

func (s *Service) UpdateNote(ctx context.Context, userID, id, note string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.update_note")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.UpdateNote(ctx, userID, id, note)
}

// MarkCompleted ends the mesocycle, also before its last workout.
func (s *Service) MarkCompleted(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.mark_completed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	completed, err := s.repo.MarkCompleted(ctx, userID, id)
	if err != nil {
		return err
	}

	if completed {
		s.metricsManager.CounterMesocyclesCompleted.Inc()
	} else {
		log.Debugf("mesocycle %s already completed", id)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.metricsManager.CounterMesocyclesDeleted.Inc()
	return nil
}

func (s *Service) Calendar(ctx context.Context, userID, id string) (_ *CalendarView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return &CalendarView{
		MesocycleID: m.ID,
		Name:        m.Name,
		Weeks:       m.Weeks,
		Completed:   m.Completed,
		Grid:        m.Calendar(),
	}, nil
}

func (s *Service) LogSets(
	ctx context.Context,
	userID, id string,
	week, dayIndex, exerciseIndex int,
	sets []Set,
) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.log_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.week", week),
		attribute.Int("workout.day", dayIndex),
		attribute.Int("workout.exercise", exerciseIndex),
	)

	m, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := m.LogSets(week, dayIndex, exerciseIndex, sets); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, *m); err != nil {
		return nil, fmt.Errorf("save mesocycle: %w", err)
	}

	s.metricsManager.CounterSetsLogged.Add(float64(len(sets)))
	return m.Workout(week, dayIndex), nil
}

func (s *Service) CompleteWorkout(
	ctx context.Context,
	userID, id string,
	week, dayIndex int,
) (_ *CompleteWorkoutResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycle.complete_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := m.Completed
	finished, err := m.CompleteWorkout(week, dayIndex, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, *m); err != nil {
		return nil, fmt.Errorf("save mesocycle: %w", err)
	}

	s.metricsManager.CounterWorkoutsCompleted.Inc()
	if finished && !wasCompleted {
		log.Debugf("mesocycle %s finished with its final workout", m.ID)
		s.metricsManager.CounterMesocyclesCompleted.Inc()
	}

	return &CompleteWorkoutResult{
		Workout:            *m.Workout(week, dayIndex),
		MesocycleCompleted: m.Completed,
	}, nil
}
