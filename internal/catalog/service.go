package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/mesocycles/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=catalog
type catalogRepo interface {
	ListGlobal(ctx context.Context) ([]Exercise, error)
	ListUser(ctx context.Context, userID string) ([]Exercise, error)
	AddUser(ctx context.Context, e Exercise) error
	AddGlobal(ctx context.Context, exercises []Exercise) (int, error)
	DeleteUser(ctx context.Context, userID, id string) error
}

type Service struct {
	repo  catalogRepo
	cache *GlobalCache
}

func NewService(repo catalogRepo, cache *GlobalCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) ListGlobal(ctx context.Context, filter Filter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.list_global")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, ok := s.cache.Get(); ok {
		log.Tracef("global catalog served from cache [%d exercises]", len(cached))
		return filter.Apply(cached), nil
	}

	exercises, err := s.repo.ListGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("list global exercises: %w", err)
	}

	if err := s.cache.Set(exercises); err != nil {
		log.Warnf("failed to cache global catalog: %s", err)
	}

	return filter.Apply(exercises), nil
}

func (s *Service) ListUser(ctx context.Context, userID string, filter Filter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.list_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := s.repo.ListUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user exercises: %w", err)
	}

	return filter.Apply(exercises), nil
}

// ListMerged returns the global catalog followed by the user's own exercises.
func (s *Service) ListMerged(ctx context.Context, userID string, filter Filter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.list_merged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	global, err := s.ListGlobal(ctx, filter)
	if err != nil {
		return nil, err
	}

	user, err := s.ListUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	merged := make([]Exercise, 0, len(global)+len(user))
	merged = append(merged, global...)
	merged = append(merged, user...)
	return merged, nil
}

func (s *Service) AddUserExercise(ctx context.Context, userID, name, muscleGroup string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.add_user_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	muscleGroup = strings.TrimSpace(muscleGroup)
	if name == "" || muscleGroup == "" {
		return nil, fmt.Errorf("%w: name and muscle group are required", ErrInvalidExercise)
	}

	e := Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		MuscleGroup: muscleGroup,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.AddUser(ctx, e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Service) DeleteUserExercise(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.delete_user_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteUser(ctx, userID, id)
}

// SeedGlobal adds the missing exercises of the given muscle group -> names map
// to the global catalog.
func (s *Service) SeedGlobal(ctx context.Context, byMuscleGroup map[string][]string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.seed_global")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	groups := make([]string, 0, len(byMuscleGroup))
	for group := range byMuscleGroup {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	now := time.Now()
	var exercises []Exercise
	for _, group := range groups {
		for _, name := range byMuscleGroup[group] {
			exercises = append(exercises, Exercise{
				ID:          uuid.NewString(),
				Name:        name,
				MuscleGroup: group,
				CreatedAt:   now,
			})
		}
	}

	added, err := s.repo.AddGlobal(ctx, exercises)
	if err != nil {
		return added, fmt.Errorf("seed global catalog: %w", err)
	}

	if added > 0 {
		s.cache.Invalidate()
	}

	log.Infof("global catalog seeded, %d new exercises", added)
	return added, nil
}
