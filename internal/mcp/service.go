package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/mesocycles/internal/catalog"
	"github.com/2beens/mesocycles/internal/mesocycle"
)

// mesocycleReader is the read side of the mesocycle service.
type mesocycleReader interface {
	List(ctx context.Context, userID string, params mesocycle.ListParams) ([]mesocycle.Mesocycle, error)
	Current(ctx context.Context, userID string) (*mesocycle.Mesocycle, error)
	Calendar(ctx context.Context, userID, id string) (*mesocycle.CalendarView, error)
}

type catalogReader interface {
	ListMerged(ctx context.Context, userID string, filter catalog.Filter) ([]catalog.Exercise, error)
}

// contextService provides the training context of one user. Used by Handler for testability.
type contextService interface {
	ListMesocycles(ctx context.Context, search, sort string) ([]MesocycleSummary, error)
	CurrentMesocycle(ctx context.Context) (*mesocycle.Mesocycle, error)
	Calendar(ctx context.Context, mesocycleID string) (*mesocycle.CalendarView, error)
	ExerciseCatalog(ctx context.Context, muscleGroup, search string) ([]catalog.Exercise, error)
}

// MesocycleSummary is the list entry returned by list_mesocycles.
type MesocycleSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Weeks          int       `json:"weeks"`
	Days           []string  `json:"days"`
	Completed      bool      `json:"completed"`
	WorkoutsLogged int       `json:"workouts_logged"`
	WorkoutsDone   int       `json:"workouts_done"`
	CreatedAt      time.Time `json:"created_at"`
}

func summarize(m mesocycle.Mesocycle) MesocycleSummary {
	days := make([]string, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, d.DayOfWeek)
	}
	done := 0
	for _, w := range m.Workouts {
		if w.Completed {
			done++
		}
	}
	return MesocycleSummary{
		ID:             m.ID,
		Name:           m.Name,
		Weeks:          m.Weeks,
		Days:           days,
		Completed:      m.Completed,
		WorkoutsLogged: len(m.Workouts),
		WorkoutsDone:   done,
		CreatedAt:      m.CreatedAt,
	}
}

// ContextService reads mesocycles and exercises on behalf of a single user.
type ContextService struct {
	userID     string
	mesocycles mesocycleReader
	catalog    catalogReader
}

func NewContextService(userID string, mesocycles mesocycleReader, catalog catalogReader) *ContextService {
	return &ContextService{
		userID:     userID,
		mesocycles: mesocycles,
		catalog:    catalog,
	}
}

func (s *ContextService) ListMesocycles(ctx context.Context, search, sort string) ([]MesocycleSummary, error) {
	sortOption, err := mesocycle.ParseSortOption(sort)
	if err != nil {
		return nil, err
	}

	list, err := s.mesocycles.List(ctx, s.userID, mesocycle.ListParams{
		Search: search,
		Sort:   sortOption,
	})
	if err != nil {
		return nil, fmt.Errorf("list mesocycles: %w", err)
	}

	summaries := make([]MesocycleSummary, 0, len(list))
	for _, m := range list {
		summaries = append(summaries, summarize(m))
	}
	return summaries, nil
}

// CurrentMesocycle returns nil without an error when the user has no mesocycles yet.
func (s *ContextService) CurrentMesocycle(ctx context.Context) (*mesocycle.Mesocycle, error) {
	m, err := s.mesocycles.Current(ctx, s.userID)
	if err != nil {
		if errors.Is(err, mesocycle.ErrNoMesocycles) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (s *ContextService) Calendar(ctx context.Context, mesocycleID string) (*mesocycle.CalendarView, error) {
	return s.mesocycles.Calendar(ctx, s.userID, mesocycleID)
}

func (s *ContextService) ExerciseCatalog(ctx context.Context, muscleGroup, search string) ([]catalog.Exercise, error) {
	return s.catalog.ListMerged(ctx, s.userID, catalog.Filter{
		MuscleGroup: muscleGroup,
		Search:      search,
	})
}
