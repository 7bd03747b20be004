package mesocycle

import (
	"errors"
	"time"
)

const (
	MinWeeks = 4
	MaxWeeks = 6
	MaxDays  = 6
)

var (
	ErrMesocycleNotFound = errors.New("mesocycle not found")
	ErrInvalidMesocycle  = errors.New("invalid mesocycle")
	ErrInvalidWorkoutRef = errors.New("invalid workout reference")
	ErrInvalidSet        = errors.New("invalid set")
	ErrNoMesocycles      = errors.New("no mesocycles")
	ErrUnknownSortOption = errors.New("unknown sort option")
)

// Mesocycle is a multi-week training block, created from a Draft.
type Mesocycle struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Weeks     int       `json:"weeks"`
	Days      []Day     `json:"days"`
	Workouts  []Workout `json:"workouts"`
	Completed bool      `json:"completed"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

type Day struct {
	DayOfWeek string     `json:"dayOfWeek"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        []Set  `json:"sets,omitempty"`
}

type Set struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// Workout is the logged session of one calendar cell.
// Week is 1-based, DayIndex points into Mesocycle.Days.
type Workout struct {
	Week        int        `json:"week"`
	DayIndex    int        `json:"dayIndex"`
	DayOfWeek   string     `json:"dayOfWeek"`
	Exercises   []Exercise `json:"exercises"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
