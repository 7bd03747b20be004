package catalog

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidExercise  = errors.New("invalid exercise")
)

// Exercise is a catalog entry. UserID is empty for the global catalog.
type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup"`
	UserID      string    `json:"userId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e Exercise) IsGlobal() bool {
	return e.UserID == ""
}

type Filter struct {
	MuscleGroup string
	Search      string
}

func (f Filter) empty() bool {
	return f.MuscleGroup == "" && f.Search == ""
}

// Apply keeps the exercises of the muscle group (ignoring case) whose
// name contains the search term.
func (f Filter) Apply(exercises []Exercise) []Exercise {
	if f.empty() {
		return exercises
	}

	search := strings.ToLower(f.Search)
	filtered := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		if f.MuscleGroup != "" && !strings.EqualFold(e.MuscleGroup, f.MuscleGroup) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// MuscleGroups returns the distinct muscle groups in order of appearance.
func MuscleGroups(exercises []Exercise) []string {
	seen := make(map[string]bool)
	groups := make([]string, 0)
	for _, e := range exercises {
		key := strings.ToLower(e.MuscleGroup)
		if seen[key] {
			continue
		}
		seen[key] = true
		groups = append(groups, e.MuscleGroup)
	}
	return groups
}
