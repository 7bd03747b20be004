package mesocycle

import (
	"fmt"
	"slices"
	"strings"
)

type SortOption string

const (
	SortDefault SortOption = "default"
	SortDate    SortOption = "date"
	SortStatus  SortOption = "status"
)

func ParseSortOption(s string) (SortOption, error) {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(s))); opt {
	case "", SortDefault:
		return SortDefault, nil
	case SortDate, SortStatus:
		return opt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortOption, s)
	}
}

// compareStatus puts incomplete mesocycles first.
func compareStatus(a, b Mesocycle) int {
	switch {
	case a.Completed == b.Completed:
		return 0
	case a.Completed:
		return 1
	default:
		return -1
	}
}

// compareNewest puts the most recently created first.
func compareNewest(a, b Mesocycle) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

// SortForCurrent orders incomplete first, then newest first.
func SortForCurrent(list []Mesocycle) []Mesocycle {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b Mesocycle) int {
		if c := compareStatus(a, b); c != 0 {
			return c
		}
		return compareNewest(a, b)
	})
	return sorted
}

// Current returns the mesocycle the training day view runs.
func Current(list []Mesocycle) (*Mesocycle, error) {
	if len(list) == 0 {
		return nil, ErrNoMesocycles
	}
	current := SortForCurrent(list)[0]
	return &current, nil
}

func Sort(list []Mesocycle, opt SortOption) []Mesocycle {
	sorted := slices.Clone(list)
	switch opt {
	case SortDate:
		slices.SortStableFunc(sorted, compareNewest)
	case SortStatus:
		slices.SortStableFunc(sorted, compareStatus)
	}
	return sorted
}

// Search keeps the mesocycles whose name contains term, ignoring case.
func Search(list []Mesocycle, term string) []Mesocycle {
	if term == "" {
		return slices.Clone(list)
	}
	term = strings.ToLower(term)
	found := make([]Mesocycle, 0, len(list))
	for _, m := range list {
		if strings.Contains(strings.ToLower(m.Name), term) {
			found = append(found, m)
		}
	}
	return found
}

// IsFinalWorkout reports whether week and day label point to the last day of the last week.
func IsFinalWorkout(m *Mesocycle, week int, dayOfWeek string) bool {
	if m == nil || len(m.Days) == 0 {
		return false
	}
	return week == m.Weeks && dayOfWeek == m.Days[len(m.Days)-1].DayOfWeek
}
