package mesocycle

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Validate reports every violation of the create form rules, joined.
func Validate(d Draft) error {
	var err error

	if strings.TrimSpace(d.Name) == "" {
		err = multierr.Append(err, fmt.Errorf("name is required"))
	}
	if d.Weeks == 0 {
		err = multierr.Append(err, fmt.Errorf("weeks is required"))
	} else if d.Weeks < MinWeeks || d.Weeks > MaxWeeks {
		err = multierr.Append(err, fmt.Errorf("weeks must be between %d and %d, got %d", MinWeeks, MaxWeeks, d.Weeks))
	}
	if len(d.Days) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one day is required"))
	}
	if len(d.Days) > MaxDays {
		err = multierr.Append(err, fmt.Errorf("at most %d days allowed, got %d", MaxDays, len(d.Days)))
	}

	for i, day := range d.Days {
		if strings.TrimSpace(day.DayOfWeek) == "" {
			err = multierr.Append(err, fmt.Errorf("day %d: day of week is required", i+1))
		}
		for j, ex := range day.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				err = multierr.Append(err, fmt.Errorf("day %d, exercise %d: name is required", i+1, j+1))
			}
			if strings.TrimSpace(ex.MuscleGroup) == "" {
				err = multierr.Append(err, fmt.Errorf("day %d, exercise %d: muscle group is required", i+1, j+1))
			}
		}
	}

	return err
}

func IsValid(d Draft) bool {
	return Validate(d) == nil
}

// ValidationErrors splits the joined Validate error into messages.
func ValidationErrors(err error) []string {
	errs := multierr.Errors(err)
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

func validateSets(sets []Set) error {
	for i, s := range sets {
		if s.Weight < 0 {
			return fmt.Errorf("%w: set %d: negative weight", ErrInvalidSet, i+1)
		}
		if s.Reps < 0 {
			return fmt.Errorf("%w: set %d: negative reps", ErrInvalidSet, i+1)
		}
	}
	return nil
}
