package mesocycle

import (
	"fmt"
	"slices"
	"time"
)

func (m *Mesocycle) checkCell(week, dayIndex int) error {
	if week < 1 || week > m.Weeks {
		return fmt.Errorf("%w: week %d out of range [1, %d]", ErrInvalidWorkoutRef, week, m.Weeks)
	}
	if dayIndex < 0 || dayIndex >= len(m.Days) {
		return fmt.Errorf("%w: day %d out of range [0, %d)", ErrInvalidWorkoutRef, dayIndex, len(m.Days))
	}
	return nil
}

// Workout returns the logged workout of a cell, nil if nothing was logged yet.
func (m *Mesocycle) Workout(week, dayIndex int) *Workout {
	for i := range m.Workouts {
		if m.Workouts[i].Week == week && m.Workouts[i].DayIndex == dayIndex {
			return &m.Workouts[i]
		}
	}
	return nil
}

// workoutFor returns the workout of a cell, creating it from the template day.
func (m *Mesocycle) workoutFor(week, dayIndex int) *Workout {
	if w := m.Workout(week, dayIndex); w != nil {
		return w
	}

	day := m.Days[dayIndex]
	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		exercises[i] = Exercise{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Sets:        slices.Clone(ex.Sets),
		}
	}

	m.Workouts = append(m.Workouts, Workout{
		Week:      week,
		DayIndex:  dayIndex,
		DayOfWeek: day.DayOfWeek,
		Exercises: exercises,
	})
	return &m.Workouts[len(m.Workouts)-1]
}

// LogSets replaces the logged sets of one exercise in a workout.
func (m *Mesocycle) LogSets(week, dayIndex, exerciseIndex int, sets []Set) error {
	if err := m.checkCell(week, dayIndex); err != nil {
		return err
	}
	if exerciseIndex < 0 || exerciseIndex >= len(m.Days[dayIndex].Exercises) {
		return fmt.Errorf("%w: exercise %d out of range", ErrInvalidWorkoutRef, exerciseIndex)
	}
	if err := validateSets(sets); err != nil {
		return err
	}

	w := m.workoutFor(week, dayIndex)
	w.Exercises[exerciseIndex].Sets = slices.Clone(sets)
	return nil
}

// CompleteWorkout marks the workout of a cell as done. When it is the
// final workout, the whole mesocycle gets completed and true is returned.
func (m *Mesocycle) CompleteWorkout(week, dayIndex int, now time.Time) (bool, error) {
	if err := m.checkCell(week, dayIndex); err != nil {
		return false, err
	}

	w := m.workoutFor(week, dayIndex)
	w.Completed = true
	w.CompletedAt = &now

	if IsFinalWorkout(m, week, m.Days[dayIndex].DayOfWeek) {
		m.Completed = true
		return true, nil
	}
	return false, nil
}
