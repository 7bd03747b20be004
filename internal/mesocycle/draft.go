package mesocycle

// Draft is the editable state of a mesocycle before it is created.
// Edits with out of range indexes are ignored.
type Draft struct {
	Name  string `json:"name"`
	Weeks int    `json:"weeks"`
	Days  []Day  `json:"days"`
}

func emptyDay() Day {
	return Day{Exercises: []Exercise{{}}}
}

func NewDraft() *Draft {
	return &Draft{
		Days: []Day{emptyDay()},
	}
}

// AddDay appends an empty day, up to MaxDays.
func (d *Draft) AddDay() bool {
	if len(d.Days) >= MaxDays {
		return false
	}
	d.Days = append(d.Days, emptyDay())
	return true
}

// DeleteDay removes day i, the last remaining day is never removed.
func (d *Draft) DeleteDay(i int) bool {
	if len(d.Days) <= 1 || !d.hasDay(i) {
		return false
	}
	d.Days = append(d.Days[:i], d.Days[i+1:]...)
	return true
}

func (d *Draft) UpdateDay(i int, day Day) bool {
	if !d.hasDay(i) {
		return false
	}
	d.Days[i] = day
	return true
}

func (d *Draft) AddExercise(dayIdx int) bool {
	if !d.hasDay(dayIdx) {
		return false
	}
	d.Days[dayIdx].Exercises = append(d.Days[dayIdx].Exercises, Exercise{})
	return true
}

func (d *Draft) RemoveExercise(dayIdx, exIdx int) bool {
	if !d.hasDay(dayIdx) {
		return false
	}
	exercises := d.Days[dayIdx].Exercises
	if exIdx < 0 || exIdx >= len(exercises) {
		return false
	}
	d.Days[dayIdx].Exercises = append(exercises[:exIdx], exercises[exIdx+1:]...)
	return true
}

func (d *Draft) hasDay(i int) bool {
	return i >= 0 && i < len(d.Days)
}
