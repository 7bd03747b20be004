package mesocycle

type CalendarCell struct {
	Week      int    `json:"week"`
	DayIndex  int    `json:"dayIndex"`
	DayOfWeek string `json:"dayOfWeek"`
	RIR       int    `json:"rir"`
	Completed bool   `json:"completed"`
}

// Calendar reshapes the training days into a weeks x days grid.
// Row i holds week i+1.
func Calendar(weeks int, days []Day, workouts []Workout) [][]CalendarCell {
	if weeks <= 0 {
		return [][]CalendarCell{}
	}

	completed := make(map[[2]int]bool, len(workouts))
	for _, w := range workouts {
		if w.Completed {
			completed[[2]int{w.Week, w.DayIndex}] = true
		}
	}

	grid := make([][]CalendarCell, 0, weeks)
	for week := 1; week <= weeks; week++ {
		row := make([]CalendarCell, 0, len(days))
		for i, day := range days {
			row = append(row, CalendarCell{
				Week:      week,
				DayIndex:  i,
				DayOfWeek: day.DayOfWeek,
				RIR:       RIR(weeks, week),
				Completed: completed[[2]int{week, i}],
			})
		}
		grid = append(grid, row)
	}

	return grid
}

func (m *Mesocycle) Calendar() [][]CalendarCell {
	return Calendar(m.Weeks, m.Days, m.Workouts)
}
