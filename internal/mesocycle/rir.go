package mesocycle

// DeloadRIR is the reps in reserve of the last (deload) week.
const DeloadRIR = 8

// RIR returns the reps in reserve for the given 1-based week.
func RIR(totalWeeks, week int) int {
	if week == totalWeeks {
		return DeloadRIR
	}
	return totalWeeks - week
}
