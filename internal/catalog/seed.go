package catalog

// DefaultGlobalExercises is the starting global catalog, grouped by muscle group.
var DefaultGlobalExercises = map[string][]string{
	"Chest":      {"Bench Press", "Incline Dumbbell Press", "Cable Fly", "Machine Chest Press", "Dips"},
	"Back":       {"Pull Up", "Barbell Row", "Lat Pulldown", "Seated Cable Row", "Chest Supported Row"},
	"Shoulders":  {"Overhead Press", "Lateral Raise", "Rear Delt Fly", "Face Pull"},
	"Biceps":     {"Barbell Curl", "Incline Dumbbell Curl", "Hammer Curl", "Cable Curl"},
	"Triceps":    {"Skull Crusher", "Triceps Pushdown", "Overhead Cable Extension", "Close Grip Bench Press"},
	"Quads":      {"Back Squat", "Front Squat", "Leg Press", "Leg Extension", "Hack Squat"},
	"Hamstrings": {"Romanian Deadlift", "Lying Leg Curl", "Seated Leg Curl", "Good Morning"},
	"Glutes":     {"Hip Thrust", "Bulgarian Split Squat", "Walking Lunge"},
	"Calves":     {"Standing Calf Raise", "Seated Calf Raise"},
	"Abs":        {"Cable Crunch", "Hanging Leg Raise", "Ab Wheel Rollout"},
}
