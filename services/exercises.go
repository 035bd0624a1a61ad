// services/exercises.go
package services

// Exercise is a catalog entry. Sessions snapshot these as JSON so the
// catalog can evolve without rewriting past plans.
type Exercise struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"` // strength | cardio | yoga | flexibility | hiit
	Duration       int      `json:"duration,omitempty"` // minutes
	Sets           int      `json:"sets,omitempty"`
	Reps           int      `json:"reps,omitempty"`
	RestTime       int      `json:"restTime,omitempty"` // seconds
	Difficulty     string   `json:"difficulty"`
	Instructions   string   `json:"instructions"`
	TargetMuscles  []string `json:"targetMuscles"`
	Equipment      []string `json:"equipment"`
	CaloriesBurned int      `json:"caloriesBurned,omitempty"`
}

var ExerciseCatalog = []Exercise{
	{
		ID: "push-ups", Name: "Push-ups", Type: "strength",
		Sets: 3, Reps: 12, RestTime: 60, Difficulty: "beginner",
		Instructions:  "Start in plank position. Lower your body until chest nearly touches floor. Push back up.",
		TargetMuscles: []string{"chest", "shoulders", "triceps"},
		Equipment:     []string{}, CaloriesBurned: 50,
	},
	{
		ID: "squats", Name: "Squats", Type: "strength",
		Sets: 3, Reps: 15, RestTime: 60, Difficulty: "beginner",
		Instructions:  "Stand with feet shoulder-width apart. Lower body as if sitting back into chair. Return to standing.",
		TargetMuscles: []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:     []string{}, CaloriesBurned: 60,
	},
	{
		ID: "deadlifts", Name: "Deadlifts", Type: "strength",
		Sets: 3, Reps: 8, RestTime: 90, Difficulty: "intermediate",
		Instructions:  "Stand with feet hip-width apart. Bend at hips and knees to lower torso. Lift weight by extending hips and knees.",
		TargetMuscles: []string{"hamstrings", "glutes", "lower back"},
		Equipment:     []string{"barbell", "dumbbells"}, CaloriesBurned: 80,
	},
	{
		ID: "pull-ups", Name: "Pull-ups", Type: "strength",
		Sets: 3, Reps: 8, RestTime: 90, Difficulty: "intermediate",
		Instructions:  "Hang from bar with arms extended. Pull body up until chin clears bar. Lower with control.",
		TargetMuscles: []string{"lats", "biceps", "rhomboids"},
		Equipment:     []string{"pull-up bar"}, CaloriesBurned: 70,
	},
	{
		ID: "jumping-jacks", Name: "Jumping Jacks", Type: "cardio",
		Duration: 5, Difficulty: "beginner",
		Instructions:  "Jump while spreading legs shoulder-width apart and raising arms overhead. Return to starting position.",
		TargetMuscles: []string{"full body"},
		Equipment:     []string{}, CaloriesBurned: 40,
	},
	{
		ID: "burpees", Name: "Burpees", Type: "hiit",
		Sets: 3, Reps: 10, RestTime: 60, Difficulty: "advanced",
		Instructions:  "Start standing. Drop to squat, kick feet back to plank, do push-up, jump feet to squat, jump up.",
		TargetMuscles: []string{"full body"},
		Equipment:     []string{}, CaloriesBurned: 100,
	},
	{
		ID: "mountain-climbers", Name: "Mountain Climbers", Type: "hiit",
		Duration: 3, Difficulty: "intermediate",
		Instructions:  "Start in plank position. Alternate bringing knees to chest in running motion.",
		TargetMuscles: []string{"core", "shoulders", "legs"},
		Equipment:     []string{}, CaloriesBurned: 60,
	},
	{
		ID: "downward-dog", Name: "Downward Facing Dog", Type: "yoga",
		Duration: 2, Difficulty: "beginner",
		Instructions:  "Start on hands and knees. Tuck toes, lift hips up and back. Straighten legs and arms.",
		TargetMuscles: []string{"hamstrings", "calves", "shoulders"},
		Equipment:     []string{"yoga mat"}, CaloriesBurned: 20,
	},
	{
		ID: "warrior-pose", Name: "Warrior I Pose", Type: "yoga",
		Duration: 1, Difficulty: "beginner",
		Instructions:  "Step left foot back, turn out 45 degrees. Bend right knee over ankle, raise arms overhead.",
		TargetMuscles: []string{"legs", "core", "shoulders"},
		Equipment:     []string{"yoga mat"}, CaloriesBurned: 15,
	},
	{
		ID: "tree-pose", Name: "Tree Pose", Type: "yoga",
		Duration: 1, Difficulty: "intermediate",
		Instructions:  "Stand on left foot. Place right foot on inner left thigh. Bring palms together at heart center.",
		TargetMuscles: []string{"legs", "core"},
		Equipment:     []string{"yoga mat"}, CaloriesBurned: 10,
	},
	{
		ID: "forward-fold", Name: "Standing Forward Fold", Type: "flexibility",
		Duration: 2, Difficulty: "beginner",
		Instructions:  "Stand with feet hip-width apart. Hinge at hips and fold forward, letting arms hang.",
		TargetMuscles: []string{"hamstrings", "calves", "lower back"},
		Equipment:     []string{}, CaloriesBurned: 10,
	},
	{
		ID: "pigeon-pose", Name: "Pigeon Pose", Type: "flexibility",
		Duration: 3, Difficulty: "intermediate",
		Instructions:  "From downward dog, bring right knee forward behind right wrist. Extend left leg back.",
		TargetMuscles: []string{"hip flexors", "glutes"},
		Equipment:     []string{"yoga mat"}, CaloriesBurned: 15,
	},
}

type workoutTemplate struct {
	Name            string
	SessionsPerWeek int
	Types           []string
	Duration        int
}

var workoutTemplates = map[string]workoutTemplate{
	"weight_loss":     {Name: "Weight Loss Program", SessionsPerWeek: 5, Types: []string{"hiit", "cardio", "strength"}, Duration: 45},
	"muscle_gain":     {Name: "Muscle Building Program", SessionsPerWeek: 4, Types: []string{"strength"}, Duration: 60},
	"flexibility":     {Name: "Flexibility & Mobility", SessionsPerWeek: 6, Types: []string{"yoga", "flexibility"}, Duration: 30},
	"endurance":       {Name: "Endurance Training", SessionsPerWeek: 5, Types: []string{"cardio", "hiit"}, Duration: 50},
	"general_fitness": {Name: "General Fitness", SessionsPerWeek: 4, Types: []string{"strength", "cardio", "yoga"}, Duration: 40},
}

func exercisesForType(sessionType, goal string) []Exercise {
	var filtered []Exercise
	for _, ex := range ExerciseCatalog {
		if ex.Type == sessionType {
			filtered = append(filtered, ex)
		}
	}
	if len(filtered) == 0 {
		for _, ex := range ExerciseCatalog {
			if ex.Type == "strength" {
				filtered = append(filtered, ex)
			}
		}
	}

	count := 5
	switch goal {
	case "muscle_gain":
		count = 6
	case "flexibility":
		count = 8
	}
	if count > len(filtered) {
		count = len(filtered)
	}
	return filtered[:count]
}

func difficultyForGoal(goal string) string {
	switch goal {
	case "muscle_gain":
		return "intermediate"
	case "endurance":
		return "advanced"
	default:
		return "beginner"
	}
}
