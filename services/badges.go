package services

// RequirementType selects how a badge's requirement is evaluated.
type RequirementType string

const (
	RequirePoints RequirementType = "points" // total points >= Value
	RequireCount  RequirementType = "count"  // activity counter >= Value
	RequireStreak RequirementType = "streak" // current streak >= Value
)

type BadgeRequirement struct {
	Type     RequirementType `json:"type"`
	Value    int             `json:"value"`
	Activity ActivityType    `json:"activity,omitempty"` // empty = any activity
}

// Badge is an immutable catalog entry. The catalog is fixed at build time;
// per-user earn state lives in models.UserBadge.
type Badge struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Tier        string           `json:"tier"`     // bronze | silver | gold | platinum
	Category    string           `json:"category"` // workout | nutrition | hydration | streak | achievement
	Requirement BadgeRequirement `json:"requirement"`
	Points      int              `json:"points"` // bonus awarded on first earn
}

// BadgeCatalog is evaluated in order; simultaneous eligibility awards in this
// order within a single pass.
var BadgeCatalog = []Badge{
	// Workout badges
	{
		ID: "first-workout", Name: "First Steps",
		Description: "Complete your first workout",
		Icon:        "🏃", Tier: "bronze", Category: "workout",
		Requirement: BadgeRequirement{Type: RequireCount, Value: 1, Activity: ActivityWorkout},
		Points:      50,
	},
	{
		ID: "workout-warrior-bronze", Name: "Workout Warrior",
		Description: "Complete 10 workouts",
		Icon:        "💪", Tier: "bronze", Category: "workout",
		Requirement: BadgeRequirement{Type: RequireCount, Value: 10, Activity: ActivityWorkout},
		Points:      100,
	},
	{
		ID: "workout-warrior-silver", Name: "Workout Champion",
		Description: "Complete 50 workouts",
		Icon:        "🏆", Tier: "silver", Category: "workout",
		Requirement: BadgeRequirement{Type: RequireCount, Value: 50, Activity: ActivityWorkout},
		Points:      300,
	},
	{
		ID: "workout-warrior-gold", Name: "Fitness Legend",
		Description: "Complete 100 workouts",
		Icon:        "👑", Tier: "gold", Category: "workout",
		Requirement: BadgeRequirement{Type: RequireCount, Value: 100, Activity: ActivityWorkout},
		Points:      750,
	},

	// Hydration badges
	{
		ID: "hydration-hero-bronze", Name: "Hydration Hero",
		Description: "Meet hydration goal for 7 days",
		Icon:        "💧", Tier: "bronze", Category: "hydration",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 7, Activity: ActivityHydration},
		Points:      150,
	},
	{
		ID: "hydration-hero-silver", Name: "Water Warrior",
		Description: "Meet hydration goal for 30 days",
		Icon:        "🌊", Tier: "silver", Category: "hydration",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 30, Activity: ActivityHydration},
		Points:      500,
	},
	{
		ID: "hydration-hero-gold", Name: "Aqua Master",
		Description: "Meet hydration goal for 100 days",
		Icon:        "🏺", Tier: "gold", Category: "hydration",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 100, Activity: ActivityHydration},
		Points:      1500,
	},

	// Nutrition badges
	{
		ID: "meal-master-bronze", Name: "Meal Master",
		Description: "Log meals for 7 consecutive days",
		Icon:        "🍽️", Tier: "bronze", Category: "nutrition",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 7, Activity: ActivityNutrition},
		Points:      200,
	},
	{
		ID: "meal-master-silver", Name: "Nutrition Ninja",
		Description: "Log meals for 30 consecutive days",
		Icon:        "🥗", Tier: "silver", Category: "nutrition",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 30, Activity: ActivityNutrition},
		Points:      600,
	},
	{
		ID: "meal-master-gold", Name: "Diet Deity",
		Description: "Log meals for 100 consecutive days",
		Icon:        "🌟", Tier: "gold", Category: "nutrition",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 100, Activity: ActivityNutrition},
		Points:      2000,
	},

	// Any-streak badges
	{
		ID: "streak-starter", Name: "Streak Starter",
		Description: "Maintain any 7-day streak",
		Icon:        "🔥", Tier: "bronze", Category: "streak",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 7},
		Points:      100,
	},
	{
		ID: "consistency-king", Name: "Consistency King",
		Description: "Maintain any 30-day streak",
		Icon:        "⚡", Tier: "silver", Category: "streak",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 30},
		Points:      400,
	},
	{
		ID: "dedication-master", Name: "Dedication Master",
		Description: "Maintain any 100-day streak",
		Icon:        "💎", Tier: "gold", Category: "streak",
		Requirement: BadgeRequirement{Type: RequireStreak, Value: 100},
		Points:      1200,
	},

	// Point milestones
	{
		ID: "point-collector-bronze", Name: "Point Collector",
		Description: "Earn 1,000 total points",
		Icon:        "🎯", Tier: "bronze", Category: "achievement",
		Requirement: BadgeRequirement{Type: RequirePoints, Value: 1000},
		Points:      100,
	},
	{
		ID: "point-collector-silver", Name: "Point Master",
		Description: "Earn 5,000 total points",
		Icon:        "🎖️", Tier: "silver", Category: "achievement",
		Requirement: BadgeRequirement{Type: RequirePoints, Value: 5000},
		Points:      300,
	},
	{
		ID: "point-collector-gold", Name: "Point Legend",
		Description: "Earn 25,000 total points",
		Icon:        "🏅", Tier: "gold", Category: "achievement",
		Requirement: BadgeRequirement{Type: RequirePoints, Value: 25000},
		Points:      1000,
	},
}

var badgesByID = func() map[string]Badge {
	m := make(map[string]Badge, len(BadgeCatalog))
	for _, b := range BadgeCatalog {
		m[b.ID] = b
	}
	return m
}()

// BadgeByID looks a catalog entry up by id.
func BadgeByID(id string) (Badge, bool) {
	b, ok := badgesByID[id]
	return b, ok
}
