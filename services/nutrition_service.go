// services/nutrition_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"fittrack/models"
	"fittrack/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyTotals struct {
	Calories float64            `json:"calories"`
	Protein  float64            `json:"protein"`
	Carbs    float64            `json:"carbs"`
	Fat      float64            `json:"fat"`
	Entries  []models.FoodEntry `json:"entries"`
}

type NutritionService struct {
	db  *gorm.DB
	gam *GamificationService
	rek *RekognitionService
}

func NewNutritionService(db *gorm.DB, gam *GamificationService, rek *RekognitionService) *NutritionService {
	return &NutritionService{db: db, gam: gam, rek: rek}
}

// ---------- goals ----------

func (s *NutritionService) GetGoal(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *NutritionService) SetGoal(userID uint, calories, protein, carbs, fat float64) (*models.NutritionGoal, error) {
	goal := models.NutritionGoal{UserID: userID}
	err := s.db.
		Where("user_id = ?", userID).
		Assign(models.NutritionGoal{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}).
		FirstOrCreate(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// ---------- food entries ----------

// AddFoodEntry stores a log row (macros scaled by quantity) and runs the
// gamification triggers: every log earns points, the first-ever log earns
// the starter award, and the third log of a day marks the nutrition streak
// and grants the daily goal bonus.
func (s *NutritionService) AddFoodEntry(userID uint, date, name string, calories, protein, carbs, fat, quantity float64, unit, mealType string) (*models.FoodEntry, error) {
	if quantity <= 0 {
		quantity = 1
	}
	if unit == "" {
		unit = "serving"
	}
	if mealType == "" {
		mealType = "lunch"
	}

	entry := models.FoodEntry{
		UserID:   userID,
		Date:     date,
		Name:     name,
		Calories: calories * quantity,
		Protein:  protein * quantity,
		Carbs:    carbs * quantity,
		Fat:      fat * quantity,
		Quantity: quantity,
		Unit:     unit,
		MealType: mealType,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	count, err := s.gam.IncrementActivityCount(userID, ActivityNutrition)
	if err != nil {
		return nil, err
	}
	if count == 1 {
		if _, err := s.gam.AwardPoints(userID, ActivityNutrition, ReasonFirstMealLog, PointValues[ReasonFirstMealLog]); err != nil {
			return nil, err
		}
	}
	if _, err := s.gam.AwardPoints(userID, ActivityNutrition, ReasonMealLogged, PointValues[ReasonMealLogged]); err != nil {
		return nil, err
	}

	var todayCount int64
	if err := s.db.Model(&models.FoodEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&todayCount).Error; err != nil {
		return nil, err
	}
	if todayCount == 3 {
		if err := s.gam.UpdateStreak(userID, ActivityNutrition, date, true); err != nil {
			return nil, err
		}
		if _, err := s.gam.AwardPoints(userID, ActivityNutrition, ReasonDailyNutritionGoal, PointValues[ReasonDailyNutritionGoal]); err != nil {
			return nil, err
		}
	}

	return &entry, nil
}

func (s *NutritionService) GetEntriesForDate(userID uint, date string) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *NutritionService) GetDailyTotals(userID uint, date string) (*DailyTotals, error) {
	entries, err := s.GetEntriesForDate(userID, date)
	if err != nil {
		return nil, err
	}
	totals := DailyTotals{Entries: entries}
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.Protein += e.Protein
		totals.Carbs += e.Carbs
		totals.Fat += e.Fat
	}
	return &totals, nil
}

// DeleteFoodEntry removes a log row. Points already earned from it stay.
func (s *NutritionService) DeleteFoodEntry(userID, entryID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.FoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("food entry not found")
	}
	return nil
}

// ---------- meal plans ----------

var mealCalorieShare = map[string]float64{
	"breakfast": 0.25,
	"lunch":     0.35,
	"dinner":    0.40,
	"snack":     0.10,
}

func mealFoodsForType(mealType string) []*FoodItem {
	switch mealType {
	case "breakfast":
		return []*FoodItem{FindFood("Oatmeal"), FindFood("Banana"), FindFood("Greek Yogurt")}
	case "lunch":
		return []*FoodItem{FindFood("Chicken Breast"), FindFood("Brown Rice"), FindFood("Broccoli")}
	case "dinner":
		return []*FoodItem{FindFood("Salmon"), FindFood("Sweet Potato"), FindFood("Broccoli")}
	default:
		return []*FoodItem{FindFood("Almonds")}
	}
}

// GenerateMealPlan builds breakfast/lunch/dinner entries for every day in
// the range, portioned against the user's calorie goal. Goals must exist
// before a plan can be generated.
func (s *NutritionService) GenerateMealPlan(userID uint, startDate, endDate, fitnessGoal string) (*models.MealPlan, error) {
	goal, err := s.GetGoal(userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.New("nutrition goals must be set before generating a meal plan")
	}

	start, err := utils.ParseDay(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := utils.ParseDay(endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return nil, errors.New("end date is before start date")
	}

	plan := models.MealPlan{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.ToUpper(strings.ReplaceAll(fitnessGoal, "_", " ")) + " Plan",
		Goal:      fitnessGoal,
		StartDate: startDate,
		EndDate:   endDate,
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := utils.DayKey(d)
		for _, mealType := range []string{"breakfast", "lunch", "dinner"} {
			plan.Meals = append(plan.Meals, s.generateMeal(plan.ID, dateStr, mealType, goal.Calories))
		}
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *NutritionService) generateMeal(planID, date, mealType string, dailyCalories float64) models.MealPlanEntry {
	target := dailyCalories * mealCalorieShare[mealType]
	entry := models.MealPlanEntry{
		ID:         date + "-" + mealType,
		MealPlanID: planID,
		Date:       date,
		MealType:   mealType,
	}

	for _, food := range mealFoodsForType(mealType) {
		if food == nil || entry.TotalCalories >= target {
			continue
		}
		qty := math.Min(2, math.Ceil((target-entry.TotalCalories)/food.Calories))
		mf := models.MealPlanFood{
			Name:     food.Name,
			Calories: food.Calories * qty,
			Protein:  food.Protein * qty,
			Carbs:    food.Carbs * qty,
			Fat:      food.Fat * qty,
			Quantity: qty,
		}
		entry.Foods = append(entry.Foods, mf)
		entry.TotalCalories += mf.Calories
		entry.TotalProtein += mf.Protein
		entry.TotalCarbs += mf.Carbs
		entry.TotalFat += mf.Fat
	}
	return entry
}

func (s *NutritionService) GetMealPlans(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.
		Preload("Meals").
		Preload("Meals.Foods").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// ---------- photo recognition ----------

// RecognizeFood detects labels in a meal photo and maps them back onto the
// foods table so the client can prefill a log entry.
func (s *NutritionService) RecognizeFood(base64Img string) ([]FoodItem, []string, error) {
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, nil, err
	}

	var matches []FoodItem
	seen := map[string]bool{}
	for _, label := range labels {
		if f := FindFood(label); f != nil && !seen[f.Name] {
			seen[f.Name] = true
			matches = append(matches, *f)
		}
	}
	return matches, labels, nil
}
