package controllers

import (
	"net/http"
	"strconv"

	"fittrack/middlewares"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

func (nc *NutritionController) GetGoal(c *gin.Context) {
	goal, err := nc.nutrition.GetGoal(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if goal == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no nutrition goals set"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (nc *NutritionController) SetGoal(c *gin.Context) {
	var input struct {
		Calories float64 `json:"calories" binding:"required,gt=0"`
		Protein  float64 `json:"protein" binding:"required,gt=0"`
		Carbs    float64 `json:"carbs" binding:"required,gt=0"`
		Fat      float64 `json:"fat" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := nc.nutrition.SetGoal(middlewares.UserID(c), input.Calories, input.Protein, input.Carbs, input.Fat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

type FoodEntryInput struct {
	Date     string  `json:"date" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"required,gte=0"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	MealType string  `json:"meal_type"`
}

func (nc *NutritionController) AddEntry(c *gin.Context) {
	var input FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := nc.nutrition.AddFoodEntry(
		middlewares.UserID(c),
		input.Date, input.Name,
		input.Calories, input.Protein, input.Carbs, input.Fat,
		input.Quantity, input.Unit, input.MealType,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (nc *NutritionController) GetDailyTotals(c *gin.Context) {
	totals, err := nc.nutrition.GetDailyTotals(middlewares.UserID(c), dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (nc *NutritionController) DeleteEntry(c *gin.Context) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := nc.nutrition.DeleteFoodEntry(middlewares.UserID(c), uint(entryID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

func (nc *NutritionController) SearchFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": services.SearchFoods(c.Query("q"))})
}

func (nc *NutritionController) GenerateMealPlan(c *gin.Context) {
	var input struct {
		StartDate   string `json:"start_date" binding:"required"`
		EndDate     string `json:"end_date" binding:"required"`
		FitnessGoal string `json:"fitness_goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := nc.nutrition.GenerateMealPlan(middlewares.UserID(c), input.StartDate, input.EndDate, input.FitnessGoal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (nc *NutritionController) GetMealPlans(c *gin.Context) {
	plans, err := nc.nutrition.GetMealPlans(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_plans": plans})
}

func (nc *NutritionController) RecognizeFood(c *gin.Context) {
	var input struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches, labels, err := nc.nutrition.RecognizeFood(input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches, "labels": labels})
}
