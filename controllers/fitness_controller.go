package controllers

import (
	"net/http"
	"time"

	"fittrack/middlewares"
	"fittrack/services"
	"fittrack/utils"

	"github.com/gin-gonic/gin"
)

type FitnessController struct {
	fitness *services.FitnessService
}

func NewFitnessController(fitness *services.FitnessService) *FitnessController {
	return &FitnessController{fitness: fitness}
}

func (fc *FitnessController) Sync(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	// body is optional; default to today
	_ = c.ShouldBindJSON(&input)
	if input.Date == "" {
		input.Date = utils.DayKey(time.Now())
	}

	metric, err := fc.fitness.Sync(c.Request.Context(), middlewares.UserID(c), input.Date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metric)
}

func (fc *FitnessController) GetMetrics(c *gin.Context) {
	metric, err := fc.fitness.GetMetrics(middlewares.UserID(c), dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if metric == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no data for date"})
		return
	}
	c.JSON(http.StatusOK, metric)
}

func (fc *FitnessController) GetMetricsRange(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query params required"})
		return
	}

	metrics, err := fc.fitness.GetMetricsRange(middlewares.UserID(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

func (fc *FitnessController) GetGoals(c *gin.Context) {
	goals, err := fc.fitness.GetGoals(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (fc *FitnessController) UpdateGoals(c *gin.Context) {
	var input struct {
		DailySteps     int `json:"daily_steps"`
		DailyCalories  int `json:"daily_calories"`
		ActiveMinutes  int `json:"active_minutes"`
		WeeklyWorkouts int `json:"weekly_workouts"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := fc.fitness.UpdateGoals(middlewares.UserID(c), input.DailySteps, input.DailyCalories, input.ActiveMinutes, input.WeeklyWorkouts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (fc *FitnessController) GetWeeklyProgress(c *gin.Context) {
	week, err := fc.fitness.GetWeeklyProgress(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, week)
}

func (fc *FitnessController) GetTrends(c *gin.Context) {
	trends, err := fc.fitness.GetTrends(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trends": trends})
}
