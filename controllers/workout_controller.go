package controllers

import (
	"net/http"
	"time"

	"fittrack/middlewares"
	"fittrack/services"
	"fittrack/utils"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{workouts: workouts}
}

func (wc *WorkoutController) GetExerciseCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"exercises": services.ExerciseCatalog})
}

func (wc *WorkoutController) GeneratePlan(c *gin.Context) {
	var input struct {
		Goal      string `json:"goal" binding:"required"`
		StartDate string `json:"start_date"`
		Weeks     int    `json:"weeks"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.StartDate == "" {
		input.StartDate = utils.DayKey(time.Now())
	}

	plan, err := wc.workouts.GeneratePlan(middlewares.UserID(c), input.Goal, input.StartDate, input.Weeks)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (wc *WorkoutController) GetPlans(c *gin.Context) {
	plans, err := wc.workouts.GetPlans(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (wc *WorkoutController) GetSessions(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query params required"})
		return
	}

	sessions, err := wc.workouts.GetSessions(middlewares.UserID(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (wc *WorkoutController) GetTodaysWorkout(c *gin.Context) {
	session, err := wc.workouts.GetTodaysWorkout(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no workout scheduled today"})
		return
	}
	c.JSON(http.StatusOK, session)
}

type exerciseToggleInput struct {
	SessionID  string `json:"session_id" binding:"required"`
	ExerciseID string `json:"exercise_id" binding:"required"`
}

func (wc *WorkoutController) CompleteExercise(c *gin.Context) {
	var input exerciseToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := wc.workouts.CompleteExercise(middlewares.UserID(c), input.SessionID, input.ExerciseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (wc *WorkoutController) UncompleteExercise(c *gin.Context) {
	var input exerciseToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := wc.workouts.UncompleteExercise(middlewares.UserID(c), input.SessionID, input.ExerciseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (wc *WorkoutController) GetProgress(c *gin.Context) {
	start := c.DefaultQuery("start", utils.DaysAgo(7))
	end := c.DefaultQuery("end", utils.DayKey(time.Now()))

	progress, err := wc.workouts.GetProgress(middlewares.UserID(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func (wc *WorkoutController) GetWeeklySummary(c *gin.Context) {
	summary, err := wc.workouts.GetWeeklySummary(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
