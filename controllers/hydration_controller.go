package controllers

import (
	"net/http"
	"time"

	"fittrack/middlewares"
	"fittrack/services"
	"fittrack/utils"

	"github.com/gin-gonic/gin"
)

type HydrationController struct {
	hydration *services.HydrationService
}

func NewHydrationController(hydration *services.HydrationService) *HydrationController {
	return &HydrationController{hydration: hydration}
}

func dateParam(c *gin.Context) string {
	if date := c.Query("date"); date != "" {
		return date
	}
	return utils.DayKey(time.Now())
}

func (hc *HydrationController) AddWater(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
		Goal   float64 `json:"goal"`
		Date   string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Date == "" {
		input.Date = utils.DayKey(time.Now())
	}

	entry, err := hc.hydration.AddWater(middlewares.UserID(c), input.Date, input.Amount, input.Goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (hc *HydrationController) GetDay(c *gin.Context) {
	entry, err := hc.hydration.GetForDate(middlewares.UserID(c), dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entry == nil {
		c.JSON(http.StatusOK, gin.H{"amount": 0, "goal": services.DefaultHydrationGoalML})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (hc *HydrationController) History(c *gin.Context) {
	entries, err := hc.hydration.History(middlewares.UserID(c), limitParam(c, 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
