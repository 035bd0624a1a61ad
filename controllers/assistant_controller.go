package controllers

import (
	"net/http"

	"fittrack/middlewares"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	assistant *services.AssistantService
}

func NewAssistantController(assistant *services.AssistantService) *AssistantController {
	return &AssistantController{assistant: assistant}
}

func (ac *AssistantController) Chat(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := ac.assistant.Chat(middlewares.UserID(c), input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (ac *AssistantController) History(c *gin.Context) {
	msgs, err := ac.assistant.History(middlewares.UserID(c), limitParam(c, 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (ac *AssistantController) HydrationReminder(c *gin.Context) {
	msg, err := ac.assistant.HydrationReminder(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (ac *AssistantController) Motivation(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required,oneof=missed completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := ac.assistant.WorkoutMotivation(middlewares.UserID(c), input.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (ac *AssistantController) Suggestion(c *gin.Context) {
	var input struct {
		Time      string `json:"time"`
		Equipment string `json:"equipment"`
	}
	_ = c.ShouldBindJSON(&input)

	msg, err := ac.assistant.WorkoutSuggestion(middlewares.UserID(c), input.Time, input.Equipment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}
