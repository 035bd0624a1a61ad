package controllers

import (
	"net/http"
	"strconv"

	"fittrack/middlewares"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	gam *services.GamificationService
}

func NewGamificationController(gam *services.GamificationService) *GamificationController {
	return &GamificationController{gam: gam}
}

func limitParam(c *gin.Context, fallback int) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func (gc *GamificationController) GetProfile(c *gin.Context) {
	profile, err := gc.gam.GetProfile(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (gc *GamificationController) GetBadges(c *gin.Context) {
	badges, err := gc.gam.GetUserBadges(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

func (gc *GamificationController) GetRecentBadges(c *gin.Context) {
	badges, err := gc.gam.GetRecentBadges(middlewares.UserID(c), limitParam(c, 5))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

func (gc *GamificationController) GetBadgeCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"badges": services.BadgeCatalog})
}

func (gc *GamificationController) MarkBadgesSeen(c *gin.Context) {
	var input struct {
		BadgeIDs []string `json:"badge_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.gam.MarkBadgesAsSeen(middlewares.UserID(c), input.BadgeIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "badges marked as seen"})
}

func (gc *GamificationController) GetStreaks(c *gin.Context) {
	streaks, err := gc.gam.GetStreaks(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, streaks)
}

func (gc *GamificationController) GetNextBadge(c *gin.Context) {
	progress, err := gc.gam.GetNextBadgeProgress(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if progress == nil {
		c.JSON(http.StatusOK, gin.H{"message": "all badges earned"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (gc *GamificationController) GetActivityLog(c *gin.Context) {
	logs, err := gc.gam.GetActivityLogs(middlewares.UserID(c), limitParam(c, 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": logs})
}

func (gc *GamificationController) GetLeaderboard(c *gin.Context) {
	board, err := gc.gam.GetLeaderboard(limitParam(c, 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": board})
}
