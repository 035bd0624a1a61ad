package controllers

import (
	"net/http"

	"fittrack/middlewares"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{push: push}
}

// RegisterDevice stores a device token so badge unlocks can be pushed.
func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	if dc.push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
		return
	}

	var input struct {
		Platform string `json:"platform" binding:"required,oneof=ios android"`
		Token    string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device, err := dc.push.RegisterDevice(middlewares.UserID(c), input.Platform, input.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"device_id": device.ID})
}
