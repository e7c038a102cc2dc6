package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ophelia-lia/customer-system/realtime"
	settingspkg "github.com/Ophelia-lia/customer-system/settings"
)

type SettingsHandler struct {
	service settingspkg.Service
	hub     *realtime.Hub
}

func NewSettingsHandler(svc settingspkg.Service, hub *realtime.Hub) *SettingsHandler {
	return &SettingsHandler{service: svc, hub: hub}
}

type updateSettingsPayload struct {
	Settings       json.RawMessage `json:"settings"`
	NextCustomerID *int            `json:"nextCustomerId"`
}

// UpdateSettings replaces the submitted slots wholesale; absent slots stay
// untouched.
func (h *SettingsHandler) UpdateSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p updateSettingsPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.Update(ctx, p.Settings, p.NextCustomerID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings", "detail": err.Error()})
			return
		}

		h.hub.Broadcast("settings_updated", gin.H{})
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "settings updated"})
	}
}
