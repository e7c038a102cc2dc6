package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	visionpkg "github.com/Ophelia-lia/customer-system/vision"
)

type VisionHandler struct {
	service visionpkg.Service
}

func NewVisionHandler(svc visionpkg.Service) *VisionHandler { return &VisionHandler{service: svc} }

type parseReportPayload struct {
	Image    string `json:"image" binding:"required"`
	MimeType string `json:"mimeType"`
}

// ParseReport forwards a report image to the vision API and returns the
// extracted structure.
func (h *VisionHandler) ParseReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p parseReportPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
		defer cancel()
		report, err := h.service.ParseReport(ctx, visionpkg.ParseRequest{
			ImageBase64: p.Image,
			MimeType:    p.MimeType,
		})
		if err != nil {
			if errors.Is(err, visionpkg.ErrNotConfigured) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse report", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"report": report})
	}
}
