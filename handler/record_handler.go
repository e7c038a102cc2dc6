package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ophelia-lia/customer-system/realtime"
	recordpkg "github.com/Ophelia-lia/customer-system/record"
	settingspkg "github.com/Ophelia-lia/customer-system/settings"
)

// RecordHandler bundles dependencies for customer record HTTP handlers.
type RecordHandler struct {
	records  recordpkg.Service
	settings settingspkg.Service
	hub      *realtime.Hub
}

// NewRecordHandler constructs a RecordHandler.
func NewRecordHandler(records recordpkg.Service, settings settingspkg.Service, hub *realtime.Hub) *RecordHandler {
	return &RecordHandler{records: records, settings: settings, hub: hub}
}

// LoadData returns every stored document plus the settings slots.
func (h *RecordHandler) LoadData() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		docs, err := h.records.LoadAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load data", "detail": err.Error()})
			return
		}
		appSettings, nextID, err := h.settings.Load(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"customers":      docs,
			"settings":       appSettings,
			"nextCustomerId": nextID,
		})
	}
}

type saveDataPayload struct {
	Customers      []json.RawMessage `json:"customers"`
	Settings       json.RawMessage   `json:"settings"`
	NextCustomerID *int              `json:"nextCustomerId"`
}

// SaveData synchronizes the store against a full client snapshot and then
// replaces the submitted settings slots.
func (h *RecordHandler) SaveData() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p saveDataPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		count, err := h.records.SyncAll(ctx, p.Customers)
		if err != nil {
			if errors.Is(err, recordpkg.ErrMissingID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save data", "detail": err.Error()})
			return
		}
		if err := h.settings.Update(ctx, p.Settings, p.NextCustomerID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings", "detail": err.Error()})
			return
		}

		h.hub.Broadcast("customers_synced", gin.H{"count": count})
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": fmt.Sprintf("saved %d customers", count)})
	}
}

// UpsertCustomer replaces or creates one record from a single document. The
// URL id is the key.
func (h *RecordHandler) UpsertCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		doc, err := c.GetRawData()
		if err != nil || len(doc) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
			return
		}
		if !json.Valid(doc) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request body is not valid JSON"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.records.Upsert(ctx, id, doc); err != nil {
			if errors.Is(err, recordpkg.ErrMissingID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save customer", "detail": err.Error()})
			return
		}

		h.hub.Broadcast("customer_updated", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": fmt.Sprintf("customer %s saved", id)})
	}
}

// DeleteCustomer removes one record. Deletion is physical and immediate.
func (h *RecordHandler) DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.records.Delete(ctx, id); err != nil {
			if errors.Is(err, recordpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer", "detail": err.Error()})
			return
		}

		h.hub.Broadcast("customer_deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": fmt.Sprintf("customer %s deleted", id)})
	}
}
