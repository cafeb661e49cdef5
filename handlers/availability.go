package handlers

import (
	"net/http"

	"groupmeet/services/availability"
	"groupmeet/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityHandler exposes the computed week grid and free slots.
type AvailabilityHandler struct {
	Engine availability.AvailabilityEngine
}

func NewAvailabilityHandler(engine availability.AvailabilityEngine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetWeekGridHandler returns the heatmap grid: per-cell busy member names.
func (h *AvailabilityHandler) GetWeekGridHandler(c *gin.Context) {
	result, err := h.Engine.WeekAvailability(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result.Grid)
}

// GetFreeSlotsHandler returns the 60-minute windows free for the whole
// group, grouped per day; days with no window are absent.
func (h *AvailabilityHandler) GetFreeSlotsHandler(c *gin.Context) {
	result, err := h.Engine.WeekAvailability(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"freeSlots": result.FreeSlots})
}
