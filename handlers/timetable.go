package handlers

import (
	"net/http"

	"groupmeet/services/timetable"
	"groupmeet/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// TimetableHandler exposes per-member timetable editing.
type TimetableHandler struct {
	Service timetable.TimetableService
}

func NewTimetableHandler(svc timetable.TimetableService) *TimetableHandler {
	return &TimetableHandler{Service: svc}
}

// UpdateMemberTimetableHandler replaces a member's pasted timetable text.
// The full text is re-parsed; skipped lines come back as diagnostics so the
// caller can show what was not understood.
func (h *TimetableHandler) UpdateMemberTimetableHandler(c *gin.Context) {
	var input struct {
		Raw string `json:"raw"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	tt, skipped, err := h.Service.UpdateMemberTimetable(c.Request.Context(), c.Param("groupID"), c.Param("member"), input.Raw)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update timetable", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"timetable": tt,
		"skipped":   skipped,
	})
}

// GetMemberTimetableHandler returns a member's stored timetable; members
// without one get an empty timetable.
func (h *TimetableHandler) GetMemberTimetableHandler(c *gin.Context) {
	tt, err := h.Service.GetMemberTimetable(c.Request.Context(), c.Param("groupID"), c.Param("member"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch timetable", err.Error())
		return
	}
	c.JSON(http.StatusOK, tt)
}

// DeleteMemberTimetableHandler removes a member's stored timetable.
func (h *TimetableHandler) DeleteMemberTimetableHandler(c *gin.Context) {
	if err := h.Service.RemoveMemberTimetable(c.Request.Context(), c.Param("groupID"), c.Param("member")); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete timetable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "timetable removed"})
}
