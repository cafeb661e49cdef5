package handlers

import (
	"net/http"

	"groupmeet/services/group"
	"groupmeet/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// GroupHandler exposes group CRUD.
type GroupHandler struct {
	Service group.GroupService
}

func NewGroupHandler(svc group.GroupService) *GroupHandler {
	return &GroupHandler{Service: svc}
}

// CreateGroupHandler creates a new group with an initial member list.
func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	var input struct {
		Name    string   `json:"name" binding:"required"`
		Members []string `json:"members"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	grp, err := h.Service.CreateGroup(c.Request.Context(), input.Name, input.Members)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create group", err.Error())
		return
	}
	c.JSON(http.StatusCreated, grp)
}

// ListGroupsHandler returns all groups.
func (h *GroupHandler) ListGroupsHandler(c *gin.Context) {
	groups, err := h.Service.ListGroups(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list groups", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroupHandler returns one group document.
func (h *GroupHandler) GetGroupHandler(c *gin.Context) {
	grp, err := h.Service.GetGroup(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch group", err.Error())
		return
	}
	c.JSON(http.StatusOK, grp)
}

// SetMembersHandler replaces the group's member list.
func (h *GroupHandler) SetMembersHandler(c *gin.Context) {
	var input struct {
		Members []string `json:"members" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetMembers(c.Request.Context(), c.Param("groupID"), input.Members); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update members", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "members updated"})
}
