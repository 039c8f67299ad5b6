package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/service"
)

type HabitHandler struct {
	habitService service.HabitService
}

// NewHabitHandler creates a new habit recipe handler
func NewHabitHandler(habitService service.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// CreateAnchor handles POST /api/v1/habits/anchors
func (h *HabitHandler) CreateAnchor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.CreateHabitAnchorRequest
	if !bindJSON(c, &req) {
		return
	}

	anchor, err := h.habitService.CreateAnchor(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "habit recipe", "")
		return
	}
	c.JSON(http.StatusCreated, anchor)
}

// ListAnchors handles GET /api/v1/habits/anchors
func (h *HabitHandler) ListAnchors(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	anchors, err := h.habitService.ListAnchors(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "habit recipe", "")
		return
	}
	c.JSON(http.StatusOK, models.NewListResponse(anchors))
}

// GetAnchor handles GET /api/v1/habits/anchors/:id
func (h *HabitHandler) GetAnchor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	anchor, err := h.habitService.GetAnchor(c.Request.Context(), userID, id)
	if err != nil {
		writeServiceError(c, err, "habit recipe", id)
		return
	}
	c.JSON(http.StatusOK, anchor)
}

// UpdateAnchor handles PUT /api/v1/habits/anchors/:id
func (h *HabitHandler) UpdateAnchor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateHabitAnchorRequest
	if !bindJSON(c, &req) {
		return
	}

	anchor, err := h.habitService.UpdateAnchor(c.Request.Context(), userID, id, &req)
	if err != nil {
		writeServiceError(c, err, "habit recipe", id)
		return
	}
	c.JSON(http.StatusOK, anchor)
}

// ToggleAnchor handles POST /api/v1/habits/anchors/:id/toggle
func (h *HabitHandler) ToggleAnchor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	anchor, err := h.habitService.ToggleAnchor(c.Request.Context(), userID, id)
	if err != nil {
		writeServiceError(c, err, "habit recipe", id)
		return
	}
	c.JSON(http.StatusOK, anchor)
}

// DeleteAnchor handles DELETE /api/v1/habits/anchors/:id
func (h *HabitHandler) DeleteAnchor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.habitService.DeleteAnchor(c.Request.Context(), userID, id); err != nil {
		writeServiceError(c, err, "habit recipe", id)
		return
	}
	c.Status(http.StatusNoContent)
}
