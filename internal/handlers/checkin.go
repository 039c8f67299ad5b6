package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habitpulse/backend/internal/apierror"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/service"
)

type CheckInHandler struct {
	checkInService service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkInService service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// writeUpserted returns 201 for new check-ins and 200 for existing ones
func writeUpserted(c *gin.Context, checkIn *models.CheckIn, created bool) {
	if created {
		c.JSON(http.StatusCreated, checkIn)
		return
	}
	c.JSON(http.StatusOK, checkIn)
}

// CheckInToday handles POST /api/v1/checkins/today
func (h *CheckInHandler) CheckInToday(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	checkIn, created, err := h.checkInService.GetOrCreateToday(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "check-in", "today")
		return
	}
	writeUpserted(c, checkIn, created)
}

// UpsertCheckIn handles POST /api/v1/checkins
func (h *CheckInHandler) UpsertCheckIn(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.CheckInRequest
	if !bindJSON(c, &req) {
		return
	}

	checkIn, created, err := h.checkInService.UpsertToday(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "check-in", "today")
		return
	}
	writeUpserted(c, checkIn, created)
}

// ListCheckIns handles GET /api/v1/checkins?days=N
func (h *CheckInHandler) ListCheckIns(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "days", Message: "must be a positive integer", Code: "invalid_type"},
			}))
			return
		}
		days = n
	}

	checkIns, err := h.checkInService.ListRecent(c.Request.Context(), userID, days)
	if err != nil {
		writeServiceError(c, err, "check-in", "")
		return
	}
	c.JSON(http.StatusOK, models.NewListResponse(checkIns))
}

// GetCheckIn handles GET /api/v1/checkins/:id
func (h *CheckInHandler) GetCheckIn(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	checkIn, err := h.checkInService.GetCheckIn(c.Request.Context(), userID, id)
	if err != nil {
		writeServiceError(c, err, "check-in", id)
		return
	}
	c.JSON(http.StatusOK, checkIn)
}

// UpdateCheckIn handles PUT /api/v1/checkins/:id
func (h *CheckInHandler) UpdateCheckIn(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateCheckInRequest
	if !bindJSON(c, &req) {
		return
	}

	checkIn, err := h.checkInService.UpdateCheckIn(c.Request.Context(), userID, id, &req)
	if err != nil {
		writeServiceError(c, err, "check-in", id)
		return
	}
	c.JSON(http.StatusOK, checkIn)
}

// DeleteCheckIn handles DELETE /api/v1/checkins/:id
func (h *CheckInHandler) DeleteCheckIn(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.checkInService.DeleteCheckIn(c.Request.Context(), userID, id); err != nil {
		writeServiceError(c, err, "check-in", id)
		return
	}
	c.Status(http.StatusNoContent)
}
