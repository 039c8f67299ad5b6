package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/service"
)

type HRVHandler struct {
	hrvService service.HRVService
}

// NewHRVHandler creates a new HRV handler
func NewHRVHandler(hrvService service.HRVService) *HRVHandler {
	return &HRVHandler{hrvService: hrvService}
}

// CreateReading handles POST /api/v1/hrv
func (h *HRVHandler) CreateReading(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.CreateHRVRequest
	if !bindJSON(c, &req) {
		return
	}

	reading, err := h.hrvService.CreateReading(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "HRV reading", "")
		return
	}
	c.JSON(http.StatusCreated, reading)
}

// ListReadings handles GET /api/v1/hrv?limit=N
func (h *HRVHandler) ListReadings(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	readings, err := h.hrvService.ListReadings(c.Request.Context(), userID, limit)
	if err != nil {
		writeServiceError(c, err, "HRV reading", "")
		return
	}
	c.JSON(http.StatusOK, models.NewListResponse(readings))
}
