package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"telecare/services/scheduling"
	"telecare/utils"
)

// SchedulingHandler exposes the slot-derivation engine over HTTP.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Service: svc}
}

// GetSelectableDatesHandler returns the calendar dates a patient can pick for
// the provider.
func (h *SchedulingHandler) GetSelectableDatesHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "provider id is required")
		return
	}

	dates, err := h.Service.GetSelectableDates(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute selectable dates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetSlotsHandler returns the generated slots for a (date, duration) pair.
// Both query parameters are required; the engine never treats a missing
// duration as "all slots".
func (h *SchedulingHandler) GetSlotsHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.Query("date")
	durationStr := c.Query("duration")
	if providerID == "" || date == "" || durationStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "provider id, date and duration are required")
		return
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "duration must be a positive number of minutes")
		return
	}

	slots, err := h.Service.GetSlotsForDate(c.Request.Context(), providerID, date, duration)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to compute slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetFeesHandler returns the provider's active fee table.
func (h *SchedulingHandler) GetFeesHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "provider id is required")
		return
	}

	fees, err := h.Service.GetFees(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch fees", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"fees": fees})
}
