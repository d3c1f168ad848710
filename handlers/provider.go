package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	availabilityRepo "telecare/database/repository/availability"
	feeRepo "telecare/database/repository/fees"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/services/scheduling"
	"telecare/utils"
)

// ProviderHandler manages provider profiles and their bookable schedule.
type ProviderHandler struct {
	Providers    providerRepo.ProviderRepository
	Availability availabilityRepo.AvailabilityRepository
	Fees         feeRepo.FeeRepository
}

// NewProviderHandler constructs a ProviderHandler.
func NewProviderHandler(
	providers providerRepo.ProviderRepository,
	availability availabilityRepo.AvailabilityRepository,
	fees feeRepo.FeeRepository,
) *ProviderHandler {
	return &ProviderHandler{Providers: providers, Availability: availability, Fees: fees}
}

// GetProviderHandler returns a provider's public profile.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	id := c.Param("id")
	prov, err := h.Providers.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, prov)
}

// UpsertProviderHandler creates or updates the provider profile at the given
// id. Creation timestamps survive updates.
func (h *ProviderHandler) UpsertProviderHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpsertProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prov := models.Provider{
		ID:        id,
		Name:      req.Name,
		Specialty: req.Specialty,
		Timezone:  req.Timezone,
		Currency:  req.Currency,
		Status:    req.Status,
	}
	if prov.Status == "" {
		prov.Status = "active"
	}
	if existing, err := h.Providers.GetByID(c.Request.Context(), id); err == nil {
		prov.CreatedAt = existing.CreatedAt
	}

	stored, err := h.Providers.Upsert(c.Request.Context(), prov)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, stored)
}

// SetupAvailabilityHandler replaces the provider's weekly availability windows.
func (h *ProviderHandler) SetupAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("id")
	var req models.SetupAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if _, err := h.Providers.GetByID(c.Request.Context(), providerID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}

	for i, w := range req.Windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			utils.JSONError(c, http.StatusBadRequest, "invalid window",
				fmt.Sprintf("window %d: day_of_week must be 0-6; got %d", i+1, w.DayOfWeek))
			return
		}
		if !scheduling.ValidTimeOfDay(w.StartTime) || !scheduling.ValidTimeOfDay(w.EndTime) {
			utils.JSONError(c, http.StatusBadRequest, "invalid window",
				fmt.Sprintf("window %d: times must be HH:MM:SS", i+1))
			return
		}
		if w.StartTime >= w.EndTime {
			utils.JSONError(c, http.StatusBadRequest, "invalid window",
				fmt.Sprintf("window %d: start_time must be before end_time", i+1))
			return
		}
	}

	ids, err := h.Availability.ReplaceForProvider(c.Request.Context(), providerID, req.Windows)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"windowIds": ids})
}

// GetAvailabilityHandler returns the provider's full weekly schedule,
// including inactive windows, for the profile management screen.
func (h *ProviderHandler) GetAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("id")
	windows, err := h.Availability.GetByProviderID(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// SetupFeesHandler replaces the provider's fee table.
func (h *ProviderHandler) SetupFeesHandler(c *gin.Context) {
	providerID := c.Param("id")
	var req models.SetupFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if _, err := h.Providers.GetByID(c.Request.Context(), providerID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}

	activeDurations := map[int]bool{}
	for i, f := range req.Fees {
		if f.Duration <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid fee",
				fmt.Sprintf("fee %d: duration must be a positive number of minutes", i+1))
			return
		}
		if f.Fee < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid fee",
				fmt.Sprintf("fee %d: amount must not be negative", i+1))
			return
		}
		if f.IsActive {
			// One active fee per duration; the engine resolves by first match.
			if activeDurations[f.Duration] {
				utils.JSONError(c, http.StatusBadRequest, "invalid fee",
					fmt.Sprintf("fee %d: duplicate active fee for duration %d", i+1, f.Duration))
				return
			}
			activeDurations[f.Duration] = true
		}
	}

	ids, err := h.Fees.ReplaceForProvider(c.Request.Context(), providerID, req.Fees)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save fees", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"feeIds": ids})
}
