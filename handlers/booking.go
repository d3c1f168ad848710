package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"telecare/models"
	"telecare/services/booking"
	"telecare/utils"
)

// BookingHandler exposes the booking session flow over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

func patientIDFromContext(c *gin.Context) string {
	if v, ok := c.Get("patientID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// InitiateSession starts a booking session for a provider.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	snapshot, err := h.Service.InitiateSession(c.Request.Context(), patientIDFromContext(c), input.ProviderID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetDate records the chosen calendar date.
func (h *BookingHandler) SetDate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	snapshot, err := h.Service.SetDate(c.Request.Context(), sessionID, input.Date)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetDuration records the chosen appointment duration.
func (h *BookingHandler) SetDuration(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Duration int `json:"duration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	snapshot, err := h.Service.SetDuration(c.Request.Context(), sessionID, input.Duration)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetTimeSlot records the chosen slot; an empty slotId clears it.
func (h *BookingHandler) SetTimeSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		SlotID string `json:"slotId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	snapshot, err := h.Service.SetTimeSlot(c.Request.Context(), sessionID, input.SlotID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetSession returns the current session snapshot.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	snapshot, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ConfirmBooking finalizes the session into an appointment.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input models.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Service.ConfirmBooking(c.Request.Context(), sessionID, input.Reason)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	h.Logger.Info("booking confirmed", zap.String("appointmentID", appt.ID))
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelSession discards an in-progress session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrProviderNotFound):
		utils.JSONError(c, http.StatusNotFound, "provider not found", "")
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidDuration):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, booking.ErrSlotNotAvailable),
		errors.Is(err, booking.ErrSelectionIncomplete),
		errors.Is(err, booking.ErrReasonRequired),
		errors.Is(err, booking.ErrFeeUnavailable):
		utils.JSONError(c, http.StatusUnprocessableEntity, "cannot complete booking step", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking step failed", err.Error())
	}
}
