package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"telecare/models"
	"telecare/services/booking"
)

// stubBookingService returns a fixed error (or a canned snapshot) so the
// handler's error-to-status mapping can be pinned down.
type stubBookingService struct {
	err error
}

func (s *stubBookingService) snapshot() (*models.SessionSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SessionSnapshot{SessionID: "sess-1"}, nil
}

func (s *stubBookingService) InitiateSession(ctx context.Context, patientID, providerID string) (*models.SessionSnapshot, error) {
	return s.snapshot()
}

func (s *stubBookingService) SetDate(ctx context.Context, sessionID, date string) (*models.SessionSnapshot, error) {
	return s.snapshot()
}

func (s *stubBookingService) SetDuration(ctx context.Context, sessionID string, duration int) (*models.SessionSnapshot, error) {
	return s.snapshot()
}

func (s *stubBookingService) SetTimeSlot(ctx context.Context, sessionID, slotID string) (*models.SessionSnapshot, error) {
	return s.snapshot()
}

func (s *stubBookingService) GetSession(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	return s.snapshot()
}

func (s *stubBookingService) ConfirmBooking(ctx context.Context, sessionID, reason string) (*models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Appointment{ID: "appt-1", Status: "confirmed"}, nil
}

func (s *stubBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.err
}

func bookingRouter(svc booking.BookingSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())
	r.POST("/session", h.InitiateSession)
	r.PATCH("/session/:sessionID/date", h.SetDate)
	r.PATCH("/session/:sessionID/duration", h.SetDuration)
	return r
}

func TestBookingHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"unknown provider is 404", http.MethodPost, "/session", `{"providerId":"ghost"}`, booking.ErrProviderNotFound, http.StatusNotFound},
		{"redis outage on start is 500", http.MethodPost, "/session", `{"providerId":"prov-1"}`, errors.New("redis down"), http.StatusInternalServerError},
		{"malformed date is 400", http.MethodPatch, "/session/sess-1/date", `{"date":"02/02/2026"}`, booking.ErrInvalidDate, http.StatusBadRequest},
		{"bad duration is 400", http.MethodPatch, "/session/sess-1/duration", `{"duration":15}`, booking.ErrInvalidDuration, http.StatusBadRequest},
		{"expired session is 404", http.MethodPatch, "/session/sess-1/date", `{"date":"2026-02-02"}`, booking.ErrSessionNotFound, http.StatusNotFound},
		{"happy path is 200", http.MethodPost, "/session", `{"providerId":"prov-1"}`, nil, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := bookingRouter(&stubBookingService{err: tc.serviceErr})

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code, "body: %s", w.Body.String())
		})
	}
}
