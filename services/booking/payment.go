package booking

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"telecare/models"
)

// PaymentHandler creates the payment intent backing a confirmed appointment.
type PaymentHandler interface {
	CreatePaymentIntent(ctx context.Context, appt models.Appointment) (string, error)
}

// StripePaymentHandler implements PaymentHandler via Stripe payment intents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler constructs a StripePaymentHandler. The Stripe API
// key is set process-wide in main.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) CreatePaymentIntent(ctx context.Context, appt models.Appointment) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(appt.Fee * 100))), // minor units
		Currency: stripe.String(appt.Currency),
	}
	params.AddMetadata("appointmentId", appt.ID)
	params.AddMetadata("providerId", appt.ProviderID)
	params.AddMetadata("date", appt.Date)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent creation failed: %w", err)
	}

	h.logger.Info("payment intent created",
		zap.String("paymentIntentID", intent.ID),
		zap.String("appointmentID", appt.ID))
	return intent.ID, nil
}
