package scheduling

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "telecare/database/repository/availability"
	feeRepo "telecare/database/repository/fees"
	"telecare/models"
)

// SchedulingService exposes the slot-derivation engine over a provider's
// stored schedule. All derivations are pure; the service only fetches the
// inputs and hands back derived values.
type SchedulingService interface {
	GetSelectableDates(ctx context.Context, providerID string) ([]string, error)
	GetSlotsForDate(ctx context.Context, providerID, date string, duration int) ([]models.GeneratedSlot, error)
	GetFees(ctx context.Context, providerID string) ([]models.ServiceFee, error)
	GetFeeForDuration(ctx context.Context, providerID string, duration int) (*models.ServiceFee, error)
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	FeeRepo          feeRepo.FeeRepository
}

func (s *DefaultSchedulingService) GetSelectableDates(ctx context.Context, providerID string) ([]string, error) {
	windows, err := s.AvailabilityRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability windows: %w", err)
	}
	return SelectableDates(time.Now(), windows), nil
}

func (s *DefaultSchedulingService) GetSlotsForDate(ctx context.Context, providerID, date string, duration int) ([]models.GeneratedSlot, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	windows, err := s.AvailabilityRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability windows: %w", err)
	}
	return SlotsForDate(day, windows, duration), nil
}

func (s *DefaultSchedulingService) GetFees(ctx context.Context, providerID string) ([]models.ServiceFee, error) {
	fees, err := s.FeeRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service fees: %w", err)
	}
	return ActiveFees(fees), nil
}

func (s *DefaultSchedulingService) GetFeeForDuration(ctx context.Context, providerID string, duration int) (*models.ServiceFee, error) {
	fees, err := s.FeeRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service fees: %w", err)
	}
	return ResolveFee(duration, fees), nil
}
