package scheduling

import (
	"sort"

	"telecare/models"
)

// ResolveFee returns the first active fee matching the duration, or nil when
// no active fee exists. Nil means "price unavailable" and must never be
// rendered as zero or substituted with an unrelated fee.
func ResolveFee(duration int, fees []models.ServiceFee) *models.ServiceFee {
	if duration <= 0 {
		return nil
	}
	for i := range fees {
		if fees[i].Duration == duration && fees[i].IsActive {
			return &fees[i]
		}
	}
	return nil
}

// ActiveFees filters a provider's fee table down to active entries, ordered by
// duration for display.
func ActiveFees(fees []models.ServiceFee) []models.ServiceFee {
	active := []models.ServiceFee{}
	for _, f := range fees {
		if f.IsActive {
			active = append(active, f)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Duration < active[j].Duration
	})
	return active
}
