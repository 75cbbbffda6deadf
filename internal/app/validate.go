package app

import "hotel_packages/internal/domain"

// Validate must pass before Combine is called. A zero guest count is
// reported ahead of missing entries.
func Validate(guests int, a, b []domain.HotelEntry) domain.ValidationResult {
	if guests <= 0 {
		return domain.ValidationResult{Kind: domain.ValidationNoPayingGuests}
	}
	var missing []domain.Side
	if len(a) == 0 {
		missing = append(missing, domain.SideA)
	}
	if len(b) == 0 {
		missing = append(missing, domain.SideB)
	}
	if len(missing) > 0 {
		return domain.ValidationResult{Kind: domain.ValidationMissingEntries, Missing: missing}
	}
	return domain.ValidationResult{Kind: domain.ValidationOK}
}
