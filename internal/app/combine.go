package app

import (
	"slices"

	"hotel_packages/internal/domain"
)

// Combine builds every (a, b) pair with a as the outer loop. Prices are left
// unrounded.
func Combine(a, b []domain.HotelEntry, guests int) ([]domain.Package, error) {
	var empty []domain.Side
	if len(a) == 0 {
		empty = append(empty, domain.SideA)
	}
	if len(b) == 0 {
		empty = append(empty, domain.SideB)
	}
	if len(empty) > 0 {
		return nil, &domain.EmptyInputError{Sides: empty}
	}
	if guests <= 0 {
		return nil, domain.ErrNoPayingGuests
	}

	out := make([]domain.Package, 0, len(a)*len(b))
	for _, ea := range a {
		for _, eb := range b {
			total := ea.Price + eb.Price
			out = append(out, domain.Package{
				CityA:          ea,
				CityB:          eb,
				TotalPrice:     total,
				PerPersonPrice: total / float64(guests),
			})
		}
	}
	return out, nil
}

// Rank returns a copy of pkgs sorted by ascending total price. Ties keep
// their input order.
func Rank(pkgs []domain.Package) []domain.Package {
	out := slices.Clone(pkgs)
	slices.SortStableFunc(out, func(x, y domain.Package) int {
		switch {
		case x.TotalPrice < y.TotalPrice:
			return -1
		case x.TotalPrice > y.TotalPrice:
			return 1
		}
		return 0
	})
	return out
}
