package app

import (
	"math"
	"strconv"
	"strings"

	"hotel_packages/internal/domain"
)

// ReadEntries extracts the valid entries of one city, in input order.
// Rows with a blank description or a price that is not a finite number >= 0
// are skipped; they count as "not filled in yet", not as errors.
func ReadEntries(rows []domain.RawRow) []domain.HotelEntry {
	out := make([]domain.HotelEntry, 0, len(rows))
	for _, r := range rows {
		desc := strings.TrimSpace(r.Description)
		if desc == "" {
			continue
		}
		price, ok := parsePrice(string(r.Price))
		if !ok {
			continue
		}
		out = append(out, domain.HotelEntry{Description: desc, Price: price})
	}
	return out
}

func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	// ParseFloat takes hex floats; a typed price never is one.
	if hasHexPrefix(strings.TrimLeft(s, "+-")) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// ParseCount reads a guest count leniently: leading integer digits only,
// anything unparseable is 0, negatives clamp to 0 and counts too large for
// an int saturate at math.MaxInt.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// only overflow gets here
		return math.MaxInt
	}
	return n
}

// ReadGuests parses the adults and paying-children fields of a form.
func ReadGuests(adults, children string) domain.GuestCount {
	return domain.GuestCount{Adults: ParseCount(adults), Children: ParseCount(children)}
}
