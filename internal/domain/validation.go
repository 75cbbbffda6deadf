package domain

import "strings"

type ValidationKind int

const (
	ValidationOK ValidationKind = iota
	ValidationNoPayingGuests
	ValidationMissingEntries
)

func (k ValidationKind) String() string {
	switch k {
	case ValidationNoPayingGuests:
		return "no_paying_guests"
	case ValidationMissingEntries:
		return "missing_entries"
	}
	return "ok"
}

// ValidationResult gates the combiner. Missing is set only for ValidationMissingEntries.
type ValidationResult struct {
	Kind    ValidationKind
	Missing []Side
}

func (v ValidationResult) OK() bool { return v.Kind == ValidationOK }

// Err returns the typed error for a failed result, nil when OK.
func (v ValidationResult) Err() error {
	switch v.Kind {
	case ValidationNoPayingGuests:
		return ErrNoPayingGuests
	case ValidationMissingEntries:
		return &MissingEntriesError{Sides: v.Missing}
	}
	return nil
}

// Message returns the user-facing text for a failed result. cityA/cityB are
// the display names of the two cities.
func (v ValidationResult) Message(cityA, cityB string) string {
	switch v.Kind {
	case ValidationNoPayingGuests:
		return "Error: Please enter at least one Adult or Child (5-12) to calculate per-person pricing."
	case ValidationMissingEntries:
		names := make([]string, 0, len(v.Missing))
		for _, s := range v.Missing {
			if s == SideA {
				names = append(names, cityA)
			} else {
				names = append(names, cityB)
			}
		}
		return "Error: Please add at least one valid hotel (with summary and price) to the " +
			strings.Join(names, " and ") + " list" + plural(len(names)) + "."
	}
	return ""
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
