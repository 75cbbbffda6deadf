package domain

import "strings"

// HotelEntry is one validated, priced accommodation option for a city.
type HotelEntry struct {
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
}

// RawRow is one editable input row as typed by the agent.
type RawRow struct {
	Description string `json:"description" yaml:"description"`
	Price       Field  `json:"price" yaml:"price"`
}

// RowList is the ordered, position-indexed list of input rows for one city.
type RowList []RawRow

// Add appends an empty row and returns its position.
func (l *RowList) Add() int {
	*l = append(*l, RawRow{})
	return len(*l) - 1
}

// Remove drops the row at position i. Out-of-range positions are ignored.
func (l *RowList) Remove(i int) {
	if i < 0 || i >= len(*l) {
		return
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
}

// Set replaces the row at position i. Out-of-range positions are ignored.
func (l RowList) Set(i int, r RawRow) {
	if i < 0 || i >= len(l) {
		return
	}
	l[i] = r
}

// Side identifies one of the two cities of a package.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

func sidesString(sides []Side) string {
	parts := make([]string, 0, len(sides))
	for _, s := range sides {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}
