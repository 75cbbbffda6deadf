package domain

import (
	"math"
	"strings"
)

// Package is one combination of a city A entry and a city B entry.
// Prices are unrounded; rounding happens only when formatting.
type Package struct {
	CityA          HotelEntry `json:"cityA"`
	CityB          HotelEntry `json:"cityB"`
	TotalPrice     float64    `json:"totalPrice"`
	PerPersonPrice float64    `json:"perPersonPrice"`
}

// GuestCount holds the paying guests of a booking.
type GuestCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"` // paying children (5-12)
}

// Total is the number of paying guests, saturating at math.MaxInt.
func (g GuestCount) Total() int {
	if g.Adults > math.MaxInt-g.Children {
		return math.MaxInt
	}
	return g.Adults + g.Children
}

// ItineraryOrder decides which city is rendered first. It never affects pricing.
type ItineraryOrder string

const (
	CityAFirst ItineraryOrder = "cityA-first"
	CityBFirst ItineraryOrder = "cityB-first"
)

// ParseItineraryOrder accepts the canonical values, or a city name matched
// case-insensitively against cityA/cityB. Anything else is CityAFirst.
func ParseItineraryOrder(v, cityA, cityB string) ItineraryOrder {
	s := strings.ToLower(strings.TrimSpace(v))
	switch {
	case s == strings.ToLower(string(CityBFirst)):
		return CityBFirst
	case cityB != "" && s == strings.ToLower(cityB):
		return CityBFirst
	}
	return CityAFirst
}
