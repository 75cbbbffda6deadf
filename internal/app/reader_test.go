package app_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"hotel_packages/internal/app"
	"hotel_packages/internal/domain"
)

func TestReadEntries_DropsInvalidRows(t *testing.T) {
	rows := []domain.RawRow{
		{Description: "  ", Price: "100"},
		{Description: "Hotel A", Price: "-5"},
		{Description: "Hotel B", Price: "250"},
	}
	require.Equal(t, []domain.HotelEntry{{Description: "Hotel B", Price: 250}}, app.ReadEntries(rows))
}

func TestReadEntries_KeepsOrderAndTrims(t *testing.T) {
	rows := []domain.RawRow{
		{Description: "  Makkah Hotel A - 5 Nights\nQuad Room, Half Board \n", Price: " 400 "},
		{Description: "Hotel C", Price: ""},
		{Description: "Hotel D", Price: "abc"},
		{Description: "Hotel E", Price: "NaN"},
		{Description: "Hotel F", Price: "Inf"},
		{Description: "Free stay", Price: "0"},
		{Description: "Hotel G", Price: "99.95"},
	}
	got := app.ReadEntries(rows)
	require.Equal(t, []domain.HotelEntry{
		{Description: "Makkah Hotel A - 5 Nights\nQuad Room, Half Board", Price: 400},
		{Description: "Free stay", Price: 0},
		{Description: "Hotel G", Price: 99.95},
	}, got)
}

func TestReadEntries_Empty(t *testing.T) {
	require.Empty(t, app.ReadEntries(nil))
}

func TestParseCount(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"2":     2,
		" 3 ":   3,
		"4abc":  4,
		"+5":    5,
		"-1":    0,
		"abc":   0,
		"2.9":   2,
		"1e3":   1,
		"00012": 12,
	}
	for in, want := range cases {
		require.Equal(t, want, app.ParseCount(in), "input %q", in)
	}
	require.Equal(t, math.MaxInt, app.ParseCount("100000000000000000000"))
}

func TestReadGuests(t *testing.T) {
	g := app.ReadGuests("2", "x")
	require.Equal(t, domain.GuestCount{Adults: 2, Children: 0}, g)
	require.Equal(t, 2, g.Total())
}

func TestReadEntries_RejectsHexPrices(t *testing.T) {
	rows := []domain.RawRow{
		{Description: "Hotel H", Price: "0x1p4"},
		{Description: "Hotel I", Price: "-0X10"},
		{Description: "Hotel J", Price: " +0x10 "},
		{Description: "Hotel K", Price: "010"},
	}
	require.Equal(t, []domain.HotelEntry{{Description: "Hotel K", Price: 10}}, app.ReadEntries(rows))
}

func TestReadGuests_SaturatesOnOverflow(t *testing.T) {
	g := app.ReadGuests(strconv.Itoa(math.MaxInt), "1")
	require.Equal(t, math.MaxInt, g.Total())

	g = app.ReadGuests("99999999999999999999999", "")
	require.Equal(t, math.MaxInt, g.Adults)

	a := []domain.HotelEntry{{Description: "A1", Price: 400}}
	b := []domain.HotelEntry{{Description: "B1", Price: 250}}
	require.True(t, app.Validate(g.Total(), a, b).OK())
}
