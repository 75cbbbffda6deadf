package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"hotel_packages/internal/app"
	"hotel_packages/internal/domain"
)

func TestValidate(t *testing.T) {
	one := entries(100)

	v := app.Validate(0, one, one)
	require.Equal(t, domain.ValidationNoPayingGuests, v.Kind)
	require.ErrorIs(t, v.Err(), domain.ErrNoPayingGuests)

	v = app.Validate(2, nil, one)
	require.Equal(t, domain.ValidationMissingEntries, v.Kind)
	require.Equal(t, []domain.Side{domain.SideA}, v.Missing)
	var me *domain.MissingEntriesError
	require.True(t, errors.As(v.Err(), &me))

	v = app.Validate(2, one, nil)
	require.Equal(t, []domain.Side{domain.SideB}, v.Missing)

	v = app.Validate(1, nil, nil)
	require.Equal(t, []domain.Side{domain.SideA, domain.SideB}, v.Missing)

	v = app.Validate(1, one, one)
	require.True(t, v.OK())
	require.NoError(t, v.Err())
}

func TestValidate_GuestsCheckedFirst(t *testing.T) {
	v := app.Validate(0, nil, nil)
	require.Equal(t, domain.ValidationNoPayingGuests, v.Kind)
	require.Empty(t, v.Missing)
}

func TestValidationMessages(t *testing.T) {
	v := app.Validate(1, nil, entries(1))
	require.Equal(t,
		"Error: Please add at least one valid hotel (with summary and price) to the Makkah list.",
		v.Message("Makkah", "Madinah"))

	v = app.Validate(1, nil, nil)
	require.Contains(t, v.Message("Makkah", "Madinah"), "Makkah and Madinah lists")

	v = app.Validate(0, nil, nil)
	require.Contains(t, v.Message("Makkah", "Madinah"), "at least one Adult or Child")
}
