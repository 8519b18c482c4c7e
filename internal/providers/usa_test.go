package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holidays/internal"
	"github.com/dmitrymomot/holidays/internal/providers"
)

func buildUSA(t *testing.T, year int) *internal.Collection {
	t.Helper()
	c, err := internal.Build(providers.USA{}, year, "en_US")
	require.NoError(t, err)
	return c
}

func TestUSAFloatingHolidays(t *testing.T) {
	t.Parallel()

	c := buildUSA(t, 2023)

	for key, want := range map[string]string{
		"martinLutherKingDay": "2023-01-16",
		"washingtonsBirthday": "2023-02-20",
		"memorialDay":         "2023-05-29",
		"labourDay":           "2023-09-04",
		"columbusDay":         "2023-10-09",
		"thanksgivingDay":     "2023-11-23",
	} {
		when, err := c.WhenIs(key)
		require.NoError(t, err)
		assert.Equal(t, want, when, key)
	}
}

func TestUSAObservedDays(t *testing.T) {
	t.Parallel()

	t.Run("sunday moves to monday", func(t *testing.T) {
		t.Parallel()
		// 2023-01-01 is a Sunday.
		c := buildUSA(t, 2023)
		when, err := c.WhenIs(internal.SubstituteKey("newYearsDay"))
		require.NoError(t, err)
		assert.Equal(t, "2023-01-02", when)
	})

	t.Run("saturday moves to friday", func(t *testing.T) {
		t.Parallel()
		// 2021-07-04 is a Sunday, 2020-07-04 a Saturday.
		c := buildUSA(t, 2020)
		when, err := c.WhenIs(internal.SubstituteKey("independenceDay"))
		require.NoError(t, err)
		assert.Equal(t, "2020-07-03", when)
	})

	t.Run("weekday holidays get no observed entry", func(t *testing.T) {
		t.Parallel()
		// 2023-12-25 is a Monday.
		c := buildUSA(t, 2023)
		assert.NotContains(t, c.Keys(), internal.SubstituteKey("christmasDay"))
	})

	t.Run("observed name derives from the original", func(t *testing.T) {
		t.Parallel()
		c := buildUSA(t, 2023)
		h, err := c.Get(internal.SubstituteKey("newYearsDay"))
		require.NoError(t, err)
		name, err := h.Name()
		require.NoError(t, err)
		assert.Equal(t, "New Year's Day (observed)", name)
	})
}

func TestUSAJuneteenth(t *testing.T) {
	t.Parallel()

	t.Run("present from 2021", func(t *testing.T) {
		t.Parallel()
		c := buildUSA(t, 2021)
		when, err := c.WhenIs("juneteenth")
		require.NoError(t, err)
		assert.Equal(t, "2021-06-19", when)
	})

	t.Run("absent before 2021", func(t *testing.T) {
		t.Parallel()
		c := buildUSA(t, 2020)
		_, err := c.Get("juneteenth")
		require.ErrorIs(t, err, internal.ErrHolidayNotFound)
	})

	t.Run("previous from the introduction year propagates not-found", func(t *testing.T) {
		t.Parallel()
		c := buildUSA(t, 2021)
		_, err := c.Previous("juneteenth")
		require.ErrorIs(t, err, internal.ErrHolidayNotFound)
	})
}
