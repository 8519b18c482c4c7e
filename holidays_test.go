package holidays_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holidays"
	"github.com/dmitrymomot/holidays/pkg/translations"
)

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("japan 2015 has sixteen holidays", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.Create("jp", 2015, "ja_JP")
		require.NoError(t, err)
		assert.Equal(t, 16, c.Count())
	})

	t.Run("autumnal equinox 2010", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.Create("jp", 2010, "ja_JP")
		require.NoError(t, err)
		when, err := c.WhenIs("autumnalEquinoxDay")
		require.NoError(t, err)
		assert.Equal(t, "2010-09-23", when)
	})

	t.Run("ireland 2018 has thirteen holidays", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.Create("ie", 2018, "en_IE")
		require.NoError(t, err)
		assert.Equal(t, 13, c.Count())
		assert.Contains(t, c.Keys(), holidays.SubstituteKey("stPatricksDay"))

		for _, key := range []string{"juneHoliday", "augustHoliday", "octoberHoliday"} {
			c.Remove(key)
		}
		assert.Equal(t, 10, c.Count())
	})

	t.Run("codes match case insensitively", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.Create("JP", 2015, "en_US")
		require.NoError(t, err)
		assert.Equal(t, 16, c.Count())
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		_, err := holidays.Create("atlantis", 2020, "en_US")
		require.ErrorIs(t, err, holidays.ErrProviderNotFound)
	})

	t.Run("year out of range", func(t *testing.T) {
		t.Parallel()
		_, err := holidays.Create("jp", 10100, "en_US")
		require.ErrorIs(t, err, holidays.ErrInvalidYear)
	})

	t.Run("unknown locale", func(t *testing.T) {
		t.Parallel()
		_, err := holidays.Create("jp", 2020, "wx-YZ")
		require.ErrorIs(t, err, holidays.ErrUnknownLocale)
	})

	t.Run("empty key lookup", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.Create("jp", 2020, "en_US")
		require.NoError(t, err)
		_, err = c.Get("")
		require.ErrorIs(t, err, holidays.ErrInvalidArgument)
	})
}

func TestCreateByRegionCode(t *testing.T) {
	t.Parallel()

	t.Run("country code", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.CreateByRegionCode("IE", 2018, "en_IE")
		require.NoError(t, err)
		assert.Equal(t, 13, c.Count())
	})

	t.Run("subdivision code", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.CreateByRegionCode("DE-BY", 2024, "de_DE")
		require.NoError(t, err)
		assert.Contains(t, c.Keys(), "allSaintsDay")
	})

	t.Run("underscore separator", func(t *testing.T) {
		t.Parallel()
		c, err := holidays.CreateByRegionCode("de_by", 2024, "de_DE")
		require.NoError(t, err)
		assert.Contains(t, c.Keys(), "epiphany")
	})
}

func TestListProviders(t *testing.T) {
	t.Parallel()

	first := holidays.ListProviders()
	second := holidays.ListProviders()
	assert.Equal(t, first, second)

	assert.Equal(t, "Japan", first["jp"])
	assert.Equal(t, "Ireland", first["ie"])
	assert.Equal(t, "Bavaria", first["de-by"])

	// The result is a copy; mutating it must not leak into later calls.
	first["jp"] = "mutated"
	assert.Equal(t, "Japan", holidays.ListProviders()["jp"])

	codes := holidays.ProviderCodes()
	assert.Len(t, codes, len(first))
	assert.Contains(t, codes, "de-by")
}

func TestNavigationAcrossYears(t *testing.T) {
	t.Parallel()

	c, err := holidays.Create("jp", holidays.YearMax, "en_US")
	require.NoError(t, err)
	_, err = c.Next("cultureDay")
	require.ErrorIs(t, err, holidays.ErrInvalidYear)
}

func TestMergeGlobalTranslations(t *testing.T) {
	t.Parallel()

	h, err := holidays.NewHoliday("christmasDay",
		map[string]string{"fr": "Noël"},
		time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
		holidays.WithLocale("de_DE"),
	)
	require.NoError(t, err)

	h.MergeGlobalTranslations(translations.Default())

	name, err := h.Name()
	require.NoError(t, err)
	assert.Equal(t, "Erster Weihnachtstag", name)

	// Entity-provided translations win over the merged globals.
	name, err = h.Name("fr")
	require.NoError(t, err)
	assert.Equal(t, "Noël", name)
}

func TestCustomWeekend(t *testing.T) {
	t.Parallel()

	c, err := holidays.NewCollection(2024, "en_US",
		holidays.WithWeekendDays(time.Friday, time.Saturday))
	require.NoError(t, err)

	// 2024-06-07 is a Friday, 2024-06-09 a Sunday.
	assert.False(t, c.IsWorkingDay(time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, c.IsWorkingDay(time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)))
}
