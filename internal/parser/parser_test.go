package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/errors"
	"github.com/manav03panchal/studypace/internal/model"
)

// =============================================================================
// ParseRange
// =============================================================================

func TestParseRange(t *testing.T) {
	t.Run("dash range", func(t *testing.T) {
		r, err := ParseRange("21-25")
		require.NoError(t, err)
		assert.Equal(t, model.Range{Start: 21, End: 25}, r)
	})

	t.Run("alternate separators", func(t *testing.T) {
		for _, input := range []string{"21..25", "21:25", "21 - 25"} {
			r, err := ParseRange(input)
			require.NoError(t, err, input)
			assert.Equal(t, model.Range{Start: 21, End: 25}, r, input)
		}
	})

	t.Run("single number is a one-unit range", func(t *testing.T) {
		r, err := ParseRange("150")
		require.NoError(t, err)
		assert.Equal(t, model.Range{Start: 150, End: 150}, r)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		r, err := ParseRange("  21-25  ")
		require.NoError(t, err)
		assert.Equal(t, model.Range{Start: 21, End: 25}, r)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := ParseRange("25-21")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidRange)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		for _, input := range []string{"", "abc", "21-", "-25", "21--25", "21,25", "1.5-2"} {
			_, err := ParseRange(input)
			assert.Error(t, err, input)
			assert.ErrorIs(t, err, errors.ErrInvalidRange, input)
		}
	})
}

// =============================================================================
// ParseDate
// =============================================================================

func TestParseDate(t *testing.T) {
	today := dates.Truncate(time.Now())

	t.Run("shortcuts", func(t *testing.T) {
		got, err := ParseDate("today")
		require.NoError(t, err)
		assert.Equal(t, today, got)

		got, err = ParseDate("Tomorrow")
		require.NoError(t, err)
		assert.Equal(t, dates.AddDays(time.Now(), 1), got)

		got, err = ParseDate("yesterday")
		require.NoError(t, err)
		assert.Equal(t, dates.AddDays(time.Now(), -1), got)
	})

	t.Run("empty means today", func(t *testing.T) {
		got, err := ParseDate("")
		require.NoError(t, err)
		assert.Equal(t, today, got)
	})

	t.Run("ISO date", func(t *testing.T) {
		got, err := ParseDate("2025-12-20")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.Local), got)
	})

	t.Run("natural language", func(t *testing.T) {
		got, err := ParseDate("in 3 weeks")
		require.NoError(t, err)
		assert.Equal(t, dates.AddDays(time.Now(), 21), got)
	})

	t.Run("result is midnight", func(t *testing.T) {
		got, err := ParseDate("next friday")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 0, got.Minute())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseDate("the heat death of the universe")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidDate)
	})
}
