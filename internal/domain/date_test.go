package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("accepts today", func(t *testing.T) {
		_, err := NewDate(time.Now())
		assert.NoError(t, err)
	})

	t.Run("accepts the past", func(t *testing.T) {
		d, err := NewDate(time.Date(2020, 6, 15, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.Equal(t, 2020, d.Year())
		assert.Equal(t, 6, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("rejects tomorrow", func(t *testing.T) {
		_, err := NewDate(time.Now().AddDate(0, 0, 1))
		assert.ErrorIs(t, err, ErrFutureDate)
	})

	t.Run("rejects zero time", func(t *testing.T) {
		_, err := NewDate(time.Time{})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestDateFromString(t *testing.T) {
	t.Run("iso and brazilian formats agree", func(t *testing.T) {
		iso, err := DateFromString("2024-03-15")
		require.NoError(t, err)
		br, err := DateFromString("15/03/2024")
		require.NoError(t, err)
		dashed, err := DateFromString("15-03-2024")
		require.NoError(t, err)

		assert.True(t, iso.Equal(br))
		assert.True(t, iso.Equal(dashed))
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		_, err := DateFromString("15.03.2024")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("rejects nonsense", func(t *testing.T) {
		_, err := DateFromString("99/99/2024")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("rejects future date", func(t *testing.T) {
		future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		_, err := DateFromString(future)
		assert.ErrorIs(t, err, ErrFutureDate)
	})
}

func TestDatePredicates(t *testing.T) {
	mk := func(s string) Date {
		d, err := DateFromString(s)
		require.NoError(t, err)
		return d
	}

	t.Run("same month and year", func(t *testing.T) {
		a := mk("2024-03-01")
		b := mk("2024-03-31")
		c := mk("2024-04-01")

		assert.True(t, a.SameMonth(b))
		assert.False(t, a.SameMonth(c))
		assert.True(t, a.SameYear(c))
	})

	t.Run("ordering", func(t *testing.T) {
		a := mk("2024-03-01")
		b := mk("2024-03-02")
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
	})

	t.Run("in period", func(t *testing.T) {
		d := mk("2024-03-15")
		assert.True(t, d.InPeriod(3, 2024))
		assert.False(t, d.InPeriod(4, 2024))
		assert.False(t, d.InPeriod(3, 2023))
	})
}

func TestDateString(t *testing.T) {
	d, err := DateFromString("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "15/03/2024", d.String())
}
