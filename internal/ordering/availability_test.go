package ordering_test

import (
	"testing"
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/deadline"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/ordering"

	"github.com/stretchr/testify/assert"
)

func TestOrderableDates(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	calc := deadline.NewCalculator(loc)
	dl := deadline.Time{Hour: 14}

	t.Run("morning before cutoff keeps the full window", func(t *testing.T) {
		now := time.Date(2025, 3, 9, 10, 0, 0, 0, loc)

		dates := ordering.OrderableDates(calc, dl, now, 7)

		assert.Len(t, dates, 7)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), dates[0])
		assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, loc), dates[6])
	})

	t.Run("after cutoff tomorrow drops out", func(t *testing.T) {
		now := time.Date(2025, 3, 9, 15, 0, 0, 0, loc)

		dates := ordering.OrderableDates(calc, dl, now, 7)

		assert.Len(t, dates, 6)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), dates[0])
	})

	t.Run("exactly at cutoff tomorrow drops out", func(t *testing.T) {
		now := time.Date(2025, 3, 9, 14, 0, 0, 0, loc)

		dates := ordering.OrderableDates(calc, dl, now, 7)

		assert.Len(t, dates, 6)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), dates[0])
	})

	t.Run("today is never in the window", func(t *testing.T) {
		now := time.Date(2025, 3, 9, 0, 0, 1, 0, loc)

		for _, d := range ordering.OrderableDates(calc, dl, now, 7) {
			assert.NotEqual(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), d)
		}
	})
}
