package ordering

import (
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/deadline"
)

// OrderableDates lists the delivery dates still open at now, from tomorrow
// through the ordering horizon. Today is never included: its cutoff fell on
// the previous day.
func OrderableDates(calc *deadline.Calculator, dl deadline.Time, now time.Time, horizonDays int) []time.Time {
	today := calc.DateOf(now)

	dates := make([]time.Time, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		day := today.AddDate(0, 0, i)
		if calc.IsOrderable(day, dl, now) {
			dates = append(dates, day)
		}
	}
	return dates
}
