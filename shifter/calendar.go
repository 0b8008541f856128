package shifter

import "time"

// AddMonthsDays shifts t forward by whole calendar months, then by days.
// Month arithmetic clamps the day-of-month to the target month's length
// (Jan 31 + 1 month is Feb 28, or Feb 29 in a leap year). time.AddDate is
// not used for the month step because it normalizes overflow into the next
// month instead of clamping.
func AddMonthsDays(t time.Time, months, days int) time.Time {
	year, month, day := t.Date()
	total := year*12 + int(month) - 1 + months
	targetYear := total / 12
	targetMonth := time.Month(total%12 + 1)
	if last := lastDayOfMonth(targetYear, targetMonth); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	shifted := time.Date(targetYear, targetMonth, day, hour, min, sec, t.Nanosecond(), t.Location())
	return shifted.AddDate(0, 0, days)
}

// lastDayOfMonth exploits day zero of the following month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
