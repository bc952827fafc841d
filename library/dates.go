package library

import (
	"strconv"
	"time"
)

// dateLayout is the only date format the system understands, on disk and in
// every operation argument.
const dateLayout = "2006-01-02"

// parseDate enforces the strict YYYY-MM-DD grammar: exactly 10 characters,
// dashes at positions 4 and 7, numeric fields, month in [1,12], day in
// [1,31]. There is deliberately no day-of-month or leap-year cross-check.
// Parse failure is a recoverable condition, not an error.
func parseDate(s string) (year, month, day int, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	var err error
	if year, err = strconv.Atoi(s[0:4]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(s[5:7]); err != nil {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(s[8:10]); err != nil {
		return 0, 0, 0, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// dateOrdinal flattens a date to an approximate day count: every month is 30
// days and every year 365. Not calendar-exact, but consistent for comparing
// two dates at the same scale, and it is the arithmetic the persisted fine
// amounts were computed with. Changing it to real calendar math would shift
// fines near month and year boundaries.
func dateOrdinal(year, month, day int) int {
	return year*365 + month*30 + day
}

// DaysBetween returns the approximate number of days from d1 to d2 (negative
// when d2 precedes d1), or 0 when either date fails to parse.
func DaysBetween(d1, d2 string) int {
	y1, m1, day1, ok1 := parseDate(d1)
	y2, m2, day2, ok2 := parseDate(d2)
	if !ok1 || !ok2 {
		return 0
	}
	return dateOrdinal(y2, m2, day2) - dateOrdinal(y1, m1, day1)
}

// AddDays shifts a date forward n calendar days, used to derive due dates
// from a checkout date and the loan period. Producing dates uses real
// calendar addition; only the comparison ordinal above is approximate.
func AddDays(date string, n int) (string, error) {
	y, m, d, ok := parseDate(date)
	if !ok {
		return "", validationErrorf("invalid date %q, want YYYY-MM-DD", date)
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 0, n).Format(dateLayout), nil
}

// Today returns the current date in the persisted format.
func Today() string { return time.Now().Format(dateLayout) }
