package expense

import (
	"os"
	"strconv"
	"time"
)

// DateFormat is the layout used to stamp new expenses, the usual YYYY-MM-DD.
const DateFormat = "2006-01-02"

// Now returns the current local time.
//
// The environment variable EXPENSES_TESTING_NOW, in "2006-01-02 15:04:05"
// format, overrides the clock so that documentation scenarios and tests give
// reproducible output.
func Now() time.Time {
	if testingNow := os.Getenv("EXPENSES_TESTING_NOW"); testingNow != "" {
		t, err := time.Parse("2006-01-02 15:04:05", testingNow)
		if err != nil {
			panic("invalid EXPENSES_TESTING_NOW: " + err.Error())
		}
		return t
	}
	return time.Now()
}

// Today returns the current local date in DateFormat.
func Today() string { return Now().Format(DateFormat) }

// MonthOf extracts the month from a YYYY-MM-DD date string.
//
// Dates are stored verbatim, so nothing guarantees the string is well formed:
// the two characters after the first dash are parsed as a number, and 0 is
// returned when they are missing or not one.
func MonthOf(date string) int {
	if len(date) < 7 {
		return 0
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil || m < 0 {
		return 0
	}
	return m
}
