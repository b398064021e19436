package main

import (
	"fmt"
	"time"
)

// dayOfYear returns the 1-based ordinal day of the calendar year of t,
// converted to the reference zone. Two instants that fall on the same
// calendar day in the reference zone always produce the same ordinal,
// regardless of the caller's local zone.
//
// The ordinal resets on January 1st, so the daily table wraps back to
// its first row every year.
func dayOfYear(t time.Time, zone *time.Location) int {
	return t.In(zone).YearDay()
}

// dayKey returns the ledger bucket key for the calendar day of t.
// The same day function backs puzzle selection, so a completed result
// always lines up with the puzzle that produced it.
func dayKey(t time.Time, zone *time.Location) string {
	return fmt.Sprintf("%s%d", DayKeyPrefix, dayOfYear(t, zone))
}

// nextPuzzleTime returns the next midnight in the reference zone, i.e.
// the moment the daily puzzle rolls over.
func nextPuzzleTime(now time.Time, zone *time.Location) time.Time {
	local := now.In(zone)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, zone)
}
