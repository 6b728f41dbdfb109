package recur

import (
	"time"

	"github.com/wrenth/icalq/pkg/icalq/temporal"
)

// Occurrence is the projection of a recurring event onto a target
// date. Start keeps the original start's wall-clock time-of-day; End
// is set only when the original event had an end, offset from Start by
// the exact original duration.
type Occurrence struct {
	Start  time.Time
	End    time.Time
	HasEnd bool
}

// OccursOn decides whether an event starting at originalStart with the
// given rule occurs on the target calendar date. Every failure mode is
// a plain non-match: exception dates dominate, a rule without FREQ is
// inert, malformed UNTIL tokens drop the bound.
func OccursOn(originalStart time.Time, rule Rule, exceptions ExceptionDateSet, target time.Time) bool {
	startDate := midnightUTC(originalStart)
	targetDate := midnightUTC(target)

	if targetDate.Before(startDate) {
		return false
	}
	if exceptions.Contains(target) {
		return false
	}
	if rule.Inert() {
		return false
	}
	if !withinUntil(rule, targetDate) {
		return false
	}
	if countExhausted(rule, startDate, targetDate) {
		return false
	}

	interval := rule.EffectiveInterval()
	days := wholeDaysBetween(startDate, targetDate)

	switch rule.Freq {
	case "DAILY":
		return days%interval == 0

	case "WEEKLY":
		if len(rule.ByDay) > 0 {
			if !rule.hasByDay(weekdayTokens[int(target.Weekday())]) {
				return false
			}
		} else if target.Weekday() != originalStart.Weekday() {
			return false
		}
		weeks := weekIndex(targetDate) - weekIndex(startDate)
		return weeks >= 0 && weeks%interval == 0

	case "MONTHLY":
		if rule.ByMonthDay > 0 {
			if target.Day() != rule.ByMonthDay {
				return false
			}
		} else if target.Day() != originalStart.Day() {
			return false
		}
		months := (target.Year()-originalStart.Year())*12 + int(target.Month()) - int(originalStart.Month())
		return months >= 0 && months%interval == 0

	case "YEARLY":
		// No Feb-29 adjustment: a non-leap target year never matches a
		// leap-day start.
		if target.Month() != originalStart.Month() || target.Day() != originalStart.Day() {
			return false
		}
		years := target.Year() - originalStart.Year()
		return years >= 0 && years%interval == 0
	}

	return false
}

// Project computes the occurrence for a matched target date. The
// returned start carries originalStart's hour/minute/second/nanosecond
// onto target's calendar date, in originalStart's location; the end,
// when originalEnd is non-zero, is start plus the exact original
// duration. Returns false when the rule does not match the target.
func Project(originalStart, originalEnd time.Time, rule Rule, exceptions ExceptionDateSet, target time.Time) (Occurrence, bool) {
	if !OccursOn(originalStart, rule, exceptions, target) {
		return Occurrence{}, false
	}

	y, m, d := target.Date()
	start := time.Date(y, m, d,
		originalStart.Hour(), originalStart.Minute(), originalStart.Second(),
		originalStart.Nanosecond(), originalStart.Location())

	occ := Occurrence{Start: start}
	if !originalEnd.IsZero() {
		occ.End = start.Add(originalEnd.Sub(originalStart))
		occ.HasEnd = true
	}
	return occ, true
}

// withinUntil applies the UNTIL bound: a target date strictly after
// UNTIL's calendar date is excluded. An unparseable UNTIL token is
// treated as absent.
func withinUntil(rule Rule, targetDate time.Time) bool {
	if rule.Until == "" {
		return true
	}
	until, err := temporal.Parse(rule.Until, "")
	if err != nil {
		return true
	}
	return !targetDate.After(until.Date())
}

// countExhausted applies the COUNT bound using the same day-count
// approximation per frequency as the match predicate's interval
// arithmetic: exact days and weeks, months as 30 days and years as 365
// days. The month/year approximation drifts from calendar-accurate
// counting on purpose; changing it changes observable behavior.
func countExhausted(rule Rule, startDate, targetDate time.Time) bool {
	if rule.Count <= 0 {
		return false
	}
	days := wholeDaysBetween(startDate, targetDate)
	interval := rule.EffectiveInterval()

	var elapsed int
	switch rule.Freq {
	case "DAILY":
		elapsed = days / interval
	case "WEEKLY":
		elapsed = (days / 7) / interval
	case "MONTHLY":
		elapsed = (days / 30) / interval
	case "YEARLY":
		elapsed = (days / 365) / interval
	default:
		return false
	}
	return elapsed >= rule.Count
}

// midnightUTC pins a wall-clock reading's calendar date to UTC so day
// arithmetic is exact regardless of the reading's own location.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func wholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// weekIndex numbers Monday-started weeks from the epoch, so two dates
// in the same ISO week share an index.
func weekIndex(dateUTC time.Time) int {
	days := int(dateUTC.Sub(time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)) / (24 * time.Hour))
	// 1970-01-01 was a Thursday; shift so weeks begin on Monday.
	return floorDiv(days+3, 7)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
