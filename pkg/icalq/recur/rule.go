// Package recur decides whether a recurring event occurs on a target
// date and, if so, projects its start/end onto that date.
//
// Only the practically common RRULE subset is handled: DAILY, WEEKLY,
// MONTHLY and YEARLY frequencies with INTERVAL, COUNT, UNTIL, BYDAY
// and BYMONTHDAY. Anything outside that subset simply never matches.
package recur

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrRuleInert reports a rule that can never match (no usable FREQ).
var ErrRuleInert = errors.New("recurrence rule has no usable FREQ")

// Weekday tokens in RRULE order, indexed by time.Weekday.
var weekdayTokens = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Rule is a parsed RRULE with explicit optional fields. Zero values
// mean "absent": Interval 0 is treated as 1, Count 0 and Until "" mean
// no termination bound, empty ByDay/zero ByMonthDay mean no day
// constraint.
type Rule struct {
	Freq       string
	Interval   int
	Count      int
	Until      string
	ByDay      []string
	ByMonthDay int
}

// ParseRule parses a ;-joined KEY=VALUE rule string. Malformed tokens
// are treated as absent rather than failing the whole rule; a rule
// without FREQ is valid to hold but matches nothing.
func ParseRule(s string) Rule {
	var r Rule
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		eq := strings.IndexByte(pair, '=')
		if eq < 0 {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(pair[:eq]))
		val := strings.TrimSpace(pair[eq+1:])
		if val == "" {
			continue
		}

		switch key {
		case "FREQ":
			r.Freq = strings.ToUpper(val)
		case "INTERVAL":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				r.Interval = n
			}
		case "COUNT":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				r.Count = n
			}
		case "UNTIL":
			r.Until = val
		case "BYDAY":
			for _, day := range strings.Split(val, ",") {
				day = strings.ToUpper(strings.TrimSpace(day))
				if isWeekdayToken(day) {
					r.ByDay = append(r.ByDay, day)
				}
			}
		case "BYMONTHDAY":
			if n, err := strconv.Atoi(val); err == nil && n >= 1 && n <= 31 {
				r.ByMonthDay = n
			}
		}
	}
	return r
}

// Inert reports whether the rule can never produce a match.
func (r Rule) Inert() bool {
	switch r.Freq {
	case "DAILY", "WEEKLY", "MONTHLY", "YEARLY":
		return false
	}
	return true
}

// EffectiveInterval returns INTERVAL, defaulting to 1.
func (r Rule) EffectiveInterval() int {
	if r.Interval > 0 {
		return r.Interval
	}
	return 1
}

func (r Rule) hasByDay(day string) bool {
	for _, d := range r.ByDay {
		if d == day {
			return true
		}
	}
	return false
}

func isWeekdayToken(s string) bool {
	for _, t := range weekdayTokens {
		if s == t {
			return true
		}
	}
	return false
}

// ExceptionDateSet is a set of calendar dates excluded from a
// recurrence. Membership compares only the date component; the
// time-of-day of whatever produced the entry is discarded on Add.
type ExceptionDateSet map[civilDate]struct{}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{y, m, d}
}

// NewExceptionDateSet builds a set from the given instants.
func NewExceptionDateSet(dates ...time.Time) ExceptionDateSet {
	s := make(ExceptionDateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Add records the calendar date of t.
func (s ExceptionDateSet) Add(t time.Time) {
	s[dateOf(t)] = struct{}{}
}

// Contains reports whether t's calendar date is excluded.
func (s ExceptionDateSet) Contains(t time.Time) bool {
	_, ok := s[dateOf(t)]
	return ok
}
