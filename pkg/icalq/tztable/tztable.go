// Package tztable is the static timezone rule table: a read-only
// mapping from a zone identifier to its standard/daylight offsets and
// the yearly recurrence rules that describe when the switch happens.
//
// The table is built once at startup and never mutated, so it is safe
// for unlimited concurrent readers.
package tztable

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"
)

// ErrUnknownZone reports a zone identifier absent from the table.
// It is not fatal: callers fall back to treating the value as UTC.
var ErrUnknownZone = errors.New("zone not present in rule table")

// Transition describes one side of a DST switch: a YEARLY recurrence
// rule (FREQ=YEARLY;BYMONTH=m;BYDAY=kWD shaped) anchored to a
// reference local timestamp in YYYYMMDDTHHMMSS form.
type Transition struct {
	RRule  string `yaml:"rrule"`
	Anchor string `yaml:"anchor"`
}

// Rule holds the offset data for one zone. Offsets are ±HHMM strings.
// DaylightOffset is empty for zones without DST; when it is set, both
// transitions are set as well.
type Rule struct {
	ID             string     `yaml:"id"`
	StandardOffset string     `yaml:"standard"`
	DaylightOffset string     `yaml:"daylight,omitempty"`
	DaylightStart  Transition `yaml:"daylightStart,omitempty"`
	StandardStart  Transition `yaml:"standardStart,omitempty"`
}

// HasDaylight reports whether the zone observes DST.
func (r Rule) HasDaylight() bool {
	return r.DaylightOffset != ""
}

// Table is an immutable zone-id -> Rule mapping.
type Table struct {
	rules map[string]Rule
}

// New builds a table from the builtin rules plus any extra rules,
// which override builtins with the same ID.
func New(extra ...Rule) *Table {
	rules := make(map[string]Rule, len(builtinRules)+len(extra))
	for _, r := range builtinRules {
		rules[r.ID] = r
	}
	for _, r := range extra {
		if r.ID == "" {
			continue
		}
		rules[r.ID] = r
	}
	return &Table{rules: rules}
}

// Lookup returns the rule for a zone identifier. The second return is
// false when the zone is unknown; that is an expected condition, not
// an error.
func (t *Table) Lookup(zoneID string) (Rule, bool) {
	r, ok := t.rules[zoneID]
	return r, ok
}

// Zones returns the known zone identifiers in sorted order.
func (t *Table) Zones() []string {
	out := make([]string, 0, len(t.rules))
	for id := range t.rules {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// OffsetAt resolves the UTC offset (±HHMM) in effect for a wall-clock
// reading in the given zone. For DST zones the YEARLY transition rules
// are expanded for the reading's year to decide which side of the
// switch it falls on. Returns ErrUnknownZone for absent zones.
func (t *Table) OffsetAt(zoneID string, at time.Time) (string, error) {
	r, ok := t.Lookup(zoneID)
	if !ok {
		return "", errors.Wrap(ErrUnknownZone, zoneID)
	}
	if !r.HasDaylight() {
		return r.StandardOffset, nil
	}

	dstStart, err := r.DaylightStart.inYear(at.Year())
	if err != nil {
		return r.StandardOffset, err
	}
	stdStart, err := r.StandardStart.inYear(at.Year())
	if err != nil {
		return r.StandardOffset, err
	}

	wall := time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), at.Second(), 0, time.UTC)
	if dstStart.Before(stdStart) {
		// Northern hemisphere: daylight runs dstStart..stdStart.
		if !wall.Before(dstStart) && wall.Before(stdStart) {
			return r.DaylightOffset, nil
		}
		return r.StandardOffset, nil
	}
	// Southern hemisphere: daylight wraps around the new year.
	if !wall.Before(dstStart) || wall.Before(stdStart) {
		return r.DaylightOffset, nil
	}
	return r.StandardOffset, nil
}

// inYear expands the transition rule and returns its occurrence within
// the given year, as a wall-clock reading in UTC location.
func (tr Transition) inYear(year int) (time.Time, error) {
	anchor, err := time.Parse("20060102T150405", tr.Anchor)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing transition anchor %q", tr.Anchor)
	}
	rr, err := rrule.StrToRRule(tr.RRule)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing transition rule %q", tr.RRule)
	}
	rr.DTStart(anchor)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	occ := rr.Between(from, to, true)
	if len(occ) == 0 {
		return time.Time{}, errors.Errorf("transition rule %q has no occurrence in %d", tr.RRule, year)
	}
	return occ[0], nil
}

// OffsetToDuration converts a ±HHMM offset string to a duration.
func OffsetToDuration(offset string) (time.Duration, error) {
	if len(offset) != 5 || (offset[0] != '+' && offset[0] != '-') {
		return 0, errors.Errorf("malformed offset %q", offset)
	}
	h := int(offset[1]-'0')*10 + int(offset[2]-'0')
	m := int(offset[3]-'0')*10 + int(offset[4]-'0')
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	if offset[0] == '-' {
		d = -d
	}
	return d, nil
}
