// Package temporal parses and renders the date/time tokens used by
// iCalendar documents.
//
// A parsed value keeps track of where it came from: a UTC instant
// (trailing Z), a wall-clock reading qualified by a TZID, or a floating
// local reading with no zone at all. The distinction is made once at
// parse time and carried explicitly, instead of being re-sniffed from
// the string form later.
package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Provenance tags how a Timestamp's wall-clock fields are to be read.
type Provenance int

const (
	// UTC is an unambiguous instant (token carried a trailing Z).
	UTC Provenance = iota
	// ZoneQualified is a wall-clock reading in a named timezone.
	ZoneQualified
	// Floating is a wall-clock reading with no zone attached.
	Floating
)

func (p Provenance) String() string {
	switch p {
	case UTC:
		return "utc"
	case ZoneQualified:
		return "zone-qualified"
	case Floating:
		return "floating"
	}
	return fmt.Sprintf("provenance(%d)", int(p))
}

// Timestamp is a point in time plus its provenance. Time holds the
// wall-clock fields as written in the token; for UTC values its
// location is time.UTC. Zone is set only for ZoneQualified values.
type Timestamp struct {
	Time       time.Time
	Provenance Provenance
	Zone       string
	DateOnly   bool
}

// ErrUnrecognizedToken is returned by Parse for token shapes the
// engine does not understand. Callers treat the field as absent.
var ErrUnrecognizedToken = errors.New("unrecognized date token")

// Mode selects the output shape of Format.
type Mode int

const (
	// UtcSuffixed renders YYYYMMDDTHHMMSSZ.
	UtcSuffixed Mode = iota
	// Local renders YYYYMMDDTHHMMSS with no suffix.
	Local
)

// Parse converts a raw date-or-datetime token into a Timestamp. The
// containing block is consulted only to recover a ;TZID= qualifier on
// the line that introduced the token. Token shapes are tried in order:
//
//	YYYYMMDDTHHMMSSZ   UTC
//	YYYYMMDDTHHMMSS    zone-qualified if the block carries a TZID for
//	                   this token, floating otherwise
//	YYYY-MM-DD         date only, floating
//	YYYYMMDD           date only, floating
//
// Anything else fails with ErrUnrecognizedToken.
func Parse(token, containingBlock string) (Timestamp, error) {
	token = strings.TrimSpace(token)

	switch {
	case len(token) == 16 && token[8] == 'T' && token[15] == 'Z':
		t, err := clockFromToken(token)
		if err != nil {
			return Timestamp{}, err
		}
		return Timestamp{Time: t, Provenance: UTC}, nil

	case len(token) == 15 && token[8] == 'T':
		t, err := clockFromToken(token)
		if err != nil {
			return Timestamp{}, err
		}
		if zone := zoneForToken(containingBlock, token); zone != "" {
			return Timestamp{Time: t, Provenance: ZoneQualified, Zone: zone}, nil
		}
		return Timestamp{Time: t, Provenance: Floating}, nil

	case len(token) == 10 && token[4] == '-' && token[7] == '-':
		t, err := time.Parse("2006-01-02", token)
		if err != nil {
			return Timestamp{}, ErrUnrecognizedToken
		}
		return Timestamp{Time: t, Provenance: Floating, DateOnly: true}, nil

	case len(token) == 8 && allDigits(token):
		t, err := time.Parse("20060102", token)
		if err != nil {
			return Timestamp{}, ErrUnrecognizedToken
		}
		return Timestamp{Time: t, Provenance: Floating, DateOnly: true}, nil
	}

	return Timestamp{}, ErrUnrecognizedToken
}

// Format renders a Timestamp as YYYYMMDDTHHMMSS, suffixed with Z in
// UtcSuffixed mode. Every field is zero-padded. This is the exact
// inverse of the two date-time shapes accepted by Parse; the date-only
// shapes are read-only and never produced.
func Format(ts Timestamp, mode Mode) string {
	t := ts.Time
	s := fmt.Sprintf("%04d%02d%02dT%02d%02d%02d",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second())
	if mode == UtcSuffixed {
		return s + "Z"
	}
	return s
}

// Date returns the calendar date of ts with the time-of-day zeroed.
func (ts Timestamp) Date() time.Time {
	y, m, d := ts.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// clockFromToken reads the Y/M/D/h/m/s fields positionally. No locale
// logic: each field is a fixed slice of digits.
func clockFromToken(token string) (time.Time, error) {
	fields := []string{token[0:4], token[4:6], token[6:8], token[9:11], token[11:13], token[13:15]}
	vals := make([]int, len(fields))
	for i, f := range fields {
		if !allDigits(f) {
			return time.Time{}, ErrUnrecognizedToken
		}
		n := 0
		for _, c := range f {
			n = n*10 + int(c-'0')
		}
		vals[i] = n
	}
	if vals[1] < 1 || vals[1] > 12 || vals[2] < 1 || vals[2] > 31 ||
		vals[3] > 23 || vals[4] > 59 || vals[5] > 60 {
		return time.Time{}, ErrUnrecognizedToken
	}
	return time.Date(vals[0], time.Month(vals[1]), vals[2], vals[3], vals[4], vals[5], 0, time.UTC), nil
}

// zoneForToken recovers a ;TZID= qualifier from the line of the block
// that introduces token. The qualifier must sit between the property
// name and the colon, e.g. DTSTART;TZID=Europe/Paris:20240115T090000.
func zoneForToken(block, token string) string {
	idx := strings.Index(block, token)
	if idx < 0 {
		return ""
	}
	lineStart := strings.LastIndexByte(block[:idx], '\n') + 1
	prefix := block[lineStart:idx]
	colon := strings.LastIndexByte(prefix, ':')
	if colon < 0 {
		return ""
	}
	tz := strings.Index(prefix[:colon], ";TZID=")
	if tz < 0 {
		return ""
	}
	zone := prefix[tz+len(";TZID=") : colon]
	// A further parameter may follow the TZID.
	if semi := strings.IndexByte(zone, ';'); semi >= 0 {
		zone = zone[:semi]
	}
	return strings.TrimSpace(zone)
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
