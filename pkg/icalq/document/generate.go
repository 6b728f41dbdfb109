package document

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/wrenth/icalq/pkg/icalq/temporal"
	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

const defaultNamespace = "icalq"

// EventDescriptor is the input to Generate. Title, Start and End are
// required; everything else is optional. An empty Zone (or "UTC")
// renders UTC-suffixed timestamps; any other zone renders local
// wall-clock values with a ;TZID= qualifier.
type EventDescriptor struct {
	UID         string
	Namespace   string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Zone        string
}

// Generator composes complete VCALENDAR documents. Now is overridable
// for tests and defaults to time.Now.
type Generator struct {
	table *tztable.Table
	Now   func() time.Time
}

// NewGenerator returns a generator writing zone definitions from table.
func NewGenerator(table *tztable.Table) *Generator {
	return &Generator{table: table, Now: time.Now}
}

// Generate renders one event as a full calendar document with CRLF
// line terminators. When the descriptor's zone observes rules known to
// the table, a VTIMEZONE block precedes the event; an unknown zone
// degrades to no VTIMEZONE while the event fields still carry the
// ;TZID= annotation, leaving a dangling reference the consumer must
// tolerate.
func (g *Generator) Generate(d EventDescriptor) (string, error) {
	if strings.TrimSpace(d.Title) == "" {
		return "", errors.New("event title is required")
	}
	if d.Start.IsZero() || d.End.IsZero() {
		return "", errors.New("event start and end are required")
	}

	uid := d.UID
	if uid == "" {
		uid = g.newUID(d.Namespace)
	}

	utcMode := d.Zone == "" || d.Zone == "UTC"
	var zoneRule *tztable.Rule
	if !utcMode {
		if r, ok := g.table.Lookup(d.Zone); ok {
			zoneRule = &r
		} else {
			log.WithField("zone", d.Zone).Warn("zone not in rule table, omitting VTIMEZONE block")
		}
	}

	var b strings.Builder
	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:-//icalq//icalq//EN")
	writeLine("CALSCALE:GREGORIAN")

	if zoneRule != nil {
		writeTimezone(writeLine, *zoneRule)
	}

	writeLine(beginEvent)
	writeLine("UID:" + uid)
	writeLine("DTSTAMP:" + temporal.Format(temporal.Timestamp{Time: g.Now().UTC()}, temporal.UtcSuffixed))
	if utcMode {
		writeLine("DTSTART:" + temporal.Format(temporal.Timestamp{Time: d.Start}, temporal.UtcSuffixed))
		writeLine("DTEND:" + temporal.Format(temporal.Timestamp{Time: d.End}, temporal.UtcSuffixed))
	} else {
		writeLine("DTSTART;TZID=" + d.Zone + ":" + temporal.Format(temporal.Timestamp{Time: d.Start}, temporal.Local))
		writeLine("DTEND;TZID=" + d.Zone + ":" + temporal.Format(temporal.Timestamp{Time: d.End}, temporal.Local))
	}
	writeLine("SUMMARY:" + escapeText(d.Title))
	if d.Description != "" {
		writeLine("DESCRIPTION:" + escapeText(d.Description))
	}
	if d.Location != "" {
		writeLine("LOCATION:" + escapeText(d.Location))
	}
	writeLine(endEvent)
	writeLine("END:VCALENDAR")

	return b.String(), nil
}

// newUID builds an identifier of the form
// <epoch millis>-<random suffix>@<namespace>.
func (g *Generator) newUID(namespace string) string {
	if namespace == "" {
		namespace = defaultNamespace
	}
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// Fall back to the clock's sub-millisecond remainder.
		return fmt.Sprintf("%d-%06d@%s", g.Now().UnixMilli(), g.Now().Nanosecond()%1000000, namespace)
	}
	return fmt.Sprintf("%d-%s@%s", g.Now().UnixMilli(), hex.EncodeToString(suffix), namespace)
}

// writeTimezone emits the VTIMEZONE definition for a table rule. DST
// zones get STANDARD and DAYLIGHT sub-blocks carrying the table's
// yearly transition rules; fixed-offset zones get a single STANDARD
// block.
func writeTimezone(writeLine func(string), r tztable.Rule) {
	writeLine("BEGIN:VTIMEZONE")
	writeLine("TZID:" + r.ID)

	if !r.HasDaylight() {
		writeLine("BEGIN:STANDARD")
		writeLine("DTSTART:19700101T000000")
		writeLine("TZOFFSETFROM:" + r.StandardOffset)
		writeLine("TZOFFSETTO:" + r.StandardOffset)
		writeLine("END:STANDARD")
		writeLine("END:VTIMEZONE")
		return
	}

	writeLine("BEGIN:DAYLIGHT")
	writeLine("DTSTART:" + r.DaylightStart.Anchor)
	writeLine("TZOFFSETFROM:" + r.StandardOffset)
	writeLine("TZOFFSETTO:" + r.DaylightOffset)
	writeLine("RRULE:" + r.DaylightStart.RRule)
	writeLine("END:DAYLIGHT")

	writeLine("BEGIN:STANDARD")
	writeLine("DTSTART:" + r.StandardStart.Anchor)
	writeLine("TZOFFSETFROM:" + r.DaylightOffset)
	writeLine("TZOFFSETTO:" + r.StandardOffset)
	writeLine("RRULE:" + r.StandardStart.RRule)
	writeLine("END:STANDARD")

	writeLine("END:VTIMEZONE")
}

// escapeText applies the iCalendar text escaping: backslashes first,
// then commas, semicolons, and line breaks as the literal \n.
func escapeText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\r\n", `\n`, "\n", `\n`)
	return r.Replace(s)
}
