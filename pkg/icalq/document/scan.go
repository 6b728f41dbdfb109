// Package document reads and writes iCalendar document text: the
// scanner walks concatenated VEVENT blocks and reports the occurrences
// falling on a target date, the generator composes a full VCALENDAR
// from an event descriptor.
package document

import (
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/wrenth/icalq/pkg/icalq/recur"
	"github.com/wrenth/icalq/pkg/icalq/temporal"
	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

const (
	beginEvent = "BEGIN:VEVENT"
	endEvent   = "END:VEVENT"
)

// EventRecord is the flattened result of one matched occurrence.
// RawStart/RawEnd hold the document tokens (re-rendered for projected
// recurring occurrences); Start/End hold normalized ISO-like instant
// strings. Block is the source fragment, post-projection for recurring
// matches.
type EventRecord struct {
	UID         string `json:"uid,omitempty"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	RawStart    string `json:"rawStart,omitempty"`
	RawEnd      string `json:"rawEnd,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	AllDay      bool   `json:"allDay,omitempty"`
	Recurring   bool   `json:"recurring,omitempty"`
	Block       string `json:"-"`
}

// Scanner extracts event blocks from document text and evaluates them
// against a target date. It holds only the read-only zone table and is
// safe for concurrent use.
type Scanner struct {
	table *tztable.Table
}

// NewScanner returns a scanner resolving zone offsets via table.
func NewScanner(table *tztable.Table) *Scanner {
	return &Scanner{table: table}
}

// Scan walks every VEVENT block in doc and returns a record for each
// occurrence on the target calendar date. Recurring events are matched
// through their RRULE and EXDATE lines and projected onto the target
// date; non-recurring events match when their start date equals the
// target date.
//
// Nothing inside a block aborts the scan: unusable fields and blocks
// are skipped, and the reasons are aggregated into the returned error
// (a multierror) alongside whatever records were produced.
func (s *Scanner) Scan(doc string, target time.Time) ([]EventRecord, error) {
	var records []EventRecord
	var warnings *multierror.Error

	for i, block := range splitEventBlocks(doc) {
		rec, err := s.scanBlock(block, target)
		if err != nil {
			warnings = multierror.Append(warnings, errors.Wrapf(err, "event block %d", i+1))
			continue
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}

	return records, warnings.ErrorOrNil()
}

// scanBlock evaluates a single block. A nil record with nil error
// means the block is valid but has no occurrence on the target date.
func (s *Scanner) scanBlock(block string, target time.Time) (*EventRecord, error) {
	fields := extractFields(block)

	startTok := fields.value("DTSTART")
	if startTok == "" {
		return nil, errors.New("missing DTSTART")
	}
	start, err := temporal.Parse(startTok, block)
	if err != nil {
		return nil, errors.Wrapf(err, "DTSTART %q", startTok)
	}

	endTok := fields.value("DTEND")
	var end temporal.Timestamp
	hasEnd := false
	if endTok != "" {
		end, err = temporal.Parse(endTok, block)
		if err != nil {
			// Treat the field as absent and keep going.
			log.WithField("token", endTok).Debug("skipping unparseable DTEND")
			endTok = ""
		} else {
			hasEnd = true
		}
	}

	rec := EventRecord{
		UID:         fields.value("UID"),
		Summary:     fields.value("SUMMARY"),
		Description: unescapeText(fields.value("DESCRIPTION")),
		Location:    fields.value("LOCATION"),
		RawStart:    startTok,
		RawEnd:      endTok,
		AllDay:      start.DateOnly,
		Block:       block,
	}

	ruleTok := fields.value("RRULE")
	if ruleTok == "" {
		// Non-recurring: the start's calendar date must be the target.
		if !sameDate(start.Time, target) {
			return nil, nil
		}
		rec.Start = s.normalize(start)
		if hasEnd {
			rec.End = s.normalize(end)
		}
		return &rec, nil
	}

	rec.Recurring = true
	rule := recur.ParseRule(ruleTok)
	if rule.Inert() {
		// Never matches; surface the reason on the warning channel.
		return nil, errors.Wrapf(recur.ErrRuleInert, "RRULE %q", ruleTok)
	}

	exceptions := s.exceptionDates(fields, block)

	var endTime time.Time
	if hasEnd {
		endTime = end.Time
	}
	occ, ok := recur.Project(start.Time, endTime, rule, exceptions, target)
	if !ok {
		return nil, nil
	}

	// Re-render the projected timestamps into the block so the record's
	// fragment describes this occurrence, not the series anchor.
	projStart := retagged(start, occ.Start)
	rec.RawStart = temporal.Format(projStart, formatMode(projStart))
	rec.Start = s.normalize(projStart)
	rec.Block = strings.Replace(rec.Block, startTok, rec.RawStart, 1)

	if hasEnd && occ.HasEnd {
		projEnd := retagged(end, occ.End)
		rec.RawEnd = temporal.Format(projEnd, formatMode(projEnd))
		rec.End = s.normalize(projEnd)
		rec.Block = strings.Replace(rec.Block, endTok, rec.RawEnd, 1)
	}

	return &rec, nil
}

// exceptionDates collects every EXDATE entry of the block into a date
// set. Unparseable entries are skipped.
func (s *Scanner) exceptionDates(fields blockFields, block string) recur.ExceptionDateSet {
	set := recur.NewExceptionDateSet()
	for _, raw := range fields.values("EXDATE") {
		for _, tok := range strings.Split(raw, ",") {
			ts, err := temporal.Parse(tok, block)
			if err != nil {
				log.WithField("token", tok).Debug("skipping unparseable EXDATE entry")
				continue
			}
			set.Add(ts.Time)
		}
	}
	return set
}

// normalize renders a timestamp as an ISO-like instant string. UTC
// values carry Z, zone-qualified values carry the offset resolved via
// the rule table, floating values stay naive. Unknown zones degrade to
// the naive form.
func (s *Scanner) normalize(ts temporal.Timestamp) string {
	if ts.DateOnly {
		return ts.Time.Format("2006-01-02")
	}
	wall := ts.Time.Format("2006-01-02T15:04:05")
	switch ts.Provenance {
	case temporal.UTC:
		return wall + "Z"
	case temporal.ZoneQualified:
		offset, err := s.table.OffsetAt(ts.Zone, ts.Time)
		if err != nil {
			log.WithField("zone", ts.Zone).Debug("zone not in rule table, emitting naive instant")
			return wall
		}
		return wall + offset[:3] + ":" + offset[3:]
	}
	return wall
}

// retagged carries ts's provenance onto a projected instant.
func retagged(ts temporal.Timestamp, at time.Time) temporal.Timestamp {
	return temporal.Timestamp{Time: at, Provenance: ts.Provenance, Zone: ts.Zone, DateOnly: ts.DateOnly}
}

func formatMode(ts temporal.Timestamp) temporal.Mode {
	if ts.Provenance == temporal.UTC {
		return temporal.UtcSuffixed
	}
	return temporal.Local
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Blocks returns every event fragment of a document, for callers that
// need to correlate records back to their source blocks.
func Blocks(doc string) []string {
	return splitEventBlocks(doc)
}

// BlockUID returns the UID field of a block, or the empty string.
func BlockUID(block string) string {
	return extractFields(block).value("UID")
}

// splitEventBlocks returns every BEGIN:VEVENT..END:VEVENT fragment of
// the document, marker lines included. Lines outside a block and
// blocks missing their end marker are dropped.
func splitEventBlocks(doc string) []string {
	var blocks []string
	var current []string
	inBlock := false

	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimRight(line, "\r")
		switch {
		case trimmed == beginEvent:
			inBlock = true
			current = []string{trimmed}
		case trimmed == endEvent && inBlock:
			current = append(current, trimmed)
			blocks = append(blocks, strings.Join(current, "\r\n"))
			inBlock = false
			current = nil
		case inBlock:
			current = append(current, trimmed)
		}
	}
	return blocks
}

// blockFields maps property names to the values found in a block, in
// document order.
type blockFields map[string][]string

func (f blockFields) value(name string) string {
	if v := f[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f blockFields) values(name string) []string {
	return f[name]
}

// extractFields reads the single-line colon-prefixed fields of a
// block. Property parameters between the name and the colon (such as
// ;TZID=...) are dropped here; the temporal parser recovers them from
// the block itself when they matter.
func extractFields(block string) blockFields {
	fields := make(blockFields)
	for _, line := range strings.Split(block, "\r\n") {
		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			continue
		}
		name := line[:colon]
		if semi := strings.IndexByte(name, ';'); semi >= 0 {
			name = name[:semi]
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		switch name {
		case "DTSTART", "DTEND", "RRULE", "EXDATE", "UID", "SUMMARY", "DESCRIPTION", "LOCATION":
			fields[name] = append(fields[name], strings.TrimSpace(line[colon+1:]))
		}
	}
	return fields
}

// unescapeText reverses the iCalendar text escaping produced by the
// generator: the two-character sequence \n back to a line break, plus
// escaped commas, semicolons and backslashes.
func unescapeText(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	r := strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)
	return r.Replace(s)
}
