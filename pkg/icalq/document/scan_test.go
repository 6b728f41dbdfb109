package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

func crlf(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func TestScanNonRecurringEvent(t *testing.T) {
	doc := crlf(
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:one@example.com",
		"SUMMARY:Dentist",
		"LOCATION:Main Street 3",
		"DESCRIPTION:Bring the x-ray\\nand the referral",
		"DTSTART:20240115T093000Z",
		"DTEND:20240115T101500Z",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "one@example.com", rec.UID)
	assert.Equal(t, "Dentist", rec.Summary)
	assert.Equal(t, "Main Street 3", rec.Location)
	assert.Equal(t, "Bring the x-ray\nand the referral", rec.Description)
	assert.Equal(t, "20240115T093000Z", rec.RawStart)
	assert.Equal(t, "2024-01-15T09:30:00Z", rec.Start)
	assert.Equal(t, "2024-01-15T10:15:00Z", rec.End)
	assert.False(t, rec.Recurring)
	assert.False(t, rec.AllDay)
}

func TestScanNonRecurringOffDate(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:one@example.com",
		"SUMMARY:Dentist",
		"DTSTART:20240115T093000Z",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScanRecurringProjection(t *testing.T) {
	// Weekly Monday event anchored on 2024-01-01; target a Monday four
	// weeks later. The block must be re-rendered with the projected
	// timestamps.
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:standup@example.com",
		"SUMMARY:Standup",
		"DTSTART:20240101T090000Z",
		"DTEND:20240101T091500Z",
		"RRULE:FREQ=WEEKLY;BYDAY=MO",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.True(t, rec.Recurring)
	assert.Equal(t, "20240129T090000Z", rec.RawStart)
	assert.Equal(t, "20240129T091500Z", rec.RawEnd)
	assert.Equal(t, "2024-01-29T09:00:00Z", rec.Start)
	assert.Equal(t, "2024-01-29T09:15:00Z", rec.End)
	assert.Contains(t, rec.Block, "DTSTART:20240129T090000Z")
	assert.Contains(t, rec.Block, "DTEND:20240129T091500Z")
	assert.NotContains(t, rec.Block, "20240101T090000Z")
}

func TestScanRecurringExceptionDate(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:standup@example.com",
		"SUMMARY:Standup",
		"DTSTART:20240101T090000Z",
		"RRULE:FREQ=WEEKLY",
		"EXDATE:20240129T090000Z",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())

	records, err := scanner.Scan(doc, time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, records, "excepted date must not match")

	records, err = scanner.Scan(doc, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, records, 1, "the following Monday still matches")
}

func TestScanZoneQualifiedNormalization(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:paris@example.com",
		"SUMMARY:Lunch",
		"DTSTART;TZID=Europe/Paris:20240715T120000",
		"DTEND;TZID=Europe/Paris:20240715T133000",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)

	// July in Paris is daylight time.
	assert.Equal(t, "2024-07-15T12:00:00+02:00", records[0].Start)
	assert.Equal(t, "2024-07-15T13:30:00+02:00", records[0].End)
}

func TestScanUnknownZoneDegradesToNaive(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:x@example.com",
		"SUMMARY:Somewhere",
		"DTSTART;TZID=Mars/Olympus_Mons:20240715T120000",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-07-15T12:00:00", records[0].Start)
}

func TestScanAllDayEvent(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:holiday@example.com",
		"SUMMARY:Holiday",
		"DTSTART:20241225",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].AllDay)
	assert.Equal(t, "2024-12-25", records[0].Start)
}

func TestScanSkipsBrokenBlockAndWarns(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:broken@example.com",
		"SUMMARY:Broken",
		"DTSTART:not-a-date",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:fine@example.com",
		"SUMMARY:Fine",
		"DTSTART:20240115T093000Z",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	require.Error(t, err, "the broken block is reported")
	require.Len(t, records, 1, "the valid block is still scanned")
	assert.Equal(t, "fine@example.com", records[0].UID)
	assert.Contains(t, err.Error(), "DTSTART")
}

func TestScanInertRuleWarns(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:odd@example.com",
		"SUMMARY:Odd",
		"DTSTART:20240101T090000Z",
		"RRULE:FREQ=SECONDLY",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Empty(t, records)
}

func TestScanUnparseableEndTreatedAsAbsent(t *testing.T) {
	doc := crlf(
		"BEGIN:VEVENT",
		"UID:noend@example.com",
		"SUMMARY:No end",
		"DTSTART:20240115T093000Z",
		"DTEND:garbage",
		"END:VEVENT",
	)

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].End)
	assert.Empty(t, records[0].RawEnd)
}

func TestScanHandlesBareLFDocuments(t *testing.T) {
	doc := "BEGIN:VEVENT\nUID:lf@example.com\nSUMMARY:LF\nDTSTART:20240115T093000Z\nEND:VEVENT\n"

	scanner := NewScanner(tztable.New())
	records, err := scanner.Scan(doc, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestBlocksAndBlockUID(t *testing.T) {
	doc := crlf(
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:a@example.com",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:b@example.com",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	blocks := Blocks(doc)
	require.Len(t, blocks, 2)
	assert.Equal(t, "a@example.com", BlockUID(blocks[0]))
	assert.Equal(t, "b@example.com", BlockUID(blocks[1]))
}
