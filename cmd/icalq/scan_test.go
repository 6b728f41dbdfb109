package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wrenth/icalq/pkg/icalq/document"
	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

const sampleDoc = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:standup@example.com\r\n" +
	"SUMMARY:Standup\r\n" +
	"DTSTART:20240101T090000Z\r\n" +
	"DTEND:20240101T091500Z\r\n" +
	"RRULE:FREQ=WEEKLY;BYDAY=MO\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:dentist@example.com\r\n" +
	"SUMMARY:Dentist\r\n" +
	"DTSTART:20240129T140000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ics")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("writing sample: %v", err)
	}
	return path
}

func TestRunScanJSON(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer
	out := &outputWriter{json: true, writer: &buf}

	if err := runScan(tztable.New(), path, "2024-01-29", false, out); err != nil {
		t.Fatalf("runScan() error = %v", err)
	}

	var records []document.EventRecord
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	var summaries []string
	for _, rec := range records {
		summaries = append(summaries, rec.Summary)
	}
	joined := strings.Join(summaries, ",")
	if !strings.Contains(joined, "Standup") || !strings.Contains(joined, "Dentist") {
		t.Errorf("expected Standup and Dentist, got %q", joined)
	}
}

func TestRunScanNoMatches(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer
	out := &outputWriter{json: false, writer: &buf}

	// A Tuesday with nothing scheduled.
	if err := runScan(tztable.New(), path, "2024-01-30", false, out); err != nil {
		t.Fatalf("runScan() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No occurrences found.") {
		t.Errorf("expected no-occurrences message, got %q", buf.String())
	}
}

func TestRunScanTableOutput(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer
	out := &outputWriter{json: false, writer: &buf}

	if err := runScan(tztable.New(), path, "2024-01-29", false, out); err != nil {
		t.Fatalf("runScan() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "START") {
		t.Errorf("expected START header, got %q", output)
	}
	if !strings.Contains(output, "2024-01-29T09:00:00Z") {
		t.Errorf("expected projected start, got %q", output)
	}
	if !strings.Contains(output, "standup@example.com") {
		t.Errorf("expected UID column, got %q", output)
	}
}

func TestRunScanDiffOutput(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer
	out := &outputWriter{json: false, noColor: true, writer: &buf}

	if err := runScan(tztable.New(), path, "2024-01-29", true, out); err != nil {
		t.Fatalf("runScan() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "-DTSTART:20240101T090000Z") {
		t.Errorf("expected removal line in diff, got %q", output)
	}
	if !strings.Contains(output, "+DTSTART:20240129T090000Z") {
		t.Errorf("expected addition line in diff, got %q", output)
	}
}

func TestRunScanBadDate(t *testing.T) {
	path := writeSample(t)

	out := &outputWriter{json: false, writer: &bytes.Buffer{}}
	if err := runScan(tztable.New(), path, "29/01/2024", false, out); err == nil {
		t.Fatal("expected error for malformed target date")
	}
}

func TestRunScanMissingFile(t *testing.T) {
	out := &outputWriter{json: false, writer: &bytes.Buffer{}}
	if err := runScan(tztable.New(), filepath.Join(t.TempDir(), "absent.ics"), "2024-01-29", false, out); err == nil {
		t.Fatal("expected error for missing file")
	}
}
