package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/wrenth/icalq/pkg/icalq/document"
	"github.com/wrenth/icalq/pkg/icalq/reporting"
	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

// runScan reads a calendar document and prints the occurrences falling
// on the target date. Per-block problems are warnings, not failures:
// the scan still reports whatever it could extract.
func runScan(table *tztable.Table, file, date string, showDiff bool, out *outputWriter) error {
	target, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.Wrapf(err, "target date %q (want YYYY-MM-DD)", date)
	}

	doc, err := readDocument(file)
	if err != nil {
		return err
	}

	out.writeVerbose("Scanning %s for occurrences on %s...", file, date)

	records, warns := document.NewScanner(table).Scan(doc, target)
	if warns != nil {
		log.Warn(warns)
	}

	if out.json {
		if records == nil {
			records = []document.EventRecord{}
		}
		return out.writeJSON(records)
	}

	if len(records) == 0 {
		out.writeMessage("No occurrences found.")
		return nil
	}

	headers := []string{"START", "END", "SUMMARY", "UID"}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{rec.Start, rec.End, truncateString(rec.Summary, 40), rec.UID}
	}
	if err := out.writeTable(headers, rows); err != nil {
		return err
	}

	if showDiff {
		for _, rec := range records {
			if !rec.Recurring {
				continue
			}
			if err := writeOccurrenceDiff(rec, doc, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeOccurrenceDiff prints the series-vs-occurrence diff of one
// recurring match.
func writeOccurrenceDiff(rec document.EventRecord, doc string, out *outputWriter) error {
	original, ok := originalBlock(doc, rec)
	if !ok {
		return nil
	}
	diff, err := reporting.BlockDiff(original, rec.Block)
	if err != nil {
		return err
	}
	if diff == "" {
		return nil
	}
	if !out.noColor {
		diff = reporting.Colorize(diff)
	}
	out.writeMessage("")
	out.writeMessage(diff)
	return nil
}

// originalBlock finds the source block of a record by UID, falling
// back to the projected block when the UID is absent.
func originalBlock(doc string, rec document.EventRecord) (string, bool) {
	if rec.UID == "" {
		return "", false
	}
	for _, block := range document.Blocks(doc) {
		if document.BlockUID(block) == rec.UID {
			return block, true
		}
	}
	return "", false
}

// readDocument loads the document from a path, or stdin for "-".
func readDocument(file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", file)
	}
	return string(data), nil
}
