package main

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/wrenth/icalq/pkg/icalq/document"
	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

// generateFlags holds the generate command's flags.
type generateFlags struct {
	Title       string `required:"" help:"Event title"`
	Start       string `required:"" help:"Wall-clock start (2006-01-02T15:04:05)"`
	End         string `required:"" help:"Wall-clock end (2006-01-02T15:04:05)"`
	Description string `help:"Event description"`
	Location    string `help:"Event location"`
	TZ          string `help:"Zone identifier (defaults to UTC)"`
	UID         string `help:"Event identifier (auto-generated if absent)"`
	Output      string `short:"o" help:"Write to file instead of stdout" type:"path"`
}

// runGenerate composes one event document and writes it to the output
// file or stdout.
func runGenerate(table *tztable.Table, cfg config, flags generateFlags, out *outputWriter) error {
	start, err := parseWallClock(flags.Start)
	if err != nil {
		return errors.Wrapf(err, "start %q", flags.Start)
	}
	end, err := parseWallClock(flags.End)
	if err != nil {
		return errors.Wrapf(err, "end %q", flags.End)
	}

	zone := flags.TZ
	if zone == "" {
		zone = cfg.Zone
	}

	doc, err := document.NewGenerator(table).Generate(document.EventDescriptor{
		UID:         flags.UID,
		Namespace:   cfg.Namespace,
		Title:       flags.Title,
		Description: flags.Description,
		Location:    flags.Location,
		Start:       start,
		End:         end,
		Zone:        zone,
	})
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, []byte(doc), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", flags.Output)
		}
		out.writeVerbose("Wrote %s", flags.Output)
		return nil
	}

	out.writeMessage(doc)
	return nil
}

// parseWallClock accepts a full wall-clock reading or a bare date
// (midnight).
func parseWallClock(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
