package main

import (
	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

// zoneOutput represents one rule-table entry for JSON output.
type zoneOutput struct {
	ID             string `json:"id"`
	StandardOffset string `json:"standardOffset"`
	DaylightOffset string `json:"daylightOffset,omitempty"`
	DaylightRule   string `json:"daylightRule,omitempty"`
	StandardRule   string `json:"standardRule,omitempty"`
}

// runZones lists the timezone rule table.
func runZones(table *tztable.Table, out *outputWriter) error {
	ids := table.Zones()

	if out.json {
		output := make([]zoneOutput, 0, len(ids))
		for _, id := range ids {
			r, _ := table.Lookup(id)
			output = append(output, zoneOutput{
				ID:             r.ID,
				StandardOffset: r.StandardOffset,
				DaylightOffset: r.DaylightOffset,
				DaylightRule:   r.DaylightStart.RRule,
				StandardRule:   r.StandardStart.RRule,
			})
		}
		return out.writeJSON(output)
	}

	headers := []string{"ZONE", "STANDARD", "DAYLIGHT", "DST RULE"}
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		r, _ := table.Lookup(id)
		dst := "-"
		rule := "-"
		if r.HasDaylight() {
			dst = r.DaylightOffset
			rule = r.DaylightStart.RRule
		}
		rows = append(rows, []string{r.ID, r.StandardOffset, dst, rule})
	}
	return out.writeTable(headers, rows)
}
