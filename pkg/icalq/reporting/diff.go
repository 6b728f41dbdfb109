// Package reporting renders human-readable views of scan results,
// currently a colorized unified diff between an event block as found
// in the document and its projected form for a matched occurrence.
package reporting

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// BlockDiff returns a unified diff of an event block before and after
// occurrence projection. The empty string means the two are identical.
func BlockDiff(original, projected string) (string, error) {
	if original == projected {
		return "", nil
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.ReplaceAll(original, "\r\n", "\n")),
		B:        difflib.SplitLines(strings.ReplaceAll(projected, "\r\n", "\n")),
		FromFile: "series",
		ToFile:   "occurrence",
		Context:  2,
	})
	if err != nil {
		return "", errors.Wrap(err, "computing block diff")
	}
	return diff, nil
}

// Colorize applies conventional diff coloring: headers bold, hunk
// markers cyan, removals red, additions green.
func Colorize(diff string) string {
	out := &strings.Builder{}
	bold := color.New(color.Bold)
	bold.EnableColor()
	cyan := color.New(color.FgCyan)
	cyan.EnableColor()
	red := color.New(color.FgRed)
	red.EnableColor()
	green := color.New(color.FgGreen)
	green.EnableColor()

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			bold.Fprint(out, line)
		case strings.HasPrefix(line, "@@"):
			cyan.Fprint(out, line)
		case strings.HasPrefix(line, "-"):
			red.Fprint(out, line)
		case strings.HasPrefix(line, "+"):
			green.Fprint(out, line)
		default:
			out.WriteString(line)
		}
		if i < len(lines)-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}
