package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

var version = "dev"

type CLI struct {
	Config  string `help:"Config file path" default:"~/.config/icalq/config.yaml" type:"path"`
	JSON    bool   `help:"JSON output format"`
	Verbose bool   `help:"Verbose logging"`
	NoColor bool   `help:"Disable colored output"`

	Scan struct {
		File string `arg:"" help:"Calendar document path, or - for stdin"`
		Date string `required:"" help:"Target date (YYYY-MM-DD)"`
		Diff bool   `help:"Show series-vs-occurrence diff for recurring matches"`
	} `cmd:"" help:"List event occurrences on a date"`

	Generate generateFlags `cmd:"" help:"Generate a calendar document for one event"`

	Zones struct{} `cmd:"" help:"List the timezone rule table"`

	Version struct{} `cmd:"" help:"Show version"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("icalq"),
		kong.Description("iCalendar occurrence scanner and generator"),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetOutput(os.Stderr)

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}
	table := tztable.New(cfg.Zones...)

	out := newOutputWriter(cli.JSON, cli.NoColor, cli.Verbose)

	switch ctx.Command() {
	case "scan <file>":
		if err := runScan(table, cli.Scan.File, cli.Scan.Date, cli.Scan.Diff, out); err != nil {
			out.writeError(err)
			os.Exit(2)
		}

	case "generate":
		if err := runGenerate(table, cfg, cli.Generate, out); err != nil {
			out.writeError(err)
			os.Exit(2)
		}

	case "zones":
		if err := runZones(table, out); err != nil {
			out.writeError(err)
			os.Exit(2)
		}

	case "version":
		fmt.Printf("icalq %s\n", version)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", ctx.Command())
		os.Exit(1)
	}
}
