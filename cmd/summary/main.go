// Command summary prints the dashboard counters of the Pipefy export as a
// terminal table, one column per period.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"painel.telasesalas.org/internal/app"
	"painel.telasesalas.org/internal/appconf"
	"painel.telasesalas.org/internal/board"
	"painel.telasesalas.org/internal/logging"
	"painel.telasesalas.org/internal/metrics"
)

type options struct {
	configPath string
	dataPath   string
	period     string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "painel.yaml", "YAML configuration file (optional)")
	fs.StringVar(&opts.dataPath, "data", "", "Pipefy CSV export (overrides the configuration)")
	fs.StringVar(&opts.period, "period", "", "Only print this period")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := appconf.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}

	logger := logging.NewLogger(stderr, slog.LevelWarn, "text")

	table, err := app.LoadBoard(cfg, logger)
	if err != nil {
		return err
	}

	summaries, err := selectSummaries(table, opts.period)
	if err != nil {
		return err
	}

	color.New(color.FgCyan, color.Bold).Fprintf(stdout, "\n%s\n", cfg.Title)
	fmt.Fprintf(stdout, "%s: %d registros, %d períodos\n\n", table.Source(), table.Len(), len(table.Periods()))

	writeSummaryTable(stdout, summaries)
	return nil
}

// selectSummaries computes every period, or only period when it is set.
func selectSummaries(table *board.Table, period string) ([]metrics.Summary, error) {
	if period == "" {
		return metrics.ByPeriod(table)
	}
	if !table.HasPeriod(period) {
		return nil, fmt.Errorf("unknown period %q", period)
	}
	s, err := metrics.Compute(table.Filter(period))
	if err != nil {
		return nil, err
	}
	return []metrics.Summary{s}, nil
}

// writeSummaryTable renders one row per metric and one column per summary.
func writeSummaryTable(w io.Writer, summaries []metrics.Summary) {
	header := make([]string, 0, len(summaries)+1)
	header = append(header, "Métrica")
	alignment := []int{tablewriter.ALIGN_LEFT}
	for _, s := range summaries {
		header = append(header, s.Period)
		alignment = append(alignment, tablewriter.ALIGN_RIGHT)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment(alignment)

	for _, name := range metrics.Names() {
		row := make([]string, 0, len(summaries)+1)
		row = append(row, name)
		for _, s := range summaries {
			v, _ := s.Value(name)
			row = append(row, strconv.Itoa(v))
		}
		table.Append(row)
	}

	table.Render()
}
