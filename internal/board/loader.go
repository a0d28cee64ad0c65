package board

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v5"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"painel.telasesalas.org/internal/logging"
)

// Options controls how the source file is decoded.
type Options struct {
	// Delimiter is the field separator. Zero sniffs it from the header line.
	Delimiter rune
	// Encoding is auto, utf-8 or windows-1252. Empty means auto.
	Encoding string
	// Logger receives the dataset_loaded record. Nil disables logging.
	Logger *slog.Logger
}

// Load opens path and reads it with Read. A missing file is returned as an
// error wrapping fs.ErrNotExist.
func Load(path string, opts Options) (table *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer logging.HandleDeferredError(&err, f.Close, opts.Logger, "close_data_file")

	start := time.Now()
	table, err = Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	table.source = path

	logging.LogOperation(opts.Logger, "dataset_loaded",
		slog.String("source", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.columns)),
		slog.Int("periods", len(table.periods)),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "board_loader"))

	return table, nil
}

// Read parses a delimited table with a header row, normalizes the labels,
// holds missing cells as null values and derives ColPeriod. ColMonth and
// ColYear are required; other declared columns may be absent.
func Read(r io.Reader, opts Options) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading data: %w", err)
	}

	data, err := decode(stripBOM(raw), opts.Encoding)
	if err != nil {
		return nil, err
	}

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = sniffDelimiter(data)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	table := &Table{
		loadedAt: time.Now(),
		columns:  normalizeHeaders(header),
	}
	table.index = make(map[string]int, len(table.columns)+1)
	for i, c := range table.columns {
		table.index[c] = i
	}

	if err := table.Require(PeriodInputs...); err != nil {
		return nil, err
	}

	sourceWidth := len(table.columns)
	if _, ok := table.index[ColPeriod]; !ok {
		table.index[ColPeriod] = len(table.columns)
		table.columns = append(table.columns, ColPeriod)
	}

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}
		table.records = append(table.records, table.newRecord(fields, sourceWidth))
	}

	table.periods = sortedPeriods(table.records)
	return table, nil
}

func (t *Table) newRecord(fields []string, width int) Record {
	rec := Record{
		index: t.index,
		cells: make([]null.String, width),
	}

	for i := 0; i < width && i < len(fields); i++ {
		column := t.columns[i]
		value := fields[i]
		if isNA(value) || (GroupOf(column) != GroupOther && value == Sentinel(column)) {
			continue
		}
		rec.cells[i] = null.StringFrom(value)
	}

	if score := rec.Value(ColScore); score.Valid {
		normalized := strings.Replace(strings.TrimSpace(score.String), ",", ".", 1)
		if f, err := strconv.ParseFloat(normalized, 64); err == nil {
			rec.score = null.FloatFrom(f)
		}
	}

	rec.period = rec.Display(ColMonth) + periodSeparator + rec.Display(ColYear)
	return rec
}

// normalizeHeaders applies normalizeHeader to every label. Blank labels become
// "UNNAMED: <i>" and repeated labels get a ".<n>" suffix so that every
// column stays addressable.
func normalizeHeaders(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		label := normalizeHeader(h)
		if label == "" {
			label = unnamedColumnLabel + strconv.Itoa(i)
		}
		if n := seen[label]; n > 0 {
			seen[label] = n + 1
			label = label + "." + strconv.Itoa(n)
		} else {
			seen[label] = 1
		}
		out[i] = label
	}
	return out
}

func sortedPeriods(records []Record) []string {
	seen := make(map[string]struct{})
	var periods []string
	for _, r := range records {
		if _, ok := seen[r.period]; ok {
			continue
		}
		seen[r.period] = struct{}{}
		periods = append(periods, r.period)
	}
	collate.New(language.BrazilianPortuguese).SortStrings(periods)
	return periods
}
