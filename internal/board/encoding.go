package board

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Supported source encodings.
const (
	EncodingAuto        = "auto"
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	candidates = []rune{',', ';', '\t'}
	naMarkers  = buildNAMarkers()
)

// buildNAMarkers lists the cell values data tools conventionally write for missing data.
func buildNAMarkers() map[string]struct{} {
	markers := []string{
		"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a",
		"nan", "null",
	}
	out := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		out[m] = struct{}{}
	}
	return out
}

func stripBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}

// decode converts data to UTF-8. In auto mode invalid UTF-8 is taken to be
// windows-1252, the charset of Excel exports on pt-BR Windows.
func decode(data []byte, encoding string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingAuto:
		if utf8.Valid(data) {
			return data, nil
		}
		return charmap.Windows1252.NewDecoder().Bytes(data)
	case EncodingUTF8, "utf8":
		return data, nil
	case EncodingWindows1252, "cp1252", "latin1", "iso-8859-1":
		return charmap.Windows1252.NewDecoder().Bytes(data)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// sniffDelimiter picks the candidate that occurs most often in the header
// line outside quotes. Comma wins ties.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	counts := make(map[rune]int, len(candidates))
	inQuotes := false
	for _, r := range string(line) {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}

	best := ','
	for _, c := range candidates {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// normalizeHeader trims and upper-cases a label. NFC keeps "MÊS" typed with
// a combining accent equal to the precomposed form.
func normalizeHeader(label string) string {
	// Casers are stateful; one per call.
	return cases.Upper(language.BrazilianPortuguese).String(norm.NFC.String(strings.TrimSpace(label)))
}

// isNA matches the raw cell exactly. A whitespace-only cell is a value.
func isNA(raw string) bool {
	_, ok := naMarkers[raw]
	return ok
}
