package board

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"painel.telasesalas.org/internal/logging"
)

func loadFixture(t *testing.T) *Table {
	t.Helper()
	table, err := Load(filepath.Join("testdata", "integracao.csv"), Options{})
	require.NoError(t, err)
	return table
}

func TestLoadFixture(t *testing.T) {
	table := loadFixture(t)

	assert.Equal(t, 6, table.Len())
	assert.Equal(t, filepath.Join("testdata", "integracao.csv"), table.Source())
	assert.False(t, table.LoadedAt().IsZero())
}

func TestReadNormalizesHeaders(t *testing.T) {
	table := loadFixture(t)

	columns := table.Columns()
	require.Len(t, columns, 21)
	assert.Equal(t, ColLocal, columns[0])
	assert.Equal(t, ColProgramOwner, columns[8])
	assert.Equal(t, ColMonth, columns[18])
	assert.Equal(t, ColYear, columns[19])
	assert.Equal(t, ColPeriod, columns[20], "derived column is appended last")

	for _, c := range append(append([]string{}, TextColumns...), DateColumns...) {
		assert.True(t, table.HasColumn(c), "expected column %s", c)
	}
}

func TestReadFillsEveryDeclaredColumn(t *testing.T) {
	table := loadFixture(t)

	declared := append(append(append([]string{}, TextColumns...), DateColumns...), ColScore, ColMonth, ColYear)
	for _, r := range table.All().Records() {
		for _, c := range declared {
			assert.NotEmpty(t, r.Display(c), "column %s must never display as missing", c)
		}
	}

	blank := table.Record(5)
	for _, c := range TextColumns {
		assert.Equal(t, TextSentinel, blank.Display(c))
		assert.True(t, blank.Missing(c))
	}
	for _, c := range DateColumns {
		assert.Equal(t, DateSentinel, blank.Display(c))
	}
	assert.Equal(t, "-1", blank.Display(ColScore))
	assert.False(t, blank.Score().Valid)
}

func TestReadKeepsWhitespaceCells(t *testing.T) {
	csv := "MATERIAL,FASE,MÊS,ANO\n   ,,Janeiro,2024\nNA, Entregue ,Janeiro,2024\n"

	table, err := Read(strings.NewReader(csv), Options{})
	require.NoError(t, err)

	spaced := table.Record(0)
	assert.False(t, spaced.Missing(ColMaterial), "whitespace is a value, not a missing marker")
	assert.Equal(t, "   ", spaced.Display(ColMaterial))
	assert.True(t, spaced.Missing(ColPhase))

	marker := table.Record(1)
	assert.True(t, marker.Missing(ColMaterial))
	assert.Equal(t, " Entregue ", marker.Display(ColPhase))
}

func TestReadKeepsPeriodSpacing(t *testing.T) {
	csv := "PROJETO,MÊS,ANO\nTela 1, Janeiro,2024\nTela 2,Jan--Fev,2024\n"

	table, err := Read(strings.NewReader(csv), Options{})
	require.NoError(t, err)

	assert.True(t, table.HasPeriod(" Janeiro - 2024"))
	assert.True(t, table.HasPeriod("Jan--Fev - 2024"))
	assert.Equal(t, 1, table.Filter(" Janeiro - 2024").Len())
	assert.Equal(t, 0, table.Filter("Janeiro - 2024").Len())
}

func TestReadDerivesPeriod(t *testing.T) {
	table := loadFixture(t)

	for _, r := range table.All().Records() {
		assert.Equal(t, r.Display(ColMonth)+" - "+r.Display(ColYear), r.Period())
		assert.Equal(t, r.Period(), r.Display(ColPeriod))
	}

	assert.Equal(t, "Janeiro - 2024", table.Record(0).Period())
	assert.Equal(t, "Não informado - Não informado", table.Record(5).Period())
}

func TestReadParsesScores(t *testing.T) {
	table := loadFixture(t)

	first := table.Record(0)
	require.True(t, first.Score().Valid)
	assert.Equal(t, 9.0, first.Score().Float64)

	decimalComma := table.Record(2)
	require.True(t, decimalComma.Score().Valid)
	assert.Equal(t, 8.5, decimalComma.Score().Float64)
	assert.Equal(t, "8.5", decimalComma.Display(ColScore))

	missing := table.Record(1)
	assert.False(t, missing.Score().Valid)
	assert.Equal(t, "-1", missing.Display(ColScore))
}

func TestReadRequiresPeriodInputs(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		missing string
	}{
		{"no month", "PROJETO,ANO\nTela,2024\n", ColMonth},
		{"no year", "PROJETO,MÊS\nTela,Janeiro\n", ColYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.csv), Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingColumn)

			var mce *MissingColumnError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, tt.missing, mce.Column)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestReadToleratesAbsentOptionalColumns(t *testing.T) {
	table, err := Read(strings.NewReader("fase,mês,ano\nEntregue,Março,2024\n"), Options{})
	require.NoError(t, err)

	r := table.Record(0)
	assert.False(t, table.HasColumn(ColMaterial))
	assert.Equal(t, "Entregue", r.Display(ColPhase))
	assert.Equal(t, "Março - 2024", r.Period())
	assert.Error(t, table.Require(ColMaterial))
	assert.NoError(t, table.Require(ColPhase, ColPeriod))
}

func TestReadTreatsSentinelLiteralsAsMissing(t *testing.T) {
	csv := "MATERIAL,DESIGN FINAL,NPS,MÊS,ANO\nNão informado,-,-1,Maio,2024\nNA,N/A,nan,Maio,2024\n"
	table, err := Read(strings.NewReader(csv), Options{})
	require.NoError(t, err)

	for _, r := range table.All().Records() {
		assert.True(t, r.Missing(ColMaterial))
		assert.True(t, r.Missing(ColFinalDesign))
		assert.True(t, r.Missing(ColScore))
	}
}

func TestReadHandlesExcelExports(t *testing.T) {
	t.Run("semicolon delimiter with BOM", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Projeto;Fase;Mês;Ano\nTela A;Entregue;Abril;2024\n")...)
		table, err := Read(bytes.NewReader(data), Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{ColProject, ColPhase, ColMonth, ColYear, ColPeriod}, table.Columns())
		assert.Equal(t, "Abril - 2024", table.Record(0).Period())
	})

	t.Run("windows-1252 bytes are decoded", func(t *testing.T) {
		encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Resp. Programação,Mês,Ano\nBruno,Março,2024\n"))
		require.NoError(t, err)

		table, err := Read(bytes.NewReader(encoded), Options{})
		require.NoError(t, err)

		r := table.Record(0)
		assert.Equal(t, "Bruno", r.Display(ColProgramOwner))
		assert.Equal(t, "Março - 2024", r.Period())
	})

	t.Run("explicit delimiter overrides sniffing", func(t *testing.T) {
		table, err := Read(strings.NewReader("MÊS|ANO\nJunho|2024\n"), Options{Delimiter: '|'})
		require.NoError(t, err)
		assert.Equal(t, "Junho - 2024", table.Record(0).Period())
	})

	t.Run("unknown encoding is rejected", func(t *testing.T) {
		_, err := Read(strings.NewReader("MÊS,ANO\n"), Options{Encoding: "ebcdic"})
		assert.Error(t, err)
	})
}

func TestReadNamesBlankAndDuplicateHeaders(t *testing.T) {
	table, err := Read(strings.NewReader("MÊS,ANO,,status,Status\nJulho,2024,x,a,b\n"), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{ColMonth, ColYear, "UNNAMED: 2", ColStatus, "STATUS.1", ColPeriod}, table.Columns())
	r := table.Record(0)
	assert.Equal(t, "a", r.Display(ColStatus))
	assert.Equal(t, "b", r.Display("STATUS.1"))
}

func TestReadEmptyFile(t *testing.T) {
	_, err := Read(strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadLogsDatasetStatistics(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	path := filepath.Join(t.TempDir(), "integracao.csv")
	require.NoError(t, os.WriteFile(path, []byte("MÊS,ANO\nJaneiro,2024\nJaneiro,2024\nMaio,2024\n"), 0o644))

	_, err := Load(path, Options{Logger: logger})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"msg":"dataset_loaded"`)
	assert.Contains(t, output, `"rows":3`)
	assert.Contains(t, output, `"periods":2`)
	assert.Contains(t, output, `"component":"board_loader"`)
}
