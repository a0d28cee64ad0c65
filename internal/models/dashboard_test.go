package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painel.telasesalas.org/internal/board"
	"painel.telasesalas.org/internal/metrics"
)

const boardCSV = `EMPREENDIMENTO,PROJETO,MATERIAL,DESIGN FINAL,FASE,PRIMEIRAS TELAS,PROGRAMAÇÃO FINAL,MÊS,ANO
Sala A,Tela 1,ok,2024-01-10,Entregue,2024-01-02,2024-01-20,Janeiro,2024
Sala B,Tela 2,,,Design,,,Janeiro,2024
Sala B,Tela 3,ok,,Programação,2024-02-01,,Fevereiro,2024
`

func readBoard(t *testing.T) *board.Table {
	t.Helper()
	table, err := board.Read(strings.NewReader(boardCSV), board.Options{})
	require.NoError(t, err)
	return table
}

func TestNewPeriodsEntry(t *testing.T) {
	entry := NewPeriodsEntry(readBoard(t))

	assert.Equal(t, "Fevereiro - 2024", entry.Default)
	assert.Equal(t, []string{"Fevereiro - 2024", "Janeiro - 2024"}, entry.Periods)
}

func TestNewMetricsEntry(t *testing.T) {
	view := readBoard(t).Filter("Janeiro - 2024")
	summary, err := metrics.Compute(view)
	require.NoError(t, err)

	entry := NewMetricsEntry(view, summary)

	assert.Equal(t, "Janeiro - 2024", entry.Period)
	assert.Equal(t, 2, entry.Rows)
	assert.Equal(t, 2, entry.Values[metrics.NameInProgress])
	assert.Equal(t, 1, entry.Values[metrics.NameDelivered])
	assert.Equal(t, 1, entry.Values[metrics.NameOnHold])
	require.Len(t, entry.Metrics, len(metrics.Names()))
	assert.Equal(t, metrics.NameInProgress, entry.Metrics[0].Name)
}

func TestNewHealthModel(t *testing.T) {
	health := NewHealthModel(readBoard(t))

	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 3, health.Rows)
	assert.Equal(t, 2, health.Periods)
}
