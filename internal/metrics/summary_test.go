package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painel.telasesalas.org/internal/board"
)

const boardCSV = `EMPREENDIMENTO,PROJETO,MATERIAL,FASE,PRIMEIRAS TELAS,DESIGN FINAL,PROGRAMAÇÃO FINAL,MÊS,ANO
Residencial Jardins,Tela Decorado,Recebido,Entregue,12/01/2024,20/01/2024,28/01/2024,Janeiro,2024
Residencial Jardins,Sala Interativa,,Ajustes Design,15/01/2024,,,Janeiro,2024
Torre Norte,Tela Fachada,Recebido,Ajustes Programação,18/01/2024,25/01/2024,,Janeiro,2024
Vista Mar,Tela Lobby,,Em produção,,,,Fevereiro,2024
Vista Mar,Sala Vendas,Recebido,ENTREGUE,10/02/2024,14/02/2024,20/02/2024,Fevereiro,2024
`

func readBoard(t *testing.T, csv string) *board.Table {
	t.Helper()
	table, err := board.Read(strings.NewReader(csv), board.Options{})
	require.NoError(t, err)
	return table
}

func TestComputeJanuary(t *testing.T) {
	table := readBoard(t, boardCSV)

	s, err := Compute(table.Filter("Janeiro - 2024"))
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Period:                 "Janeiro - 2024",
		InProgress:             3,
		Developments:           2,
		Projects:               3,
		AwaitingMaterial:       1,
		FinalDesign:            2,
		DesignAdjustments:      1,
		FirstScreens:           3,
		FinalProgramming:       1,
		ProgrammingAdjustments: 1,
		Delivered:              1,
		OnHold:                 2,
	}, s)
}

func TestComputeFebruary(t *testing.T) {
	table := readBoard(t, boardCSV)

	s, err := Compute(table.Filter("Fevereiro - 2024"))
	require.NoError(t, err)

	assert.Equal(t, 2, s.InProgress)
	assert.Equal(t, 1, s.Developments)
	assert.Equal(t, 2, s.Projects)
	assert.Equal(t, 1, s.AwaitingMaterial)
	assert.Equal(t, 1, s.FirstScreens)
	assert.Equal(t, 0, s.DesignAdjustments)
	assert.Equal(t, 1, s.Delivered, "delivered phase matches case-insensitively")
	assert.Equal(t, 1, s.OnHold)
}

func TestDeliveredPlusOnHoldEqualsRowCount(t *testing.T) {
	table := readBoard(t, boardCSV)

	summaries, err := ByPeriod(table)
	require.NoError(t, err)
	require.Len(t, summaries, len(table.Periods()))

	for _, s := range summaries {
		assert.Equal(t, s.InProgress, s.Delivered+s.OnHold, "period %s", s.Period)
		assert.Equal(t, table.Filter(s.Period).Len(), s.InProgress)
	}
}

func TestComputeSingleRowPhases(t *testing.T) {
	tests := []struct {
		phase     string
		delivered int
		onHold    int
	}{
		{"Entregue", 1, 0},
		{"Em produção", 0, 1},
		{"entregue ", 0, 1},
		{"", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			csv := "EMPREENDIMENTO,PROJETO,MATERIAL,FASE,PRIMEIRAS TELAS,DESIGN FINAL,PROGRAMAÇÃO FINAL,MÊS,ANO\n" +
				"Torre,Tela,x,\"" + tt.phase + "\",-,-,-,Maio,2024\n"
			table := readBoard(t, csv)

			s, err := Compute(table.Filter("Maio - 2024"))
			require.NoError(t, err)
			assert.Equal(t, tt.delivered, s.Delivered)
			assert.Equal(t, tt.onHold, s.OnHold)
		})
	}
}

func TestComputeEmptyViewIsZero(t *testing.T) {
	table := readBoard(t, boardCSV)

	t.Run("unknown period", func(t *testing.T) {
		s, err := Compute(table.Filter("Dezembro - 1999"))
		require.NoError(t, err)
		for name, v := range s.AsMap() {
			assert.Zero(t, v, name)
		}
	})

	t.Run("zero view", func(t *testing.T) {
		s, err := Compute(board.View{})
		require.NoError(t, err)
		for name, v := range s.AsMap() {
			assert.Zero(t, v, name)
		}
	})

	t.Run("header only table", func(t *testing.T) {
		empty := readBoard(t, strings.SplitN(boardCSV, "\n", 2)[0]+"\n")
		assert.Empty(t, empty.Periods())

		s, err := Compute(empty.All())
		require.NoError(t, err)
		assert.Equal(t, Summary{}, s)
	})
}

func TestComputeMissingColumn(t *testing.T) {
	table := readBoard(t, "PROJETO,FASE,MÊS,ANO\nTela,Entregue,Maio,2024\n")

	_, err := Compute(table.Filter("Maio - 2024"))
	require.Error(t, err)
	assert.ErrorIs(t, err, board.ErrMissingColumn)
	assert.Contains(t, err.Error(), board.ColDevelopment)

	err = Validate(table)
	assert.ErrorIs(t, err, board.ErrMissingColumn)

	_, err = ByPeriod(table)
	assert.ErrorIs(t, err, board.ErrMissingColumn)
}

func TestValidateAcceptsCompleteTable(t *testing.T) {
	assert.NoError(t, Validate(readBoard(t, boardCSV)))
}

func TestSummaryMappings(t *testing.T) {
	s := Summary{InProgress: 5, Developments: 2, Projects: 4, Delivered: 3, OnHold: 2}

	items := s.Items()
	require.Len(t, items, len(Names()))
	for i, name := range Names() {
		assert.Equal(t, name, items[i].Name)
	}

	m := s.AsMap()
	assert.Len(t, m, 11)
	assert.Equal(t, 5, m[NameInProgress])
	assert.Equal(t, 2, m[NameDevelopments])
	assert.Equal(t, 4, m[NameProjects])
	assert.Equal(t, 3, m[NameDelivered])
	assert.Equal(t, 2, m[NameOnHold])

	v, ok := s.Value(NameProjects)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = s.Value("Desconhecido")
	assert.False(t, ok)
}

func TestNamesReturnsACopy(t *testing.T) {
	n := Names()
	n[0] = "changed"
	assert.Equal(t, NameInProgress, Names()[0])
}
