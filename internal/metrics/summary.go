// Package metrics computes the dashboard counters for a filtered view of
// the board. Every counter is a pure function of the view.
package metrics

import (
	"github.com/hashicorp/go-set/v2"

	"painel.telasesalas.org/internal/board"
)

// Metric names as shown on the dashboard.
const (
	NameInProgress             = "Em Andamento"
	NameDevelopments           = "Salas"
	NameProjects               = "Telas"
	NameAwaitingMaterial       = "Aguardando Materiais"
	NameFinalDesign            = "Design Final"
	NameDesignAdjustments      = "Ajustes Design"
	NameFirstScreens           = "Primeiras Telas"
	NameFinalProgramming       = "Programação Final"
	NameProgrammingAdjustments = "Ajustes Programação"
	NameDelivered              = "Entregues"
	NameOnHold                 = "Em Espera"
)

var names = []string{
	NameInProgress,
	NameDevelopments,
	NameProjects,
	NameAwaitingMaterial,
	NameFinalDesign,
	NameDesignAdjustments,
	NameFirstScreens,
	NameFinalProgramming,
	NameProgrammingAdjustments,
	NameDelivered,
	NameOnHold,
}

// RequiredColumns are read by Compute.
var RequiredColumns = []string{
	board.ColDevelopment,
	board.ColProject,
	board.ColMaterial,
	board.ColFinalDesign,
	board.ColPhase,
	board.ColFirstScreens,
	board.ColFinalProgram,
}

// Names returns the metric names in dashboard order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Summary holds the counters of one view.
type Summary struct {
	Period                 string `json:"period"`
	InProgress             int    `json:"inProgress"`
	Developments           int    `json:"developments"`
	Projects               int    `json:"projects"`
	AwaitingMaterial       int    `json:"awaitingMaterial"`
	FinalDesign            int    `json:"finalDesign"`
	DesignAdjustments      int    `json:"designAdjustments"`
	FirstScreens           int    `json:"firstScreens"`
	FinalProgramming       int    `json:"finalProgramming"`
	ProgrammingAdjustments int    `json:"programmingAdjustments"`
	Delivered              int    `json:"delivered"`
	OnHold                 int    `json:"onHold"`
}

// Metric is a named counter.
type Metric struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Validate fails with a *board.MissingColumnError when the table lacks a
// column Compute reads.
func Validate(table *board.Table) error {
	return table.Require(RequiredColumns...)
}

// Compute counts the view. A view without rows yields a zero Summary.
func Compute(view board.View) (Summary, error) {
	s := Summary{Period: view.Period()}

	if view.Columns() != nil {
		for _, c := range RequiredColumns {
			if !view.HasColumn(c) {
				return Summary{}, &board.MissingColumnError{Column: c}
			}
		}
	}

	developments := set.New[string](view.Len())
	projects := set.New[string](view.Len())

	for _, r := range view.Records() {
		developments.Insert(r.Display(board.ColDevelopment))
		projects.Insert(r.Display(board.ColProject))

		if r.Missing(board.ColMaterial) {
			s.AwaitingMaterial++
		}
		if !r.Missing(board.ColFinalDesign) {
			s.FinalDesign++
		}
		if !r.Missing(board.ColFirstScreens) {
			s.FirstScreens++
		}
		if !r.Missing(board.ColFinalProgram) {
			s.FinalProgramming++
		}

		phase := ClassifyPhase(r.Display(board.ColPhase))
		if phase.Has(PhaseDesign) {
			s.DesignAdjustments++
		}
		if phase.Has(PhaseProgramming) {
			s.ProgrammingAdjustments++
		}
		if phase.Has(PhaseDelivered) {
			s.Delivered++
		}
	}

	s.InProgress = view.Len()
	s.Developments = developments.Size()
	s.Projects = projects.Size()
	s.OnHold = s.InProgress - s.Delivered
	return s, nil
}

// ByPeriod computes one Summary per period of the table, in period order.
func ByPeriod(table *board.Table) ([]Summary, error) {
	periods := table.Periods()
	out := make([]Summary, 0, len(periods))
	for _, p := range periods {
		s, err := Compute(table.Filter(p))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Items returns the counters as named metrics in dashboard order.
func (s Summary) Items() []Metric {
	return []Metric{
		{NameInProgress, s.InProgress},
		{NameDevelopments, s.Developments},
		{NameProjects, s.Projects},
		{NameAwaitingMaterial, s.AwaitingMaterial},
		{NameFinalDesign, s.FinalDesign},
		{NameDesignAdjustments, s.DesignAdjustments},
		{NameFirstScreens, s.FirstScreens},
		{NameFinalProgramming, s.FinalProgramming},
		{NameProgrammingAdjustments, s.ProgrammingAdjustments},
		{NameDelivered, s.Delivered},
		{NameOnHold, s.OnHold},
	}
}

// AsMap returns the counters keyed by metric name.
func (s Summary) AsMap() map[string]int {
	items := s.Items()
	out := make(map[string]int, len(items))
	for _, m := range items {
		out[m.Name] = m.Value
	}
	return out
}

// Value returns the counter called name.
func (s Summary) Value(name string) (int, bool) {
	v, ok := s.AsMap()[name]
	return v, ok
}
