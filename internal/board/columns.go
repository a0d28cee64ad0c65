package board

import "strconv"

// Normalized column labels of the Pipefy "Telas e Salas" export.
const (
	ColLocal           = "LOCAL"
	ColCompany         = "EMPRESA"
	ColDevelopment     = "EMPREENDIMENTO"
	ColProject         = "PROJETO"
	ColClientContact   = "RESPONS. CLIENTE"
	ColPhone           = "TELEFONE"
	ColSales           = "COMERCIAL"
	ColDesignOwner     = "RESP. DESIGN"
	ColProgramOwner    = "RESP. PROGRAMAÇÃO"
	ColMaterial        = "MATERIAL"
	ColStatus          = "STATUS"
	ColPhase           = "FASE"
	ColKickoff         = "KICKOFF"
	ColFirstScreens    = "PRIMEIRAS TELAS"
	ColFinalDesign     = "DESIGN FINAL"
	ColFinalProgram    = "PROGRAMAÇÃO FINAL"
	ColDeliveryDate    = "DATA DE ENTREGA"
	ColScore           = "NPS"
	ColMonth           = "MÊS"
	ColYear            = "ANO"
	ColPeriod          = "PERÍODO"
	periodSeparator    = " - "
	unnamedColumnLabel = "UNNAMED: "
)

// Display sentinels substituted for missing values.
const (
	TextSentinel  = "Não informado"
	DateSentinel  = "-"
	ScoreSentinel = -1
)

// Group is the semantic group a column belongs to. It decides the sentinel
// shown for a missing value.
type Group int

const (
	GroupOther Group = iota
	GroupText
	GroupDate
	GroupScore
)

func (g Group) String() string {
	switch g {
	case GroupText:
		return "text"
	case GroupDate:
		return "date"
	case GroupScore:
		return "score"
	default:
		return "other"
	}
}

// TextColumns are filled with TextSentinel.
var TextColumns = []string{
	ColLocal, ColCompany, ColDevelopment, ColProject, ColClientContact, ColPhone,
	ColSales, ColDesignOwner, ColProgramOwner, ColMaterial, ColStatus, ColPhase,
}

// DateColumns are filled with DateSentinel. Values are opaque strings.
var DateColumns = []string{
	ColKickoff, ColFirstScreens, ColFinalDesign, ColFinalProgram, ColDeliveryDate,
}

// PeriodInputs are required to derive ColPeriod.
var PeriodInputs = []string{ColMonth, ColYear}

var columnGroups = buildColumnGroups()

func buildColumnGroups() map[string]Group {
	groups := make(map[string]Group, len(TextColumns)+len(DateColumns)+3)
	for _, c := range TextColumns {
		groups[c] = GroupText
	}
	for _, c := range PeriodInputs {
		groups[c] = GroupText
	}
	for _, c := range DateColumns {
		groups[c] = GroupDate
	}
	groups[ColScore] = GroupScore
	return groups
}

// GroupOf returns the group of a normalized column label.
func GroupOf(column string) Group {
	return columnGroups[column]
}

// Sentinel returns the display placeholder for a missing value in column.
// Undeclared columns have no placeholder.
func Sentinel(column string) string {
	switch GroupOf(column) {
	case GroupText:
		return TextSentinel
	case GroupDate:
		return DateSentinel
	case GroupScore:
		return strconv.Itoa(ScoreSentinel)
	default:
		return ""
	}
}
