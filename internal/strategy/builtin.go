package strategy

// Built-in questionnaire types
const (
	TypeORMA  = "orma"
	TypePEACE = "peace"
	TypeSPE   = "spe"
)

// Color tokens shared by the built-in strategies
const (
	TokenGreen   = "garGreen"
	TokenYellow  = "garYellow"
	TokenAmber   = "garAmber"
	TokenRed     = "garRed"
	TokenDarkRed = "garDarkRed"
	tokenGreenBg = "garGreenDark"
	tokenGreenFg = "garGreenLight"
	tokenAmberBg = "garAmberDark"
	tokenAmberFg = "garAmberLight"
	tokenRedBg   = "garRedDark"
	tokenRedFg   = "garRedLight"
)

// ORMA sums eight elements scored 1-10.
var ORMA = Config{
	Type:           TypeORMA,
	Name:           "Operational Risk Management Analysis",
	Aggregation:    AggregationSum,
	MinScore:       1,
	MaxScore:       10,
	ItemCount:      8,
	LabelWithScore: true,
	Ranges: []EvaluationRange{
		{
			Min: 0, Max: 35,
			Label:      "Low risk",
			Action:     Action{Text: "Proceed with the mission and keep monitoring conditions as they change."},
			ColorToken: TokenGreen,
		},
		{
			Min: 36, Max: 60,
			Label:      "Caution",
			Action:     Action{Text: "Consider procedures to reduce the risk before proceeding.", Emphasis: "reduce the risk"},
			ColorToken: TokenAmber,
		},
		{
			Min: 61, Max: 80,
			Label:      "High risk",
			Action:     Action{Text: "Implement measures to reduce the risk or do not proceed.", Emphasis: "do not proceed"},
			ColorToken: TokenRed,
		},
	},
	ItemRanges: []ItemRange{
		{Min: 1, Max: 3, ContainerToken: tokenGreenBg, ContentToken: tokenGreenFg, Label: "Low"},
		{Min: 4, Max: 7, ContainerToken: tokenAmberBg, ContentToken: tokenAmberFg, Label: "Medium"},
		{Min: 8, Max: 10, ContainerToken: tokenRedBg, ContentToken: tokenRedFg, Label: "High"},
	},
}

// PEACE averages six elements scored 1-3. Its bands are half-open.
var PEACE = Config{
	Type:        TypePEACE,
	Name:        "PEACE",
	Aggregation: AggregationAverage,
	MinScore:    1,
	MaxScore:    3,
	ItemCount:   6,
	Ranges: []EvaluationRange{
		{
			Min: 0, Max: 1.5, MaxExclusive: true,
			Label:      "Low Risk",
			Action:     Action{Text: "The mission can proceed as planned."},
			ColorToken: TokenGreen,
		},
		{
			Min: 1.5, Max: 2.5, MaxExclusive: true,
			Label:      "Medium Risk",
			Action:     Action{Text: "Mitigate the identified hazards before proceeding.", Emphasis: "Mitigate"},
			ColorToken: TokenAmber,
		},
		{
			Min: 2.5, Max: 3,
			Label:      "High Risk",
			Action:     Action{Text: "Do not proceed without approval from command.", Emphasis: "approval from command"},
			ColorToken: TokenRed,
		},
	},
	ItemRanges: []ItemRange{
		{Min: 1, Max: 1, ContainerToken: tokenGreenBg, ContentToken: tokenGreenFg, Label: "Low"},
		{Min: 2, Max: 2, ContainerToken: tokenAmberBg, ContentToken: tokenAmberFg, Label: "Medium"},
		{Min: 3, Max: 3, ContainerToken: tokenRedBg, ContentToken: tokenRedFg, Label: "High"},
	},
}

// SPE multiplies Severity, Probability and Exposure, each scored 1-5.
var SPE = Config{
	Type:           TypeSPE,
	Name:           "Severity, Probability, Exposure",
	Aggregation:    AggregationProduct,
	MinScore:       1,
	MaxScore:       5,
	ItemCount:      3,
	LabelWithScore: true,
	Ranges: []EvaluationRange{
		{
			Min: 0, Max: 19,
			Label:      "Slight risk",
			Action:     Action{Text: "Risk possibly acceptable. Proceed and keep the assessment current."},
			ColorToken: TokenGreen,
		},
		{
			Min: 20, Max: 39,
			Label:      "Possible risk",
			Action:     Action{Text: "Attention needed. Review the plan before proceeding.", Emphasis: "Attention needed"},
			ColorToken: TokenYellow,
		},
		{
			Min: 40, Max: 59,
			Label:      "Substantial risk",
			Action:     Action{Text: "Correction required. Put controls in place before proceeding.", Emphasis: "Correction required"},
			ColorToken: TokenAmber,
		},
		{
			Min: 60, Max: 79,
			Label:      "High risk",
			Action:     Action{Text: "Immediate correction required. Reduce the risk before continuing.", Emphasis: "Immediate correction"},
			ColorToken: TokenRed,
		},
		{
			Min: 80, Max: 125,
			Label:      "Very high risk",
			Action:     Action{Text: "Discontinue. Stop the activity and reassess the mission.", Emphasis: "Stop the activity"},
			ColorToken: TokenDarkRed,
		},
	},
	ItemRanges: []ItemRange{
		{Min: 1, Max: 2, ContainerToken: tokenGreenBg, ContentToken: tokenGreenFg, Label: "Low"},
		{Min: 3, Max: 3, ContainerToken: tokenAmberBg, ContentToken: tokenAmberFg, Label: "Medium"},
		{Min: 4, Max: 5, ContainerToken: tokenRedBg, ContentToken: tokenRedFg, Label: "High"},
	},
}

// Builtins returns copies of the built-in configs
func Builtins() []Config {
	return []Config{ORMA, PEACE, SPE}
}
