package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	// Trait is the 1-based board number of the trait for "match"; 0 when absent.
	Trait int
	// Organism is the resolved, normalised organism name for "match".
	Organism   string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

type ParseContext struct {
	// Organisms are the names on the board in display order; single letters
	// a, b, c... address them by position.
	Organisms    []string
	TraitCount   int
	LastOrganism string
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	HandlerKey string
}
