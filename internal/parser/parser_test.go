package parser

import "testing"

var boardCtx = ParseContext{
	Organisms:  []string{"Staphylococcus aureus", "Streptococcus pyogenes", "Escherichia coli", "Salmonella sp."},
	TraitCount: 6,
}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  HINT  ", want: "hint"},
		{in: "match #3 -> Salmonella sp.", want: "match 3 salmonella sp"},
		{in: "E. coli", want: "e coli"},
		{in: "Listéria Monocytogènes", want: "listeria monocytogenes"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasMapsToCanonical(t *testing.T) {
	p := New()
	tests := map[string]string{
		"clue":    "hint",
		"restart": "reset",
		"resume":  "pause",
		"exit":    "quit",
		"top":     "scores",
		"look":    "board",
	}
	for in, want := range tests {
		intent := p.Parse(boardCtx, in)
		if intent.Verb != want {
			t.Fatalf("Parse(%q) verb=%q want=%q", in, intent.Verb, want)
		}
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) unexpected clarify: %+v", in, intent.Clarify)
		}
	}
}

func TestTypoHintMapsToHint(t *testing.T) {
	p := New()
	intent := p.Parse(boardCtx, "hnt")
	if intent.Verb != "hint" {
		t.Fatalf("expected hint verb, got %q", intent.Verb)
	}
}

func TestMatchCommandResolvesOrganism(t *testing.T) {
	p := New()
	tests := []struct {
		in    string
		trait int
		want  string
	}{
		{in: "match 3 salmonella", trait: 3, want: "salmonella sp"},
		{in: "3 salm", trait: 3, want: "salmonella sp"},
		{in: "put 2 on e coli", trait: 2, want: "escherichia coli"},
		{in: "m 6 staphylococcus aureus", trait: 6, want: "staphylococcus aureus"},
		{in: "1 b", trait: 1, want: "streptococcus pyogenes"},
		{in: "salmonela 4", trait: 4, want: "salmonella sp"},
		{in: "staph 2", trait: 2, want: "staphylococcus aureus"},
	}
	for _, tc := range tests {
		intent := p.Parse(boardCtx, tc.in)
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) unexpected clarify: %+v", tc.in, intent.Clarify)
		}
		if intent.Verb != "match" || intent.Trait != tc.trait || intent.Organism != tc.want {
			t.Fatalf("Parse(%q) = verb %q trait %d organism %q, want match %d %q", tc.in, intent.Verb, intent.Trait, intent.Organism, tc.trait, tc.want)
		}
		if intent.Confidence < 0.6 {
			t.Fatalf("Parse(%q) low confidence %.2f", tc.in, intent.Confidence)
		}
	}
}

func TestAmbiguousOrganismReturnsClarify(t *testing.T) {
	p := New()
	intent := p.Parse(boardCtx, "match 2 st")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for st prefix")
	}
	if len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(intent.Clarify.Options))
	}
	for _, opt := range intent.Clarify.Options {
		if opt.Trait != 2 || opt.Verb != "match" {
			t.Fatalf("options should carry the trait forward: %+v", opt)
		}
	}
}

func TestMatchWithoutOrganismOffersBoard(t *testing.T) {
	p := New()
	intent := p.Parse(boardCtx, "match 5")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 4 {
		t.Fatalf("expected board options, got %+v", intent.Clarify)
	}
}

func TestTraitOutOfRange(t *testing.T) {
	p := New()
	intent := p.Parse(boardCtx, "9 salmonella")
	if intent.Clarify == nil || intent.Trait != 0 {
		t.Fatalf("expected clarify for missing trait 9, got %+v", intent)
	}
}

func TestUnknownOrganism(t *testing.T) {
	p := New()
	intent := p.Parse(boardCtx, "match 1 plasmodium")
	if intent.Clarify == nil || intent.Organism != "" {
		t.Fatalf("expected clarify for unknown organism, got %+v", intent)
	}
}

func TestPronounUsesLastOrganism(t *testing.T) {
	p := New()
	ctx := boardCtx
	ctx.LastOrganism = "Escherichia coli"
	intent := p.Parse(ctx, "4 to it")
	if intent.Organism != "escherichia coli" || intent.Trait != 4 {
		t.Fatalf("expected pronoun to resolve, got %+v", intent)
	}
}

func TestFreeTextInference(t *testing.T) {
	p := New()
	if intent := p.Parse(boardCtx, "i'm stuck"); intent.Verb != "hint" {
		t.Fatalf("expected hint inference, got %q", intent.Verb)
	}
	if intent := p.Parse(boardCtx, "trait 3 is the salmonella"); intent.Verb != "match" || intent.Trait != 3 {
		t.Fatalf("expected match inference, got %+v", intent)
	}
}

func TestIntentToCommandString(t *testing.T) {
	intent := Intent{Verb: "match", Trait: 3, Organism: "Salmonella sp."}
	if got := IntentToCommandString(intent); got != "match 3 salmonella sp" {
		t.Fatalf("unexpected command string %q", got)
	}
	if got := IntentToCommandString(Intent{Verb: "hint"}); got != "hint" {
		t.Fatalf("unexpected command string %q", got)
	}
}

func TestTraitNumberBlocksFuzzyZeroArgCommands(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		name       string
		tokens     []string
		traitCount int
		want       string
	}{
		{name: "typo alone is fuzzy", tokens: []string{"strat"}, traitCount: 6, want: "start"},
		{name: "typo with trait number", tokens: []string{"strat", "2"}, traitCount: 6, want: ""},
		{name: "number beyond board", tokens: []string{"strat", "9"}, traitCount: 6, want: "start"},
		{name: "exact still wins", tokens: []string{"hint", "2"}, traitCount: 6, want: "hint"},
		{name: "match typo keeps args", tokens: []string{"mtach", "2", "salmonella"}, traitCount: 6, want: "match"},
	}
	for _, tc := range tests {
		got, _ := r.matchCommand(tc.tokens, tc.traitCount)
		if got.Canonical != tc.want {
			t.Fatalf("%s: matchCommand(%v)=%q want=%q", tc.name, tc.tokens, got.Canonical, tc.want)
		}
	}
}
