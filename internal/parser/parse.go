package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command, or a trait number and an organism."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	// "3 salmonella" skips the verb entirely.
	if isNumber(tokens[0]) {
		return parseMatch(ctx, intent, tokens, 0.95)
	}

	cmdMatch, alternates := p.registry.matchCommand(tokens, ctx.TraitCount)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent, tokens); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try: match <trait#> <organism>, hint, pause, reset, scores, help, quit.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	def, _ := p.registry.command(cmdMatch.Canonical)
	args := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		args = tokens[cmdMatch.Consumed:]
	}
	if def.Canonical == "match" {
		return parseMatch(ctx, intent, args, clampScore(cmdMatch.Score))
	}

	intent.Verb = def.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)
	if len(args) > def.MaxArgs {
		// Trailing words on an argument-free command cost confidence, not the parse.
		intent.Confidence = clampScore(intent.Confidence - 0.05*float64(len(args)-def.MaxArgs))
	}
	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("Did you mean %q?", intent.Verb)}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "board", "scores":
		return Query
	default:
		return Command
	}
}

// parseMatch resolves "<trait#> <organism>" in either order, ignoring filler
// words such as "to" or "on".
func parseMatch(ctx ParseContext, intent Intent, args []string, verbScore float64) Intent {
	intent.Verb = "match"
	intent.Kind = Command

	rest := make([]string, 0, len(args))
	for _, token := range args {
		if intent.Trait == 0 {
			if n, ok := parseTraitToken(token, ctx.TraitCount); ok {
				intent.Trait = n
				continue
			}
			if isNumber(token) {
				intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("There is no trait %s on the board (1-%d).", token, ctx.TraitCount)}
				intent.Confidence = 0.4
				return intent
			}
		}
		if isFiller(token) {
			continue
		}
		rest = append(rest, token)
	}
	intent.Args = append([]string(nil), rest...)

	if intent.Trait == 0 {
		intent.Clarify = &ClarifyQuestion{Prompt: "Which trait number?"}
		intent.Confidence = 0.42
		return intent
	}
	if len(rest) == 0 {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  fmt.Sprintf("Which organism does trait %d belong to?", intent.Trait),
			Options: organismOptions(ctx, intent.Trait, 4),
		}
		intent.Confidence = 0.46
		return intent
	}

	names, confidence, tie := resolveOrganism(strings.Join(rest, " "), ctx)
	if tie && len(names) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := 0; idx < 2; idx++ {
			options = append(options, Intent{
				Kind:       Command,
				Verb:       "match",
				Trait:      intent.Trait,
				Organism:   names[idx],
				Args:       []string{names[idx]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		intent.Clarify = &ClarifyQuestion{Prompt: "Did you mean:", Options: options}
		intent.Confidence = 0.52
		return intent
	}
	if len(names) == 0 {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("No organism on the board looks like %q.", strings.Join(rest, " "))}
		intent.Confidence = 0.4
		return intent
	}
	intent.Organism = names[0]
	intent.Confidence = clampScore(verbScore*0.5 + confidence*0.5)
	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "I have low confidence in that organism. Did you mean:",
			Options: []Intent{{Kind: Command, Verb: "match", Trait: intent.Trait, Organism: names[0], Args: []string{names[0]}, Confidence: confidence}},
		}
	}
	return intent
}

func resolveOrganism(phrase string, ctx ParseContext) ([]string, float64, bool) {
	board := make([]string, 0, len(ctx.Organisms))
	for _, name := range ctx.Organisms {
		if n := normaliseInput(name); n != "" {
			board = append(board, n)
		}
	}
	n := normaliseInput(phrase)
	if n == "" || len(board) == 0 {
		return nil, 0, false
	}
	if isPronoun(n) {
		last := normaliseInput(ctx.LastOrganism)
		for _, b := range board {
			if b == last {
				return []string{b}, 0.9, false
			}
		}
		return nil, 0, false
	}
	if idx, ok := boardLetter(n); ok {
		if idx < len(board) {
			return []string{board[idx]}, 0.97, false
		}
		return nil, 0, false
	}
	return bestMatches(n, board)
}

// bestMatches scores candidates by exact match, prefix, binomial abbreviation
// ("e coli") and finally edit distance against the full name or the genus.
func bestMatches(token string, all []string) ([]string, float64, bool) {
	type scored struct {
		val   string
		score float64
	}
	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case abbreviates(token, cand):
			score = 0.95
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			limit := levenshteinLimit(len(cand))
			if genus := strings.Fields(cand)[0]; len(genus) < len(cand) {
				if d := levenshtein.ComputeDistance(token, genus); d < dist {
					dist = d
					limit = levenshteinLimit(len(genus))
				}
			}
			if dist > limit {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

// abbreviates reports whether token is "g species" for candidate "genus species".
func abbreviates(token, cand string) bool {
	tt := strings.Fields(token)
	ct := strings.Fields(cand)
	if len(tt) != 2 || len(ct) < 2 || len(tt[0]) != 1 {
		return false
	}
	return ct[0][0] == tt[0][0] && strings.HasPrefix(ct[1], tt[1]) && len(tt[1]) >= 2
}

func organismOptions(ctx ParseContext, trait int, maxOptions int) []Intent {
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, name := range ctx.Organisms {
		n := normaliseInput(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       Command,
			Verb:       "match",
			Trait:      trait,
			Organism:   n,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, intent Intent, tokens []string) *Intent {
	n := intent.Normalised
	makeIntent := func(kind IntentKind, verb string, confidence float64) *Intent {
		out := intent
		out.Kind = kind
		out.Verb = verb
		out.Confidence = clampScore(confidence)
		return &out
	}

	if containsAnyPhrase(n, "give me a hint", "i need a hint", "i m stuck", "im stuck", "which one", "help me") {
		return makeIntent(Command, "hint", 0.85)
	}
	if containsAnyPhrase(n, "new game", "start over", "from scratch", "try again") {
		return makeIntent(Command, "reset", 0.84)
	}
	if containsAnyPhrase(n, "take a break", "hold on", "wait") {
		return makeIntent(Command, "pause", 0.8)
	}
	if containsAnyPhrase(n, "high score", "best scores", "leader board") {
		return makeIntent(Query, "scores", 0.86)
	}

	// "salmonella 3" or "trait 3 is e coli".
	if hasTraitNumber(tokens, ctx.TraitCount) {
		parsed := parseMatch(ctx, intent, tokens, 0.8)
		return &parsed
	}
	return nil
}

func hasTraitNumber(tokens []string, traitCount int) bool {
	for _, token := range tokens {
		if _, ok := parseTraitToken(token, traitCount); ok {
			return true
		}
	}
	return false
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	if verb == "match" {
		parts := []string{verb}
		if intent.Trait > 0 {
			parts = append(parts, strconv.Itoa(intent.Trait))
		}
		if org := normaliseInput(intent.Organism); org != "" {
			parts = append(parts, org)
		}
		return strings.Join(parts, " ")
	}
	args := make([]string, 0, len(intent.Args))
	for _, arg := range intent.Args {
		if n := normaliseInput(arg); n != "" {
			args = append(args, n)
		}
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
