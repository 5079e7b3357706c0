package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// foldAccents strips combining marks so "listéria" types the same as "listeria".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(foldAccents(raw)))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == '.' || r == '#' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

// Normalise exposes the name form organisms are resolved to, so callers can
// map an Intent's Organism back to their own keys.
func Normalise(raw string) string {
	return normaliseInput(raw)
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseTraitToken(token string, traitCount int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 1 {
		return 0, false
	}
	if traitCount > 0 && n > traitCount {
		return 0, false
	}
	return n, true
}

func isNumber(token string) bool {
	_, err := strconv.Atoi(token)
	return err == nil
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "same":
		return true
	default:
		return false
	}
}

func isFiller(token string) bool {
	switch token {
	case "to", "on", "onto", "into", "with", "the", "trait", "number", "no", "belongs", "is", "goes":
		return true
	default:
		return false
	}
}

// boardLetter maps a, b, c... to a display position.
func boardLetter(token string) (int, bool) {
	if len(token) != 1 || token[0] < 'a' || token[0] > 'z' {
		return 0, false
	}
	return int(token[0] - 'a'), true
}
