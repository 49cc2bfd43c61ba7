package ingredient

import (
	"regexp"
	"strings"
)

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	// Embedded quantity+unit tokens such as "400g" or "2 tbsp" inside a name.
	embeddedQuantityPattern = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s*(?:mg|g|kg|ml|l|tbsp|tsp|cup|cups|oz|lb|lbs)\b\.?`)
	tokenPattern            = regexp.MustCompile(`[\p{L}\p{N}]+`)
)

// descriptorStopList holds preparation/state descriptors stripped before alias
// resolution, in English and the locales the platform serves.
var descriptorStopList = map[string]struct{}{
	// English
	"fresh": {}, "frozen": {}, "dried": {}, "chopped": {}, "diced": {},
	"minced": {}, "sliced": {}, "torn": {}, "grated": {}, "peeled": {},
	"organic": {}, "canned": {}, "raw": {}, "cooked": {},
	// Romanian
	"proaspat": {}, "proaspata": {}, "proaspete": {}, "congelat": {},
	"congelata": {}, "uscat": {}, "uscata": {}, "tocat": {}, "tocata": {},
	"feliat": {}, "feliata": {}, "ras": {}, "rasa": {}, "curatat": {},
	// French
	"frais": {}, "fraiche": {}, "surgele": {}, "seche": {}, "hache": {},
	"hachee": {}, "tranche": {}, "rape": {}, "emince": {},
	// Spanish
	"fresco": {}, "fresca": {}, "congelado": {}, "congelada": {}, "seco": {},
	"seca": {}, "picado": {}, "picada": {}, "rebanado": {}, "rallado": {},
	// Italian
	"fresche": {}, "freschi": {}, "surgelato": {}, "essiccato": {},
	"tritato": {}, "tritata": {}, "affettato": {}, "grattugiato": {},
	// German
	"frisch": {}, "frische": {}, "gefroren": {}, "getrocknet": {},
	"gehackt": {}, "geschnitten": {}, "gerieben": {}, "geschaelt": {},
}

// Canonicalize reduces a raw ingredient string to the canonical English term
// used as a merge/lookup key: lowercase, drop parenthetical asides and
// everything after a comma, strip descriptors and embedded quantities, then
// resolve through the multilingual alias dictionary. It is idempotent; an
// alias miss keeps the locally-stripped string, so canonicalization never
// blocks on dictionary coverage.
func Canonicalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = parentheticalPattern.ReplaceAllString(s, " ")
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	s = embeddedQuantityPattern.ReplaceAllString(s, " ")

	words := tokenPattern.FindAllString(s, -1)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, drop := descriptorStopList[w]; drop {
			continue
		}
		kept = append(kept, w)
	}
	// A string that is nothing but descriptors keeps its words rather than
	// canonicalizing to the empty string.
	if len(kept) == 0 {
		kept = words
	}

	return resolvePhrase(strings.Join(kept, " "))
}

// resolvePhrase tries the whole phrase against the alias dictionary first,
// then falls back to word-by-word resolution ("red onion" stays "red onion",
// "ceapa rosie" becomes "red onion").
func resolvePhrase(s string) string {
	if s == "" {
		return ""
	}
	if targets, ok := aliasTable[s]; ok {
		return targets[0]
	}
	words := strings.Fields(s)
	if len(words) == 1 {
		return s
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, Resolve(w))
	}
	return strings.Join(out, " ")
}

// Resolve maps a single token through the alias dictionary, returning the
// primary canonical term or the token unchanged on a miss.
func Resolve(token string) string {
	if targets, ok := aliasTable[strings.ToLower(strings.TrimSpace(token))]; ok {
		return targets[0]
	}
	return strings.ToLower(strings.TrimSpace(token))
}

// Expand returns the union of the query's own tokens and every canonical
// equivalent the alias dictionary knows for them, enabling cross-language
// search: "ardei rosii" expands to include "pepper", "tomato" and "red".
func Expand(query string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(query), -1)

	seen := make(map[string]struct{}, len(tokens)*2)
	out := make([]string, 0, len(tokens)*2)
	add := func(t string) {
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, t := range tokens {
		add(t)
	}
	for _, t := range tokens {
		for _, target := range aliasTable[t] {
			add(target)
		}
	}
	// Multi-word phrases carry their own entries ("pomme de terre").
	if targets, ok := aliasTable[strings.Join(tokens, " ")]; ok {
		for _, target := range targets {
			add(target)
		}
	}

	return out
}
