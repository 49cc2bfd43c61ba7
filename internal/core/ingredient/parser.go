package ingredient

import (
	"strconv"
	"strings"
	"unicode"
)

// Parsed is the structured form of one free-text ingredient line. Amount and
// Unit are nil when the line carries no usable quantity. CanonicalName is
// never empty for a non-empty line.
type Parsed struct {
	Original      string   `json:"original"`
	Amount        *float64 `json:"amount"`
	Unit          *string  `json:"unit"`
	Name          string   `json:"name"`
	CanonicalName string   `json:"canonical_name"`
}

// Parse splits an ingredient line like "2 1/2 cups flour" into amount, unit
// and name. It never fails: anything it cannot make sense of degrades to a
// Parsed with the trimmed line as the name and nil amount/unit.
//
// The leading numeric token may be an integer, a decimal, a fraction "a/b",
// a mixed fraction "a b/c" or a range "a-b" (the high end is kept; people
// who write "3-4 tomatoes" plan for four). The token after the number is
// treated as the unit only when something is left over for the name;
// otherwise it becomes the name itself ("2 eggs").
func Parse(line string) Parsed {
	trimmed := strings.TrimSpace(line)
	fallback := Parsed{
		Original:      line,
		Name:          trimmed,
		CanonicalName: ensureCanonical(trimmed),
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return fallback
	}

	amount, ok := parseAmount(fields[0])
	if !ok {
		return fallback
	}
	rest := fields[1:]

	// Mixed fraction: "2 1/2 cups".
	if len(rest) > 0 {
		if frac, isFrac := parseFraction(rest[0]); isFrac {
			amount += frac
			rest = rest[1:]
		}
	}

	var unit *string
	if len(rest) > 1 && isAlphabetic(rest[0]) {
		u := rest[0]
		unit = &u
		rest = rest[1:]
	}

	name := strings.Join(rest, " ")
	if name == "" {
		// A bare "2" or similar; nothing to name, keep the whole line.
		return fallback
	}

	return Parsed{
		Original:      line,
		Amount:        &amount,
		Unit:          unit,
		Name:          name,
		CanonicalName: ensureCanonical(name),
	}
}

// ensureCanonical upholds the invariant that CanonicalName is non-empty for a
// non-empty name, falling back to the lowercased name itself.
func ensureCanonical(name string) string {
	if c := Canonicalize(name); c != "" {
		return c
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// parseAmount accepts integers, decimals, fractions and ranges. Negative and
// zero amounts are rejected so "-5 whatever" degrades to a plain name.
func parseAmount(tok string) (float64, bool) {
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		if v <= 0 {
			return 0, false
		}
		return v, true
	}
	if v, ok := parseFraction(tok); ok {
		return v, true
	}
	if v, ok := parseRange(tok); ok {
		return v, true
	}
	return 0, false
}

func parseFraction(tok string) (float64, bool) {
	parts := strings.SplitN(tok, "/", 2)
	if len(parts) != 2 {
		return 0, false
	}
	num, err1 := strconv.Atoi(parts[0])
	den, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || num <= 0 || den <= 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// parseRange reads "3-4" and keeps the high end.
func parseRange(tok string) (float64, bool) {
	parts := strings.SplitN(tok, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	lo, err1 := strconv.ParseFloat(parts[0], 64)
	hi, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || lo <= 0 || hi <= 0 {
		return 0, false
	}
	if lo > hi {
		return lo, true
	}
	return hi, true
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
