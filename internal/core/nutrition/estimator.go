package nutrition

import (
	"math"

	"ingredient-intelligence/internal/core/ingredient"
)

// fallbackGrams is assumed when a line carries an amount but the unit cannot
// be converted ("2 eggs", "1 bunch parsley"). The Estimate keeps Grams=100 in
// that case so callers can discount confidence instead of trusting the guess.
const fallbackGrams = 100.0

// Estimate is the calorie estimate for one ingredient line. All pointer
// fields are nil when the nutrition table has no entry for the canonical
// name. Kcal is nil when the line gives no amount: the per-100g reference is
// still reported, but no quantity is fabricated.
type Estimate struct {
	Original      string   `json:"original"`
	CanonicalName string   `json:"canonical_name"`
	Kcal          *int     `json:"kcal"`
	KcalPer100g   *float64 `json:"kcal_per_100g"`
	Grams         *float64 `json:"grams"`
}

// BatchEstimate sums the known per-line estimates. KnownCount lets UIs show
// partial totals honestly.
type BatchEstimate struct {
	Items      []Estimate `json:"items"`
	TotalKcal  int        `json:"total_kcal"`
	KnownCount int        `json:"known_count"`
}

// Estimator composes the parser, canonicalizer and unit converter with the
// static nutrition table.
type Estimator struct{}

// NewEstimator creates an estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate parses one ingredient line and estimates its calories.
func (e *Estimator) Estimate(line string) Estimate {
	parsed := ingredient.Parse(line)
	result := Estimate{
		Original:      line,
		CanonicalName: parsed.CanonicalName,
	}

	ref, ok := LookupKcalPer100g(parsed.CanonicalName)
	if !ok {
		return result
	}
	result.KcalPer100g = &ref

	if parsed.Amount == nil {
		// Amount unknown: report the reference only.
		return result
	}

	grams := fallbackGrams
	if parsed.Unit != nil {
		if base, _, converted := ingredient.ToBase(*parsed.Amount, *parsed.Unit); converted {
			// Volume amounts are taken as grams 1:1 (density 1), which is
			// the same approximation the nutrition table itself makes.
			grams = base
		}
	}
	result.Grams = &grams

	kcal := int(math.Round(grams / 100 * ref))
	result.Kcal = &kcal
	return result
}

// EstimateBatch estimates every line and sums the known values. One
// unparseable or unknown line never aborts the batch.
func (e *Estimator) EstimateBatch(lines []string) BatchEstimate {
	batch := BatchEstimate{Items: make([]Estimate, 0, len(lines))}
	for _, line := range lines {
		est := e.Estimate(line)
		if est.Kcal != nil {
			batch.TotalKcal += *est.Kcal
			batch.KnownCount++
		}
		batch.Items = append(batch.Items, est)
	}
	return batch
}
