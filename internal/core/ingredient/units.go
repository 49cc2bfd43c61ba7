package ingredient

import "strings"

// Kind distinguishes mass units (base gram) from volume units (base
// milliliter).
type Kind string

const (
	KindMass   Kind = "mass"
	KindVolume Kind = "volume"
)

type unitDef struct {
	kind   Kind
	toBase float64
}

// unitTable holds the fixed conversion factors to the base unit (g or ml).
var unitTable = map[string]unitDef{
	// volume (base = ml)
	"ml":          {kind: KindVolume, toBase: 1},
	"milliliter":  {kind: KindVolume, toBase: 1},
	"milliliters": {kind: KindVolume, toBase: 1},
	"l":           {kind: KindVolume, toBase: 1000},
	"liter":       {kind: KindVolume, toBase: 1000},
	"liters":      {kind: KindVolume, toBase: 1000},
	"litre":       {kind: KindVolume, toBase: 1000},
	"litres":      {kind: KindVolume, toBase: 1000},
	"cup":         {kind: KindVolume, toBase: 236.588},
	"cups":        {kind: KindVolume, toBase: 236.588},
	"tbsp":        {kind: KindVolume, toBase: 14.7868},
	"tablespoon":  {kind: KindVolume, toBase: 14.7868},
	"tablespoons": {kind: KindVolume, toBase: 14.7868},
	"tsp":         {kind: KindVolume, toBase: 4.92892},
	"teaspoon":    {kind: KindVolume, toBase: 4.92892},
	"teaspoons":   {kind: KindVolume, toBase: 4.92892},

	// mass (base = g)
	"mg":        {kind: KindMass, toBase: 0.001},
	"g":         {kind: KindMass, toBase: 1},
	"gram":      {kind: KindMass, toBase: 1},
	"grams":     {kind: KindMass, toBase: 1},
	"kg":        {kind: KindMass, toBase: 1000},
	"kilogram":  {kind: KindMass, toBase: 1000},
	"kilograms": {kind: KindMass, toBase: 1000},
	"oz":        {kind: KindMass, toBase: 28.3495},
	"ounce":     {kind: KindMass, toBase: 28.3495},
	"ounces":    {kind: KindMass, toBase: 28.3495},
	"lb":        {kind: KindMass, toBase: 453.592},
	"lbs":       {kind: KindMass, toBase: 453.592},
	"pound":     {kind: KindMass, toBase: 453.592},
	"pounds":    {kind: KindMass, toBase: 453.592},
}

// ToBase converts an amount in the given unit to the base unit of its kind
// (grams for mass, milliliters for volume). An unknown unit fails the
// conversion; callers own their fallback and must document it rather than
// guess here.
func ToBase(amount float64, unit string) (float64, Kind, bool) {
	def, ok := unitTable[normalizeUnit(unit)]
	if !ok {
		return 0, "", false
	}
	return amount * def.toBase, def.kind, true
}

// KnownUnit reports whether the unit has a conversion factor.
func KnownUnit(unit string) bool {
	_, ok := unitTable[normalizeUnit(unit)]
	return ok
}

func normalizeUnit(unit string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), ".")
}
