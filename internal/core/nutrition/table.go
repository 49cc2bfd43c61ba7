package nutrition

// kcalPer100g is the static nutrition reference, keyed by canonical
// ingredient name. Values are per 100 g of the edible part.
var kcalPer100g = map[string]float64{
	"flour":       364,
	"sugar":       387,
	"butter":      717,
	"oil":         884,
	"olive oil":   884,
	"milk":        61,
	"sour cream":  193,
	"cream":       340,
	"yogurt":      59,
	"cheese":      402,
	"mozzarella":  280,
	"parmesan":    431,
	"egg":         155,
	"chicken":     239,
	"beef":        250,
	"pork":        242,
	"salmon":      208,
	"tuna":        132,
	"rice":        360,
	"pasta":       371,
	"bread":       265,
	"potato":      77,
	"tomato":      18,
	"onion":       40,
	"green onion": 32,
	"garlic":      149,
	"carrot":      41,
	"pepper":      31,
	"red pepper":  31,
	"bell pepper": 31,
	"eggplant":    25,
	"zucchini":    17,
	"cucumber":    15,
	"mushroom":    22,
	"spinach":     23,
	"basil":       23,
	"parsley":     36,
	"dill":        43,
	"lemon":       29,
	"chickpea":    164,
	"honey":       304,
	"salt":        0,
	"vinegar":     18,
}

// LookupKcalPer100g returns the kcal/100g reference for a canonical name, or
// false when the table has no entry.
func LookupKcalPer100g(canonicalName string) (float64, bool) {
	v, ok := kcalPer100g[canonicalName]
	return v, ok
}
