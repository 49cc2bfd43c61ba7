package ingredient

// aliasTable is the multilingual alias dictionary: surface tokens (and a few
// multi-word phrases) in Romanian, French, Spanish, Italian and German, plus
// English synonyms, mapped to canonical English terms. The first target is
// the primary canonical form used by Resolve; the rest only feed Expand.
// "rosii" is both "tomato" (the noun) and "red" (the adjective), and search
// has to see both.
//
// Canonical terms resolve to themselves by construction: no key on the left
// appears as a different term's target, which is what keeps Canonicalize
// idempotent.
var aliasTable = map[string][]string{
	// Romanian
	"rosii":      {"tomato", "red"},
	"roșii":      {"tomato", "red"},
	"rosie":      {"tomato", "red"},
	"ardei":      {"pepper"},
	"ceapa":      {"onion"},
	"ceapă":      {"onion"},
	"usturoi":    {"garlic"},
	"cartof":     {"potato"},
	"cartofi":    {"potato"},
	"morcov":     {"carrot"},
	"morcovi":    {"carrot"},
	"vinete":     {"eggplant"},
	"vanata":     {"eggplant"},
	"castravete": {"cucumber"},
	"patrunjel":  {"parsley"},
	"pătrunjel":  {"parsley"},
	"busuioc":    {"basil"},
	"marar":      {"dill"},
	"mărar":      {"dill"},
	"faina":      {"flour"},
	"făină":      {"flour"},
	"zahar":      {"sugar"},
	"zahăr":      {"sugar"},
	"unt":        {"butter"},
	"lapte":      {"milk"},
	"branza":     {"cheese"},
	"brânză":     {"cheese"},
	"smantana":   {"sour cream"},
	"smântână":   {"sour cream"},
	"oua":        {"egg"},
	"ouă":        {"egg"},
	"ou":         {"egg"},
	"pui":        {"chicken"},
	"porc":       {"pork"},
	"vita":       {"beef"},
	"orez":       {"rice"},
	"paste":      {"pasta"},
	"ciuperci":   {"mushroom"},
	"spanac":     {"spinach"},
	"dovlecel":   {"zucchini"},
	"dovlecei":   {"zucchini"},
	"ulei":       {"oil"},
	"otet":       {"vinegar"},
	"oțet":       {"vinegar"},
	"sare":       {"salt"},
	"piper":      {"black pepper"},
	"lamaie":     {"lemon"},
	"lămâie":     {"lemon"},

	// Romanian phrases
	"ardei rosii": {"red pepper"},
	"ardei gras":  {"bell pepper"},
	"ceapa verde": {"green onion"},

	// French
	"tomate":    {"tomato"},
	"tomates":   {"tomato"},
	"oignon":    {"onion"},
	"oignons":   {"onion"},
	"ail":       {"garlic"},
	"poivron":   {"pepper"},
	"aubergine": {"eggplant"},
	"courgette": {"zucchini"},
	"carotte":   {"carrot"},
	"persil":    {"parsley"},
	"basilic":   {"basil"},
	"farine":    {"flour"},
	"sucre":     {"sugar"},
	"beurre":    {"butter"},
	"lait":      {"milk"},
	"fromage":   {"cheese"},
	"oeuf":      {"egg"},
	"oeufs":     {"egg"},
	"poulet":    {"chicken"},
	"boeuf":     {"beef"},
	"riz":       {"rice"},
	"champignon": {"mushroom"},
	"epinard":    {"spinach"},
	"citron":     {"lemon"},
	"huile":      {"oil"},

	// French phrases
	"pomme de terre":  {"potato"},
	"pommes de terre": {"potato"},

	// Spanish
	"cebolla":     {"onion"},
	"cebollas":    {"onion"},
	"ajo":         {"garlic"},
	"pimiento":    {"pepper"},
	"pimientos":   {"pepper"},
	"patata":      {"potato"},
	"patatas":     {"potato"},
	"berenjena":   {"eggplant"},
	"calabacin":   {"zucchini"},
	"zanahoria":   {"carrot"},
	"perejil":     {"parsley"},
	"albahaca":    {"basil"},
	"harina":      {"flour"},
	"azucar":      {"sugar"},
	"mantequilla": {"butter"},
	"leche":       {"milk"},
	"queso":       {"cheese"},
	"huevo":       {"egg"},
	"huevos":      {"egg"},
	"pollo":       {"chicken"},
	"arroz":       {"rice"},
	"champinon":   {"mushroom"},
	"espinaca":    {"spinach"},
	"limon":       {"lemon"},
	"aceite":      {"oil"},

	// Italian
	"pomodoro":   {"tomato"},
	"pomodori":   {"tomato"},
	"cipolla":    {"onion"},
	"cipolle":    {"onion"},
	"aglio":      {"garlic"},
	"peperone":   {"pepper"},
	"peperoni":   {"pepper"},
	"melanzana":  {"eggplant"},
	"zucchina":   {"zucchini"},
	"zucchine":   {"zucchini"},
	"carota":     {"carrot"},
	"prezzemolo": {"parsley"},
	"basilico":   {"basil"},
	"farina":     {"flour"},
	"zucchero":   {"sugar"},
	"burro":      {"butter"},
	"latte":      {"milk"},
	"formaggio":  {"cheese"},
	"uovo":       {"egg"},
	"uova":       {"egg"},
	"fungo":      {"mushroom"},
	"funghi":     {"mushroom"},
	"spinaci":    {"spinach"},
	"limone":     {"lemon"},
	"olio":       {"oil"},

	// German
	"zwiebel":    {"onion"},
	"zwiebeln":   {"onion"},
	"knoblauch":  {"garlic"},
	"paprika":    {"pepper"},
	"kartoffel":  {"potato"},
	"kartoffeln": {"potato"},
	"karotte":    {"carrot"},
	"petersilie": {"parsley"},
	"basilikum":  {"basil"},
	"mehl":       {"flour"},
	"zucker":     {"sugar"},
	"milch":      {"milk"},
	"kase":       {"cheese"},
	"käse":       {"cheese"},
	"ei":         {"egg"},
	"eier":       {"egg"},
	"hahnchen":   {"chicken"},
	"hähnchen":   {"chicken"},
	"rindfleisch": {"beef"},
	"reis":        {"rice"},
	"pilz":        {"mushroom"},
	"pilze":       {"mushroom"},
	"spinat":      {"spinach"},
	"zitrone":     {"lemon"},

	// English synonyms
	"tomatoes":     {"tomato"},
	"onions":       {"onion"},
	"peppers":      {"pepper"},
	"capsicum":     {"pepper"},
	"potatoes":     {"potato"},
	"carrots":      {"carrot"},
	"eggs":         {"egg"},
	"aubergines":   {"eggplant"},
	"courgettes":   {"zucchini"},
	"mushrooms":    {"mushroom"},
	"scallion":     {"green onion"},
	"scallions":    {"green onion"},
	"spring onion": {"green onion"},
	"cilantro":     {"coriander"},
	"garbanzo":     {"chickpea"},
	"garbanzos":    {"chickpea"},
	"chickpeas":    {"chickpea"},
}
