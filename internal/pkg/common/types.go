package common

// RecognisedIngredient is one ingredient reported by the recognition
// collaborator. CanonicalName is the merge key across scans, recipes and
// vendor catalogs; Confidence is in [0,1]. SourceContext is the optional
// photo/context hint the ingredient was recognised under ("" when absent).
type RecognisedIngredient struct {
	Name          string  `json:"name"`
	CanonicalName string  `json:"canonical_name"`
	Confidence    float64 `json:"confidence"`
	SourceContext string  `json:"source_context,omitempty"`
}
