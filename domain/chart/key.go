package chart

// CanonicalKey derives the normalized identity of a recommendation used for
// duplicate detection. Scatter keys are order-insensitive over the two axes,
// since (A,B) and (B,A) plot the same relationship; bar and line keys are
// order-sensitive. Enhanced titles are folded into the key so a "sized by" or
// cumulative variant never collides with its base chart.
func CanonicalKey(r Recommendation) string {
	x, y := r.XAxis, r.YAxis
	if r.Type == TypeScatter && y < x {
		x, y = y, x
	}
	key := string(r.Type) + "|" + x + "|" + y
	if IsEnhanced(r.Title) {
		key += "|" + r.Title
	}
	return key
}
