package chart

import "testing"

func TestCanonicalKeyScatterIsOrderInsensitive(t *testing.T) {
	a := Recommendation{Title: "Weight vs Height", Type: TypeScatter, XAxis: "Height", YAxis: "Weight"}
	b := Recommendation{Title: "Height vs Weight", Type: TypeScatter, XAxis: "Weight", YAxis: "Height"}
	if CanonicalKey(a) != CanonicalKey(b) {
		t.Errorf("scatter keys differ: %q vs %q", CanonicalKey(a), CanonicalKey(b))
	}
}

func TestCanonicalKeyBarIsOrderSensitive(t *testing.T) {
	a := Recommendation{Title: "Sales by Region", Type: TypeBar, XAxis: "Region", YAxis: "Sales"}
	b := Recommendation{Title: "Region by Sales", Type: TypeBar, XAxis: "Sales", YAxis: "Region"}
	if CanonicalKey(a) == CanonicalKey(b) {
		t.Error("bar keys must be order-sensitive")
	}
}

func TestCanonicalKeyEnhancedVariantsStayDistinct(t *testing.T) {
	base := Recommendation{Title: "Weight vs Height", Type: TypeScatter, XAxis: "Height", YAxis: "Weight"}
	sized := Recommendation{Title: "Weight vs Height (sized by Age)", Type: TypeScatter, XAxis: "Height", YAxis: "Weight"}
	if CanonicalKey(base) == CanonicalKey(sized) {
		t.Error("sized-by variant must not collide with its base chart")
	}

	plain := Recommendation{Title: "Sales over Date", Type: TypeLine, XAxis: "Date", YAxis: "Sales"}
	cumulative := Recommendation{Title: "Cumulative Sales over Date", Type: TypeLine, XAxis: "Date", YAxis: "Cumulative Sales"}
	if CanonicalKey(plain) == CanonicalKey(cumulative) {
		t.Error("cumulative variant must not collide with its base chart")
	}
}

func TestIsEnhanced(t *testing.T) {
	if !IsEnhanced("Weight vs Height (sized by Age)") {
		t.Error("sized by title should be enhanced")
	}
	if !IsEnhanced("Cumulative Sales over Date") {
		t.Error("cumulative title should be enhanced")
	}
	if IsEnhanced("Sales by Region") {
		t.Error("plain title should not be enhanced")
	}
}
