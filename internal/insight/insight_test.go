package insight

import (
	"strings"
	"testing"

	"chartscout/domain/column"
)

func TestGenerateRetail(t *testing.T) {
	columns := []column.Info{
		{Name: "Product", Type: column.TypeCategorical},
		{Name: "Sales", Type: column.TypeNumerical},
		{Name: "OrderDate", Type: column.TypeDatetime},
	}

	got := NewGenerator().Generate(columns)
	if got.Industry != "Retail" {
		t.Fatalf("industry = %q, want Retail", got.Industry)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 (all three names match)", got.Confidence)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(got.Questions))
	}
	if got.Questions[0] != "Which Product segments drive the most Sales?" {
		t.Errorf("question 0 = %q", got.Questions[0])
	}
	if got.Questions[1] != "How has Sales developed over the sampled period?" {
		t.Errorf("question 1 = %q", got.Questions[1])
	}
}

func TestGenerateFallsBackToGeneral(t *testing.T) {
	columns := []column.Info{
		{Name: "Alpha", Type: column.TypeCategorical},
		{Name: "Beta", Type: column.TypeNumerical},
	}

	got := NewGenerator().Generate(columns)
	if got.Industry != "General" {
		t.Fatalf("industry = %q, want General", got.Industry)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got.Confidence)
	}
	if got.Questions[0] != "How does each Alpha compare on Beta?" {
		t.Errorf("question 0 = %q", got.Questions[0])
	}
}

func TestGenerateTieBreakIsDeterministic(t *testing.T) {
	// "customer" matches Retail; "account" matches Finance. One column each:
	// the fixed industry order makes Retail win every time.
	columns := []column.Info{
		{Name: "CustomerName", Type: column.TypeCategorical},
		{Name: "AccountType", Type: column.TypeCategorical},
	}
	for i := 0; i < 5; i++ {
		if got := NewGenerator().Generate(columns); got.Industry != "Retail" {
			t.Fatalf("industry = %q on run %d, want Retail", got.Industry, i)
		}
	}
}

func TestGenerateGenericSlotLabels(t *testing.T) {
	columns := []column.Info{
		{Name: "PatientName", Type: column.TypeText},
		{Name: "Diagnosis", Type: column.TypeText},
	}

	got := NewGenerator().Generate(columns)
	if got.Industry != "Healthcare" {
		t.Fatalf("industry = %q, want Healthcare", got.Industry)
	}
	// No categorical or numerical columns: the slots take generic labels.
	if !strings.Contains(got.Questions[0], "category") || !strings.Contains(got.Questions[0], "value") {
		t.Errorf("question 0 should use generic labels: %q", got.Questions[0])
	}
}

func TestGenerateEmptyColumnList(t *testing.T) {
	got := NewGenerator().Generate(nil)
	if got.Industry != "General" {
		t.Errorf("industry = %q, want General", got.Industry)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got.Confidence)
	}
	if len(got.Questions) == 0 {
		t.Error("general questions should still be produced")
	}
}
