package booking

import (
	"errors"
	"testing"

	"sihati/models"
)

func TestResolvePriceFixed(t *testing.T) {
	cfg := models.FixedPricing{Price: 1500}

	// Fixed pricing ignores whatever session type the patient picked.
	for _, sessionType := range []string{"", "consultation", "anything"} {
		price, err := ResolvePrice(cfg, sessionType)
		if err != nil {
			t.Fatalf("ResolvePrice(fixed, %q) returned error: %v", sessionType, err)
		}
		if price != 1500 {
			t.Errorf("ResolvePrice(fixed, %q) = %v, want 1500", sessionType, price)
		}
	}
}

func TestResolvePriceVariableUsesMinimum(t *testing.T) {
	price, err := ResolvePrice(models.VariablePricing{Min: 800, Max: 2000}, "consultation")
	if err != nil {
		t.Fatalf("ResolvePrice(variable) returned error: %v", err)
	}
	if price != 800 {
		t.Errorf("ResolvePrice(variable) = %v, want the advertised minimum 800", price)
	}
}

func TestResolvePriceMulti(t *testing.T) {
	cfg := models.MultiPricing{SessionTypes: []models.SessionType{
		{Label: "consultation", Price: 1000},
		{Label: "suivi", Price: 500},
	}}

	tests := []struct {
		sessionType string
		want        float64
	}{
		{"consultation", 1000},
		{"suivi", 500},
		// An unknown label resolves to a zero price rather than failing.
		{"radiologie", 0},
	}
	for _, tt := range tests {
		price, err := ResolvePrice(cfg, tt.sessionType)
		if err != nil {
			t.Fatalf("ResolvePrice(multi, %q) returned error: %v", tt.sessionType, err)
		}
		if price != tt.want {
			t.Errorf("ResolvePrice(multi, %q) = %v, want %v", tt.sessionType, price, tt.want)
		}
	}
}

func TestResolvePriceMultiRequiresSessionType(t *testing.T) {
	cfg := models.MultiPricing{SessionTypes: []models.SessionType{{Label: "consultation", Price: 1000}}}

	_, err := ResolvePrice(cfg, "")
	if !errors.Is(err, ErrMissingSessionType) {
		t.Errorf("ResolvePrice(multi, \"\") error = %v, want ErrMissingSessionType", err)
	}
}

func TestResolvePriceIsDeterministic(t *testing.T) {
	cfg := models.VariablePricing{Min: 700, Max: 3000}

	first, err := ResolvePrice(cfg, "consultation")
	if err != nil {
		t.Fatalf("ResolvePrice returned error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := ResolvePrice(cfg, "consultation")
		if err != nil {
			t.Fatalf("ResolvePrice returned error on repeat: %v", err)
		}
		if again != first {
			t.Fatalf("ResolvePrice not deterministic: got %v then %v", first, again)
		}
	}
}
