package carbon

import (
	"errors"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func defaultPolicy() Policy {
	return Policy{KgPerCredit: 1000, PriceMin: 50, PriceMax: 150}
}

func setupEngine(t *testing.T) *Engine {
	e, err := NewEngine(defaultPolicy())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func TestNewEngine_RejectsBadPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{"zero kg per credit", Policy{KgPerCredit: 0, PriceMin: 50, PriceMax: 150}},
		{"negative kg per credit", Policy{KgPerCredit: -1, PriceMin: 50, PriceMax: 150}},
		{"negative price min", Policy{KgPerCredit: 1000, PriceMin: -1, PriceMax: 150}},
		{"min above max", Policy{KgPerCredit: 1000, PriceMin: 200, PriceMax: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.policy); err == nil {
				t.Errorf("expected error for policy %+v", tt.policy)
			}
		})
	}
}

func TestCredits_OneCreditPer1000kg(t *testing.T) {
	e := setupEngine(t)

	credits, err := e.Credits(1000)
	if err != nil {
		t.Fatalf("Credits failed: %v", err)
	}
	if credits != 1.00 {
		t.Errorf("expected 1.00 credit, got %.2f", credits)
	}
}

func TestCredits_Rounding(t *testing.T) {
	e := setupEngine(t)

	credits, err := e.Credits(12.34)
	if err != nil {
		t.Fatalf("Credits failed: %v", err)
	}
	if credits != 0.01 {
		t.Errorf("expected 0.01 credits, got %.2f", credits)
	}
}

func TestCredits_RejectsNegative(t *testing.T) {
	e := setupEngine(t)

	if _, err := e.Credits(-1); !errors.Is(err, ErrNegativeEmission) {
		t.Errorf("expected ErrNegativeEmission, got %v", err)
	}
}

func TestEstimatePrice_OneCredit(t *testing.T) {
	e := setupEngine(t)

	est, err := e.EstimatePrice(1)
	if err != nil {
		t.Fatalf("EstimatePrice failed: %v", err)
	}
	if est.Min != 50 || est.Max != 150 || est.Average != 100 {
		t.Errorf("expected {50 150 100}, got {%.2f %.2f %.2f}", est.Min, est.Max, est.Average)
	}
}

func TestEstimatePrice_AverageWithinBounds(t *testing.T) {
	e := setupEngine(t)

	for _, kg := range []float64{0, 0.5, 12, 1000, 98765.43} {
		credits, err := e.Credits(kg)
		if err != nil {
			t.Fatalf("Credits(%f) failed: %v", kg, err)
		}
		est, err := e.EstimatePrice(credits)
		if err != nil {
			t.Fatalf("EstimatePrice(%f) failed: %v", credits, err)
		}
		if est.Average < est.Min || est.Average > est.Max {
			t.Errorf("emission %f: average %.2f outside [%.2f, %.2f]", kg, est.Average, est.Min, est.Max)
		}
	}
}

func TestEstimatePrice_RejectsNegativeCredits(t *testing.T) {
	e := setupEngine(t)

	if _, err := e.EstimatePrice(-0.5); err == nil {
		t.Fatal("expected error for negative credits")
	}
}

func TestSavings_EqualToBaseline(t *testing.T) {
	e := setupEngine(t)

	s, err := e.Savings(12, 12)
	if err != nil {
		t.Fatalf("Savings failed: %v", err)
	}
	if s.SavedKg != 0 || s.Percent != 0 {
		t.Errorf("expected {0 0}, got {%.2f %.2f}", s.SavedKg, s.Percent)
	}
	if !s.PercentDefined {
		t.Error("expected defined percentage for non-zero baseline")
	}
}

func TestSavings_Sign(t *testing.T) {
	e := setupEngine(t)

	tests := []struct {
		emission float64
		baseline float64
		positive bool
	}{
		{8.9, 12, true},   // bus vs car: saves
		{96, 12, false},   // truck vs car: worse than baseline
		{0, 12, true},     // bicycle vs car: saves everything
	}

	for _, tt := range tests {
		s, err := e.Savings(tt.emission, tt.baseline)
		if err != nil {
			t.Fatalf("Savings(%f, %f) failed: %v", tt.emission, tt.baseline, err)
		}
		if tt.positive && s.SavedKg <= 0 {
			t.Errorf("Savings(%f, %f): expected positive SavedKg, got %.2f", tt.emission, tt.baseline, s.SavedKg)
		}
		if !tt.positive && s.SavedKg >= 0 {
			t.Errorf("Savings(%f, %f): expected negative SavedKg, got %.2f", tt.emission, tt.baseline, s.SavedKg)
		}
	}
}

func TestSavings_BusVsCarPercent(t *testing.T) {
	e := setupEngine(t)

	s, err := e.Savings(8.9, 12)
	if err != nil {
		t.Fatalf("Savings failed: %v", err)
	}
	if s.SavedKg != 3.1 {
		t.Errorf("expected 3.10 kg saved, got %.2f", s.SavedKg)
	}
	if s.Percent != 25.83 {
		t.Errorf("expected 25.83%%, got %.2f", s.Percent)
	}
}

func TestSavings_ZeroBaselineIsUndefined(t *testing.T) {
	e := setupEngine(t)

	s, err := e.Savings(5, 0)
	if err != nil {
		t.Fatalf("Savings failed: %v", err)
	}
	if s.PercentDefined {
		t.Error("expected undefined percentage for zero baseline")
	}
	if s.Percent != 0 {
		t.Errorf("expected 0 placeholder percentage, got %f", s.Percent)
	}
	if s.SavedKg != -5 {
		t.Errorf("expected -5.00 kg saved, got %.2f", s.SavedKg)
	}
}

func TestSavings_RejectsNegativeInputs(t *testing.T) {
	e := setupEngine(t)

	if _, err := e.Savings(-1, 12); !errors.Is(err, ErrNegativeEmission) {
		t.Errorf("expected ErrNegativeEmission, got %v", err)
	}
	if _, err := e.Savings(1, -12); !errors.Is(err, ErrNegativeEmission) {
		t.Errorf("expected ErrNegativeEmission for baseline, got %v", err)
	}
}
