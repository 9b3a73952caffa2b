// Package carbon converts CO2 mass into carbon-credit purchase estimates and
// savings relative to a baseline emission.
package carbon

import (
	"errors"
	"fmt"
	"math"

	"github.com/ecotrip/go-trip-carbon/internal/models"
)

// ErrNegativeEmission signals an emission mass below zero.
var ErrNegativeEmission = errors.New("emission must be >= 0")

// Policy is the carbon-credit purchase policy: one credit offsets KgPerCredit
// kilograms of CO2, purchasable between PriceMin and PriceMax currency units.
type Policy struct {
	KgPerCredit float64
	PriceMin    float64
	PriceMax    float64
}

func (p Policy) validate() error {
	if p.KgPerCredit <= 0 {
		return fmt.Errorf("kg per credit must be > 0, got %f", p.KgPerCredit)
	}
	if p.PriceMin < 0 {
		return fmt.Errorf("credit price min must be >= 0, got %f", p.PriceMin)
	}
	if p.PriceMin > p.PriceMax {
		return fmt.Errorf("credit price min %f exceeds max %f", p.PriceMin, p.PriceMax)
	}
	return nil
}

// Engine derives credit counts, price estimates and savings from an immutable
// policy. Safe for concurrent use.
type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) (*Engine, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}
	return &Engine{policy: policy}, nil
}

// Credits returns how many carbon credits offset the given emission, rounded
// to 2 decimal places.
func (e *Engine) Credits(emissionKg float64) (float64, error) {
	if emissionKg < 0 {
		return 0, fmt.Errorf("%w, got %f", ErrNegativeEmission, emissionKg)
	}
	return round2(emissionKg / e.policy.KgPerCredit), nil
}

// EstimatePrice returns the purchase price range for a credit count. Min, max
// and average are each rounded from their own unrounded value, so the average
// never compounds rounding error from the bounds.
func (e *Engine) EstimatePrice(credits float64) (models.CreditEstimate, error) {
	if credits < 0 {
		return models.CreditEstimate{}, fmt.Errorf("credits must be >= 0, got %f", credits)
	}

	min := credits * e.policy.PriceMin
	max := credits * e.policy.PriceMax

	return models.CreditEstimate{
		Credits: round2(credits),
		Min:     round2(min),
		Max:     round2(max),
		Average: round2((min + max) / 2),
	}, nil
}

// Savings compares an emission against a baseline. SavedKg is negative when
// the emission exceeds the baseline; that signals a worse-than-baseline
// choice, not an error. A zero baseline makes the percentage undefined: the
// result carries 0 with PercentDefined false, never NaN or Inf.
func (e *Engine) Savings(emissionKg, baselineKg float64) (models.Savings, error) {
	if emissionKg < 0 {
		return models.Savings{}, fmt.Errorf("%w, got %f", ErrNegativeEmission, emissionKg)
	}
	if baselineKg < 0 {
		return models.Savings{}, fmt.Errorf("baseline %w, got %f", ErrNegativeEmission, baselineKg)
	}

	saved := baselineKg - emissionKg
	result := models.Savings{
		SavedKg: round2(saved),
	}
	if baselineKg != 0 {
		result.Percent = round2(saved / baselineKg * 100)
		result.PercentDefined = true
	}
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
