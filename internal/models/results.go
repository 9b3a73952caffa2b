package models

// ComparisonEntry ranks one transport mode for a given distance.
// PercentOfCar is the emission relative to the car baseline (car = 100).
// When the baseline emission is 0 the percentage is mathematically undefined;
// PercentDefined is false and PercentOfCar is 0 — never NaN or Inf.
type ComparisonEntry struct {
	Mode           TransportMode `json:"mode"`
	EmissionKg     float64       `json:"emission_kg"`
	PercentOfCar   float64       `json:"percent_of_car"`
	PercentDefined bool          `json:"percent_defined"`
}

// CreditEstimate is a carbon-credit purchase estimate for an emission.
// Min, Max and Average are each rounded from their own unrounded value.
type CreditEstimate struct {
	Credits float64 `json:"credits"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// Savings compares an emission against a baseline. SavedKg is negative when
// the chosen mode emits more than the baseline; that is a valid result, not
// an error. PercentDefined follows the same zero-baseline rule as
// ComparisonEntry.
type Savings struct {
	SavedKg        float64 `json:"saved_kg"`
	Percent        float64 `json:"percent"`
	PercentDefined bool    `json:"percent_defined"`
}
