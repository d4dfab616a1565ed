package models

// BudgetBreakdown is the itemized cost estimate. It is derived data:
// recomputed whenever its inputs change, never mutated in place.
type BudgetBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Transport     float64 `json:"transport"`
	Tours         float64 `json:"tours"`
	Meals         float64 `json:"meals"`
	Misc          float64 `json:"misc"`
	Total         float64 `json:"total"`
}

// RateTier is one fixed price-per-unit option in the parametric
// estimator's reference tables.
type RateTier struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// TourAddOn is a fixed-price optional tour in the parametric estimator.
type TourAddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
