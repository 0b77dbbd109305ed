package entities

// Metric is a measurable shipment dimension (weight, volume, ...) with the
// numeric constraints a requested size must satisfy.
//
// Invariants maintained by the reference data owners:
//   - 0 <= Min < Max
//   - Multiple > 0 and Multiple <= Max-Min
type Metric struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Description string  `json:"description,omitempty"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Multiple    float64 `json:"multiple"`
}
