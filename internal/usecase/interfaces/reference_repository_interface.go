package interfaces

import (
	"context"

	"trendy_logistics/internal/domain/entities"
)

// IReferenceRepository abstracts read-only access to the reference data the
// pricing engine resolves symbolic codes against.
//
// All lookups return the zero value (no error) when nothing matches; the
// usecases decide which missing dimension that translates to. Errors are
// reserved for storage faults.
type IReferenceRepository interface {
	FindLocation(ctx context.Context, code string) (entities.Location, error)
	FindMethod(ctx context.Context, code string) (entities.ShippingMethod, error)
	FindMetric(ctx context.Context, code string) (entities.Metric, error)
	// FindExchangeRate looks up the directed pair from->to only; the
	// caller handles falling back to the inverse pair.
	FindExchangeRate(ctx context.Context, from, to string) (entities.ExchangeRate, error)
}
