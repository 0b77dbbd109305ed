package interfaces

import (
	"context"

	"trendy_logistics/internal/domain/entities"
)

// IFreightRateRepository abstracts persistence for FreightRate.
//
// The estimate flow only reads (FindLatestByLane); Create/FindByCode back the
// freight-rate management endpoints and the lane-code uniqueness rule.
type IFreightRateRepository interface {
	// FindLatestByLane returns the authoritative rate record for the lane:
	// latest created_at, ties broken by the greatest id. Zero value when the
	// lane is unpriced.
	FindLatestByLane(ctx context.Context, origin, destination, method, metric string) (entities.FreightRate, error)
	FindByCode(ctx context.Context, code string) (entities.FreightRate, error)
	Create(ctx context.Context, rate entities.FreightRate) (entities.FreightRate, error)
}
