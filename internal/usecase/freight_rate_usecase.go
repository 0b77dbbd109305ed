package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase/interfaces"
	"trendy_logistics/pkg"

	"github.com/google/uuid"
)

// FreightRateInput is the caller-facing payload for creating a lane price.
// All relation fields are symbolic codes; the lane code itself is derived,
// never supplied.
type FreightRateInput struct {
	Origin        string
	Destination   string
	Method        string
	Metric        string
	ShippingFee   float64
	ClearingFee   float64
	CurrencyCode  string
	CurrencyName  string
	PerUnit       bool
	EstimatedDays *int
}

// IFreightRateUseCase exposes freight-rate management.
type IFreightRateUseCase interface {
	Create(ctx context.Context, input FreightRateInput) (entities.FreightRate, error)
	BulkCreate(ctx context.Context, inputs []FreightRateInput) ([]entities.FreightRate, error)
}

type FreightRateUseCase struct {
	refRepo  interfaces.IReferenceRepository
	rateRepo interfaces.IFreightRateRepository
}

var _ IFreightRateUseCase = (*FreightRateUseCase)(nil)

func NewFreightRateUseCase(refRepo interfaces.IReferenceRepository, rateRepo interfaces.IFreightRateRepository) *FreightRateUseCase {
	return &FreightRateUseCase{refRepo: refRepo, rateRepo: rateRepo}
}

// Create validates the four lane relations, derives the lane code
// ("{origin}-{destination}-{method}-{metric}" slug), enforces its uniqueness
// and stores the new rate record.
func (u *FreightRateUseCase) Create(ctx context.Context, input FreightRateInput) (entities.FreightRate, error) {
	origin := strings.TrimSpace(input.Origin)
	destination := strings.TrimSpace(input.Destination)
	method := strings.TrimSpace(input.Method)
	metric := strings.TrimSpace(input.Metric)
	if origin == "" || destination == "" || method == "" || metric == "" {
		return entities.FreightRate{}, newValidationError("Origin, destination, method, and metric are required to generate the code")
	}
	if input.ShippingFee < 0 || input.ClearingFee < 0 {
		return entities.FreightRate{}, newValidationError("Shipping and clearing fees must be non-negative")
	}
	currencyCode := strings.TrimSpace(input.CurrencyCode)
	if currencyCode == "" {
		return entities.FreightRate{}, newValidationError("Currency is required")
	}

	originLoc, err := u.refRepo.FindLocation(ctx, origin)
	if err != nil {
		return entities.FreightRate{}, err
	}
	if originLoc.Code == "" {
		return entities.FreightRate{}, newNotFoundError("Origin not found")
	}
	destinationLoc, err := u.refRepo.FindLocation(ctx, destination)
	if err != nil {
		return entities.FreightRate{}, err
	}
	if destinationLoc.Code == "" {
		return entities.FreightRate{}, newNotFoundError("Destination not found")
	}
	shippingMethod, err := u.refRepo.FindMethod(ctx, method)
	if err != nil {
		return entities.FreightRate{}, err
	}
	if shippingMethod.Code == "" {
		return entities.FreightRate{}, newNotFoundError("Shipping method not found")
	}
	shippingMetric, err := u.refRepo.FindMetric(ctx, metric)
	if err != nil {
		return entities.FreightRate{}, err
	}
	if shippingMetric.Code == "" {
		return entities.FreightRate{}, newNotFoundError("Shipping metric not found")
	}

	code := pkg.ToSlug(originLoc.Code + " " + destinationLoc.Code + " " + shippingMethod.Code + " " + shippingMetric.Code)

	existing, err := u.rateRepo.FindByCode(ctx, code)
	if err != nil {
		return entities.FreightRate{}, err
	}
	if existing.ID != "" {
		return entities.FreightRate{}, newValidationError("A freight rate with code '%s' already exists", code)
	}

	rate := entities.FreightRate{
		ID:              uuid.NewString(),
		Code:            code,
		OriginCode:      originLoc.Code,
		DestinationCode: destinationLoc.Code,
		MethodCode:      shippingMethod.Code,
		MetricCode:      shippingMetric.Code,
		ShippingFee:     input.ShippingFee,
		ClearingFee:     input.ClearingFee,
		Currency:        entities.Currency{Code: currencyCode, Name: strings.TrimSpace(input.CurrencyName)},
		PerUnit:         input.PerUnit,
		EstimatedDays:   input.EstimatedDays,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := u.rateRepo.Create(ctx, rate)
	if err != nil {
		return entities.FreightRate{}, err
	}
	log.Printf("[freight][create] code=%s per_unit=%t currency=%s", created.Code, created.PerUnit, created.Currency.Code)
	return created, nil
}

// BulkCreate creates rates one by one and stops at the first failure,
// tagging the error with the offending row index.
func (u *FreightRateUseCase) BulkCreate(ctx context.Context, inputs []FreightRateInput) ([]entities.FreightRate, error) {
	if len(inputs) == 0 {
		return nil, newValidationError("At least one freight rate is required")
	}

	created := make([]entities.FreightRate, 0, len(inputs))
	for i, input := range inputs {
		rate, err := u.Create(ctx, input)
		if err != nil {
			switch err.(type) {
			case *ValidationError, *NotFoundError:
				return nil, newValidationError("row %d: %s", i, err.Error())
			default:
				return nil, err
			}
		}
		created = append(created, rate)
	}
	return created, nil
}
