package usecase

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase/interfaces"
)

// sizeTolerance absorbs floating-point error in the step-multiple check.
const sizeTolerance = 1e-8

// EstimateParams are the symbolic inputs of a freight estimate. Size stays a
// raw string: whether it is required at all depends on the resolved lane's
// pricing mode, so parsing is deferred until after the lane lookup.
type EstimateParams struct {
	From   string
	To     string
	Method string
	Metric string
	Size   string
}

// IEstimateUseCase exposes the end-to-end freight cost estimation.
type IEstimateUseCase interface {
	EstimateFreight(ctx context.Context, params EstimateParams) (entities.FreightEstimate, error)
}

type EstimateUseCase struct {
	refRepo  interfaces.IReferenceRepository
	rateRepo interfaces.IFreightRateRepository
	exchange IExchangeRateUseCase
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	refRepo interfaces.IReferenceRepository,
	rateRepo interfaces.IFreightRateRepository,
	exchange IExchangeRateUseCase,
) *EstimateUseCase {
	return &EstimateUseCase{refRepo: refRepo, rateRepo: rateRepo, exchange: exchange}
}

// EstimateFreight resolves the requested lane, validates the requested size
// against the metric's constraints, computes fee totals in the lane's pricing
// currency and converts them into the destination currency when the two
// differ. Any failed step aborts the pipeline; no partial result is returned.
func (u *EstimateUseCase) EstimateFreight(ctx context.Context, params EstimateParams) (entities.FreightEstimate, error) {
	from := strings.TrimSpace(params.From)
	to := strings.TrimSpace(params.To)
	method := strings.TrimSpace(params.Method)
	metric := strings.TrimSpace(params.Metric)
	if from == "" || to == "" || method == "" || metric == "" {
		return entities.FreightEstimate{}, newValidationError("Missing required parameters")
	}

	origin, err := u.refRepo.FindLocation(ctx, from)
	if err != nil {
		return entities.FreightEstimate{}, err
	}
	if origin.Code == "" {
		return entities.FreightEstimate{}, newNotFoundError("Origin not found")
	}

	destination, err := u.refRepo.FindLocation(ctx, to)
	if err != nil {
		return entities.FreightEstimate{}, err
	}
	if destination.Code == "" {
		return entities.FreightEstimate{}, newNotFoundError("Destination not found")
	}
	if destination.Currency == nil || destination.Currency.Code == "" {
		return entities.FreightEstimate{}, newNotFoundError("Destination currency not found")
	}

	shippingMethod, err := u.refRepo.FindMethod(ctx, method)
	if err != nil {
		return entities.FreightEstimate{}, err
	}
	if shippingMethod.Code == "" {
		return entities.FreightEstimate{}, newNotFoundError("Shipping method not found")
	}

	shippingMetric, err := u.refRepo.FindMetric(ctx, metric)
	if err != nil {
		return entities.FreightEstimate{}, err
	}
	if shippingMetric.Code == "" {
		return entities.FreightEstimate{}, newNotFoundError("Shipping metric not found")
	}

	lane, err := u.rateRepo.FindLatestByLane(ctx, origin.Code, destination.Code, shippingMethod.Code, shippingMetric.Code)
	if err != nil {
		return entities.FreightEstimate{}, err
	}
	if lane.ID == "" {
		return entities.FreightEstimate{}, newNotFoundError("Freight rate not found")
	}
	if lane.Currency.Code == "" {
		return entities.FreightEstimate{}, newNotFoundError("Freight rate currency not found")
	}

	var size *float64
	var fee entities.FeeBreakdown

	sizeRaw := strings.TrimSpace(params.Size)
	if lane.PerUnit {
		if sizeRaw == "" {
			return entities.FreightEstimate{}, newValidationError("Missing required size for per-unit pricing")
		}
		parsed, err := strconv.ParseFloat(sizeRaw, 64)
		if err != nil {
			return entities.FreightEstimate{}, newValidationError("Invalid or missing numeric value for size")
		}
		if err := validateSize(shippingMetric, parsed); err != nil {
			return entities.FreightEstimate{}, err
		}
		size = &parsed
		fee = computeFees(lane, parsed)
	} else {
		// Flat pricing: size is informational only and passes through
		// unvalidated.
		if parsed, err := strconv.ParseFloat(sizeRaw, 64); err == nil {
			size = &parsed
		}
		fee = computeFees(lane, 0)
	}

	baseCurrency := lane.Currency.Code
	destinationCurrency := destination.Currency.Code

	exchangeRate := 1.0
	feeConverted := fee
	if baseCurrency != destinationCurrency {
		resolved, err := u.exchange.ResolveRate(ctx, baseCurrency, destinationCurrency)
		if err != nil {
			return entities.FreightEstimate{}, err
		}
		exchangeRate = resolved.Rate
		// Each sub-total is converted independently with the same rate; the
		// total is not a sum of rounded parts.
		feeConverted = entities.FeeBreakdown{
			ShippingFee: fee.ShippingFee * exchangeRate,
			ClearingFee: fee.ClearingFee * exchangeRate,
			TotalFee:    fee.TotalFee * exchangeRate,
		}
	}

	log.Printf("[freight][estimate] lane=%s per_unit=%t base=%s dest=%s rate=%v total=%v",
		lane.Code, lane.PerUnit, baseCurrency, destinationCurrency, exchangeRate, fee.TotalFee)

	return entities.FreightEstimate{
		Origin:              origin,
		Destination:         destination,
		Method:              shippingMethod,
		Metric:              shippingMetric,
		BaseCurrency:        baseCurrency,
		DestinationCurrency: destinationCurrency,
		ExchangeRate:        exchangeRate,
		ShippingFee:         lane.ShippingFee,
		ClearingFee:         lane.ClearingFee,
		EstimatedDays:       lane.EstimatedDays,
		Size:                size,
		Fee:                 fee,
		FeeConverted:        feeConverted,
	}, nil
}

// validateSize checks a parsed size against the metric's bounds and step.
func validateSize(m entities.Metric, size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return newValidationError("Invalid or missing numeric value for size")
	}
	if size < m.Min {
		return newValidationError("Size must be at least %s %s", formatNumber(m.Min), m.Unit)
	}
	if size > m.Max {
		return newValidationError("Size must not exceed %s %s", formatNumber(m.Max), m.Unit)
	}
	if m.Multiple > 0 {
		rem := math.Mod(size-m.Min, m.Multiple)
		if math.Abs(rem) > sizeTolerance && math.Abs(m.Multiple-rem) > sizeTolerance {
			return newValidationError("Size must be in multiples of %s %s", formatNumber(m.Multiple), m.Unit)
		}
	}
	return nil
}

// computeFees totals the shipping and clearing fees for one lane. Per-unit
// lanes scale the unit prices by size; flat lanes ignore it.
func computeFees(rate entities.FreightRate, size float64) entities.FeeBreakdown {
	shipping := rate.ShippingFee
	clearing := rate.ClearingFee
	if rate.PerUnit {
		shipping *= size
		clearing *= size
	}
	return entities.FeeBreakdown{
		ShippingFee: shipping,
		ClearingFee: clearing,
		TotalFee:    shipping + clearing,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
