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

// IExchangeRateUseCase exposes currency conversion.
//
// ResolveRate is shared with the freight estimation flow so both paths apply
// the same direct-or-inverse fallback policy.
type IExchangeRateUseCase interface {
	Convert(ctx context.Context, from, to, amount string) (entities.Conversion, error)
	ResolveRate(ctx context.Context, from, to string) (entities.ResolvedRate, error)
}

type ExchangeRateUseCase struct {
	refRepo interfaces.IReferenceRepository
}

var _ IExchangeRateUseCase = (*ExchangeRateUseCase)(nil)

func NewExchangeRateUseCase(refRepo interfaces.IReferenceRepository) *ExchangeRateUseCase {
	return &ExchangeRateUseCase{refRepo: refRepo}
}

// Convert converts amount from one currency into another.
//
// The full-precision product is kept alongside the 2-decimal display value;
// callers combining several converted sub-totals must sum the full values to
// avoid compounding rounding error.
func (u *ExchangeRateUseCase) Convert(ctx context.Context, from, to, amount string) (entities.Conversion, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	amount = strings.TrimSpace(amount)
	if from == "" || to == "" || amount == "" {
		return entities.Conversion{}, newValidationError("Missing required query parameters: from, to, amount")
	}

	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return entities.Conversion{}, newValidationError("Invalid or missing numeric value for amount")
	}

	resolved, err := u.ResolveRate(ctx, from, to)
	if err != nil {
		return entities.Conversion{}, err
	}

	full := parsed * resolved.Rate
	log.Printf("[exchange][convert] from=%s to=%s rate=%v inverted=%t", from, to, resolved.Rate, resolved.Inverted)

	return entities.Conversion{
		From:           resolved.From,
		To:             resolved.To,
		Rate:           resolved.Rate,
		Amount:         parsed,
		ConvertedFull:  full,
		ConvertedRound: roundMoney(full),
		Inverted:       resolved.Inverted,
	}, nil
}

// ResolveRate returns the conversion rate for from->to.
//
// Resolution order: identity (same currency), stored direct pair, reciprocal
// of the stored inverse pair. The result is always oriented in the requested
// direction regardless of how the backing record is stored.
func (u *ExchangeRateUseCase) ResolveRate(ctx context.Context, from, to string) (entities.ResolvedRate, error) {
	if from == to {
		c := entities.Currency{Code: from}
		return entities.ResolvedRate{From: c, To: c, Rate: 1}, nil
	}

	direct, err := u.refRepo.FindExchangeRate(ctx, from, to)
	if err != nil {
		return entities.ResolvedRate{}, err
	}
	if direct.Rate > 0 {
		return entities.ResolvedRate{From: direct.From, To: direct.To, Rate: direct.Rate}, nil
	}

	inverse, err := u.refRepo.FindExchangeRate(ctx, to, from)
	if err != nil {
		return entities.ResolvedRate{}, err
	}
	if inverse.Rate > 0 {
		return entities.ResolvedRate{
			From:     inverse.To,
			To:       inverse.From,
			Rate:     1 / inverse.Rate,
			Inverted: true,
		}, nil
	}

	return entities.ResolvedRate{}, newNotFoundError("Exchange rate not found (direct or inverse)")
}

// roundMoney rounds to 2 decimal places, half away from zero.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
