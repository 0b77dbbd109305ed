package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"trendy_logistics/internal/domain/entities"
	mock_interfaces "trendy_logistics/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func estimateFixtures(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIReferenceRepository, *mock_interfaces.MockIFreightRateRepository, *EstimateUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	refRepo := mock_interfaces.NewMockIReferenceRepository(ctrl)
	rateRepo := mock_interfaces.NewMockIFreightRateRepository(ctrl)
	uc := NewEstimateUseCase(refRepo, rateRepo, NewExchangeRateUseCase(refRepo))
	return ctrl, refRepo, rateRepo, uc
}

func lagosLocation() entities.Location {
	return entities.Location{
		Code:     "LOS",
		City:     "Lagos",
		Country:  "Nigeria",
		Currency: &entities.Currency{Code: "NGN", Name: "Nigerian Naira"},
	}
}

func londonLocation() entities.Location {
	return entities.Location{
		Code:     "LHR",
		City:     "London",
		Country:  "United Kingdom",
		Currency: &entities.Currency{Code: "GBP", Name: "Pound Sterling"},
	}
}

func weightMetric() entities.Metric {
	return entities.Metric{Code: "WGT", Name: "Weight", Unit: "kg", Min: 1, Max: 100, Multiple: 1}
}

func airMethod() entities.ShippingMethod {
	return entities.ShippingMethod{Code: "AIR", Name: "Air Freight"}
}

func perUnitLane() entities.FreightRate {
	return entities.FreightRate{
		ID:              "rate-1",
		Code:            "lhr-los-air-wgt",
		OriginCode:      "LHR",
		DestinationCode: "LOS",
		MethodCode:      "AIR",
		MetricCode:      "WGT",
		ShippingFee:     3,
		ClearingFee:     0.5,
		Currency:        entities.Currency{Code: "USD", Name: "US Dollar"},
		PerUnit:         true,
	}
}

func expectHappyLookups(refRepo *mock_interfaces.MockIReferenceRepository) {
	refRepo.EXPECT().FindLocation(gomock.Any(), "LHR").Return(londonLocation(), nil)
	refRepo.EXPECT().FindLocation(gomock.Any(), "LOS").Return(lagosLocation(), nil)
	refRepo.EXPECT().FindMethod(gomock.Any(), "AIR").Return(airMethod(), nil)
	refRepo.EXPECT().FindMetric(gomock.Any(), "WGT").Return(weightMetric(), nil)
}

func TestEstimateUseCase_EstimateFreight(t *testing.T) {
	t.Run("missing parameters short-circuit before any lookup", func(t *testing.T) {
		ctrl, _, _, uc := estimateFixtures(t)
		defer ctrl.Finish()

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{From: "LHR", To: "", Method: "AIR", Metric: "WGT"})
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if err.Error() != "Missing required parameters" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("per-unit fees scale with size and convert per sub-total", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(perUnitLane(), nil)
		refRepo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "NGN").Return(entities.ExchangeRate{
			From: entities.Currency{Code: "USD"},
			To:   entities.Currency{Code: "NGN"},
			Rate: 1500,
		}, nil)

		estimate, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT", Size: "10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if estimate.Fee.ShippingFee != 30 || estimate.Fee.ClearingFee != 5 || estimate.Fee.TotalFee != 35 {
			t.Fatalf("unexpected fee breakdown: %+v", estimate.Fee)
		}
		if estimate.FeeConverted.ShippingFee != 45000 || estimate.FeeConverted.ClearingFee != 7500 || estimate.FeeConverted.TotalFee != 52500 {
			t.Fatalf("unexpected converted breakdown: %+v", estimate.FeeConverted)
		}
		if estimate.BaseCurrency != "USD" || estimate.DestinationCurrency != "NGN" || estimate.ExchangeRate != 1500 {
			t.Fatalf("unexpected currency fields: %+v", estimate)
		}
		if estimate.Size == nil || *estimate.Size != 10 {
			t.Fatalf("expected size 10, got %v", estimate.Size)
		}
	})

	t.Run("flat fees ignore size", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		lane := perUnitLane()
		lane.PerUnit = false
		lane.ShippingFee = 120
		lane.ClearingFee = 30

		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(lane, nil)
		refRepo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "NGN").Return(entities.ExchangeRate{
			From: entities.Currency{Code: "USD"},
			To:   entities.Currency{Code: "NGN"},
			Rate: 1500,
		}, nil)

		estimate, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT", Size: "999",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if estimate.Fee.TotalFee != 150 {
			t.Fatalf("expected flat total 150, got %v", estimate.Fee.TotalFee)
		}
		if estimate.Size == nil || *estimate.Size != 999 {
			t.Fatalf("expected informational size passthrough, got %v", estimate.Size)
		}
	})

	t.Run("no conversion when pricing currency matches destination", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		lane := perUnitLane()
		lane.Currency = entities.Currency{Code: "NGN", Name: "Nigerian Naira"}

		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(lane, nil)

		estimate, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT", Size: "10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if estimate.ExchangeRate != 1 {
			t.Fatalf("expected rate 1, got %v", estimate.ExchangeRate)
		}
		if estimate.FeeConverted != estimate.Fee {
			t.Fatalf("expected converted == base, got %+v vs %+v", estimate.FeeConverted, estimate.Fee)
		}
	})

	t.Run("missing size for per-unit lane", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(perUnitLane(), nil)

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT",
		})
		if err == nil || err.Error() != "Missing required size for per-unit pricing" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-numeric size for per-unit lane", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(perUnitLane(), nil)

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT", Size: "heavy",
		})
		if err == nil || err.Error() != "Invalid or missing numeric value for size" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("origin resolved before destination", func(t *testing.T) {
		ctrl, refRepo, _, uc := estimateFixtures(t)
		defer ctrl.Finish()

		refRepo.EXPECT().FindLocation(gomock.Any(), "XXX").Return(entities.Location{}, nil)

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "XXX", To: "LOS", Method: "AIR", Metric: "WGT",
		})
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if err.Error() != "Origin not found" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("destination without currency", func(t *testing.T) {
		ctrl, refRepo, _, uc := estimateFixtures(t)
		defer ctrl.Finish()

		bare := lagosLocation()
		bare.Currency = nil
		refRepo.EXPECT().FindLocation(gomock.Any(), "LHR").Return(londonLocation(), nil)
		refRepo.EXPECT().FindLocation(gomock.Any(), "LOS").Return(bare, nil)

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT",
		})
		if err == nil || err.Error() != "Destination currency not found" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unpriced lane", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(entities.FreightRate{}, nil)

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT",
		})
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if err.Error() != "Freight rate not found" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("lane without pricing currency", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		lane := perUnitLane()
		lane.Currency = entities.Currency{}
		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(lane, nil)

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT",
		})
		if err == nil || err.Error() != "Freight rate currency not found" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing exchange rate aborts the estimate", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := estimateFixtures(t)
		defer ctrl.Finish()

		expectHappyLookups(refRepo)
		rateRepo.EXPECT().FindLatestByLane(gomock.Any(), "LHR", "LOS", "AIR", "WGT").Return(perUnitLane(), nil)
		refRepo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "NGN").Return(entities.ExchangeRate{}, nil)
		refRepo.EXPECT().FindExchangeRate(gomock.Any(), "NGN", "USD").Return(entities.ExchangeRate{}, nil)

		_, err := uc.EstimateFreight(context.Background(), EstimateParams{
			From: "LHR", To: "LOS", Method: "AIR", Metric: "WGT", Size: "10",
		})
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestValidateSize(t *testing.T) {
	metric := entities.Metric{Code: "WGT", Unit: "kg", Min: 1, Max: 100, Multiple: 1}

	t.Run("below minimum", func(t *testing.T) {
		err := validateSize(metric, 0.5)
		if err == nil || err.Error() != "Size must be at least 1 kg" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("above maximum", func(t *testing.T) {
		err := validateSize(metric, 150)
		if err == nil || err.Error() != "Size must not exceed 100 kg" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("off the step grid", func(t *testing.T) {
		m := entities.Metric{Code: "VOL", Unit: "cbm", Min: 0, Max: 100, Multiple: 5}
		err := validateSize(m, 12)
		if err == nil || err.Error() != "Size must be in multiples of 5 cbm" {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := validateSize(m, 15); err != nil {
			t.Fatalf("15 should be on the grid: %v", err)
		}
	})

	t.Run("grid anchored at the minimum", func(t *testing.T) {
		m := entities.Metric{Code: "WGT", Unit: "kg", Min: 1, Max: 100, Multiple: 2.5}
		if err := validateSize(m, 3.5); err != nil {
			t.Fatalf("3.5 = 1 + 2.5, should pass: %v", err)
		}
		if err := validateSize(m, 5.0); err == nil {
			t.Fatalf("5.0 is off the 1 + k*2.5 grid, expected error")
		}
	})

	t.Run("float drift within tolerance", func(t *testing.T) {
		m := entities.Metric{Code: "WGT", Unit: "kg", Min: 0.1, Max: 100, Multiple: 0.1}
		// 0.3 - 0.1 is not an exact multiple of 0.1 in binary.
		if err := validateSize(m, 0.3); err != nil {
			t.Fatalf("expected tolerance to absorb the drift: %v", err)
		}
	})

	t.Run("rejects non-finite and non-positive sizes", func(t *testing.T) {
		for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			if err := validateSize(metric, v); err == nil {
				t.Fatalf("expected error for size %v", v)
			}
		}
	})
}

func TestComputeFees(t *testing.T) {
	t.Run("per-unit scales both fees", func(t *testing.T) {
		fee := computeFees(entities.FreightRate{ShippingFee: 3, ClearingFee: 0.5, PerUnit: true}, 10)
		if fee.ShippingFee != 30 || fee.ClearingFee != 5 || fee.TotalFee != 35 {
			t.Fatalf("unexpected breakdown: %+v", fee)
		}
	})

	t.Run("flat ignores size", func(t *testing.T) {
		fee := computeFees(entities.FreightRate{ShippingFee: 120, ClearingFee: 30}, 999)
		if fee.ShippingFee != 120 || fee.ClearingFee != 30 || fee.TotalFee != 150 {
			t.Fatalf("unexpected breakdown: %+v", fee)
		}
	})
}
