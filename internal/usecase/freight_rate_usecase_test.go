package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trendy_logistics/internal/domain/entities"
	mock_interfaces "trendy_logistics/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func rateFixtures(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIReferenceRepository, *mock_interfaces.MockIFreightRateRepository, *FreightRateUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	refRepo := mock_interfaces.NewMockIReferenceRepository(ctrl)
	rateRepo := mock_interfaces.NewMockIFreightRateRepository(ctrl)
	return ctrl, refRepo, rateRepo, NewFreightRateUseCase(refRepo, rateRepo)
}

func validRateInput() FreightRateInput {
	return FreightRateInput{
		Origin:       "LHR",
		Destination:  "LOS",
		Method:       "AIR",
		Metric:       "WGT",
		ShippingFee:  3,
		ClearingFee:  0.5,
		CurrencyCode: "USD",
		CurrencyName: "US Dollar",
		PerUnit:      true,
	}
}

func expectRateLookups(refRepo *mock_interfaces.MockIReferenceRepository) {
	refRepo.EXPECT().FindLocation(gomock.Any(), "LHR").Return(londonLocation(), nil)
	refRepo.EXPECT().FindLocation(gomock.Any(), "LOS").Return(lagosLocation(), nil)
	refRepo.EXPECT().FindMethod(gomock.Any(), "AIR").Return(airMethod(), nil)
	refRepo.EXPECT().FindMetric(gomock.Any(), "WGT").Return(weightMetric(), nil)
}

func TestFreightRateUseCase_Create(t *testing.T) {
	t.Run("missing relation codes", func(t *testing.T) {
		ctrl, _, _, uc := rateFixtures(t)
		defer ctrl.Finish()

		input := validRateInput()
		input.Method = "  "
		_, err := uc.Create(context.Background(), input)
		if err == nil || err.Error() != "Origin, destination, method, and metric are required to generate the code" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative fees", func(t *testing.T) {
		ctrl, _, _, uc := rateFixtures(t)
		defer ctrl.Finish()

		input := validRateInput()
		input.ClearingFee = -1
		_, err := uc.Create(context.Background(), input)
		if err == nil || err.Error() != "Shipping and clearing fees must be non-negative" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing currency", func(t *testing.T) {
		ctrl, _, _, uc := rateFixtures(t)
		defer ctrl.Finish()

		input := validRateInput()
		input.CurrencyCode = ""
		_, err := uc.Create(context.Background(), input)
		if err == nil || err.Error() != "Currency is required" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		ctrl, refRepo, _, uc := rateFixtures(t)
		defer ctrl.Finish()

		refRepo.EXPECT().FindLocation(gomock.Any(), "LHR").Return(entities.Location{}, nil)

		_, err := uc.Create(context.Background(), validRateInput())
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if err.Error() != "Origin not found" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("duplicate lane code", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := rateFixtures(t)
		defer ctrl.Finish()

		expectRateLookups(refRepo)
		rateRepo.EXPECT().FindByCode(gomock.Any(), "lhr-los-air-wgt").Return(entities.FreightRate{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), validRateInput())
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if err.Error() != "A freight rate with code 'lhr-los-air-wgt' already exists" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("create success derives the slug code", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := rateFixtures(t)
		defer ctrl.Finish()

		expectRateLookups(refRepo)
		rateRepo.EXPECT().FindByCode(gomock.Any(), "lhr-los-air-wgt").Return(entities.FreightRate{}, nil)
		rateRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.FreightRate{})).DoAndReturn(
			func(_ context.Context, r entities.FreightRate) (entities.FreightRate, error) {
				if r.ID == "" || r.Code != "lhr-los-air-wgt" {
					t.Fatalf("unexpected rate: %+v", r)
				}
				if r.OriginCode != "LHR" || r.DestinationCode != "LOS" || r.MethodCode != "AIR" || r.MetricCode != "WGT" {
					t.Fatalf("unexpected relation codes: %+v", r)
				}
				if !r.PerUnit || r.Currency.Code != "USD" || r.CreatedAt.IsZero() {
					t.Fatalf("unexpected rate fields: %+v", r)
				}
				return r, nil
			},
		)

		created, err := uc.Create(context.Background(), validRateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Code != "lhr-los-air-wgt" {
			t.Fatalf("unexpected code: %s", created.Code)
		}
	})
}

func TestFreightRateUseCase_BulkCreate(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		ctrl, _, _, uc := rateFixtures(t)
		defer ctrl.Finish()

		_, err := uc.BulkCreate(context.Background(), nil)
		if err == nil || err.Error() != "At least one freight rate is required" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("first invalid row aborts with its index", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := rateFixtures(t)
		defer ctrl.Finish()

		expectRateLookups(refRepo)
		rateRepo.EXPECT().FindByCode(gomock.Any(), "lhr-los-air-wgt").Return(entities.FreightRate{}, nil)
		rateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FreightRate) (entities.FreightRate, error) { return r, nil },
		)

		bad := validRateInput()
		bad.CurrencyCode = ""
		_, err := uc.BulkCreate(context.Background(), []FreightRateInput{validRateInput(), bad})
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "row 1: ") {
			t.Fatalf("expected row index prefix, got %v", err)
		}
	})

	t.Run("all rows created", func(t *testing.T) {
		ctrl, refRepo, rateRepo, uc := rateFixtures(t)
		defer ctrl.Finish()

		expectRateLookups(refRepo)
		rateRepo.EXPECT().FindByCode(gomock.Any(), "lhr-los-air-wgt").Return(entities.FreightRate{}, nil)
		rateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FreightRate) (entities.FreightRate, error) { return r, nil },
		)

		created, err := uc.BulkCreate(context.Background(), []FreightRateInput{validRateInput()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 1 {
			t.Fatalf("expected 1 created rate, got %d", len(created))
		}
	})
}
