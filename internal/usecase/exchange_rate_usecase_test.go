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

func TestExchangeRateUseCase_ResolveRate(t *testing.T) {
	t.Run("identity pair", func(t *testing.T) {
		uc := NewExchangeRateUseCase(nil)

		resolved, err := uc.ResolveRate(context.Background(), "USD", "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.Rate != 1 || resolved.Inverted {
			t.Fatalf("expected identity rate, got %+v", resolved)
		}
		if resolved.From.Code != "USD" || resolved.To.Code != "USD" {
			t.Fatalf("unexpected currencies: %+v", resolved)
		}
	})

	t.Run("direct pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceRepository(ctrl)
		uc := NewExchangeRateUseCase(repo)

		repo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "NGN").Return(entities.ExchangeRate{
			Pair: "USD->NGN",
			From: entities.Currency{Code: "USD", Name: "US Dollar"},
			To:   entities.Currency{Code: "NGN", Name: "Nigerian Naira"},
			Rate: 1500,
		}, nil)

		resolved, err := uc.ResolveRate(context.Background(), "USD", "NGN")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.Rate != 1500 || resolved.Inverted {
			t.Fatalf("expected direct rate 1500, got %+v", resolved)
		}
	})

	t.Run("inverse fallback uses reciprocal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceRepository(ctrl)
		uc := NewExchangeRateUseCase(repo)

		repo.EXPECT().FindExchangeRate(gomock.Any(), "NGN", "USD").Return(entities.ExchangeRate{}, nil)
		repo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "NGN").Return(entities.ExchangeRate{
			Pair: "USD->NGN",
			From: entities.Currency{Code: "USD", Name: "US Dollar"},
			To:   entities.Currency{Code: "NGN", Name: "Nigerian Naira"},
			Rate: 1500,
		}, nil)

		resolved, err := uc.ResolveRate(context.Background(), "NGN", "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resolved.Inverted {
			t.Fatalf("expected inverted resolution, got %+v", resolved)
		}
		if math.Abs(resolved.Rate-1.0/1500) > 1e-12 {
			t.Fatalf("expected reciprocal rate, got %v", resolved.Rate)
		}
		if resolved.From.Code != "NGN" || resolved.To.Code != "USD" {
			t.Fatalf("expected request orientation, got from=%s to=%s", resolved.From.Code, resolved.To.Code)
		}
	})

	t.Run("not found in either direction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceRepository(ctrl)
		uc := NewExchangeRateUseCase(repo)

		repo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "GBP").Return(entities.ExchangeRate{}, nil)
		repo.EXPECT().FindExchangeRate(gomock.Any(), "GBP", "USD").Return(entities.ExchangeRate{}, nil)

		_, err := uc.ResolveRate(context.Background(), "USD", "GBP")
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if err.Error() != "Exchange rate not found (direct or inverse)" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceRepository(ctrl)
		uc := NewExchangeRateUseCase(repo)

		repo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "GBP").Return(entities.ExchangeRate{}, errors.New("db"))

		_, err := uc.ResolveRate(context.Background(), "USD", "GBP")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestExchangeRateUseCase_Convert(t *testing.T) {
	t.Run("missing parameters", func(t *testing.T) {
		uc := NewExchangeRateUseCase(nil)

		_, err := uc.Convert(context.Background(), "USD", "", "100")
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if err.Error() != "Missing required query parameters: from, to, amount" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		uc := NewExchangeRateUseCase(nil)

		_, err := uc.Convert(context.Background(), "USD", "NGN", "abc")
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if err.Error() != "Invalid or missing numeric value for amount" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("direct conversion with rounding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceRepository(ctrl)
		uc := NewExchangeRateUseCase(repo)

		repo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "NGN").Return(entities.ExchangeRate{
			From: entities.Currency{Code: "USD"},
			To:   entities.Currency{Code: "NGN"},
			Rate: 1500,
		}, nil)

		conversion, err := uc.Convert(context.Background(), "USD", "NGN", "100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conversion.ConvertedFull != 150000 || conversion.ConvertedRound != 150000 {
			t.Fatalf("unexpected converted values: %+v", conversion)
		}
		if conversion.Amount != 100 || conversion.Rate != 1500 || conversion.Inverted {
			t.Fatalf("unexpected conversion: %+v", conversion)
		}
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceRepository(ctrl)
		uc := NewExchangeRateUseCase(repo)

		repo.EXPECT().FindExchangeRate(gomock.Any(), "NGN", "USD").Return(entities.ExchangeRate{}, nil)
		repo.EXPECT().FindExchangeRate(gomock.Any(), "USD", "NGN").Return(entities.ExchangeRate{
			From: entities.Currency{Code: "USD"},
			To:   entities.Currency{Code: "NGN"},
			Rate: 1500,
		}, nil)

		conversion, err := uc.Convert(context.Background(), "NGN", "USD", "100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 100/1500 = 0.0666... rounds to 0.07 for display.
		if conversion.ConvertedRound != 0.07 {
			t.Fatalf("expected 0.07, got %v", conversion.ConvertedRound)
		}
		if math.Abs(conversion.ConvertedFull-100.0/1500) > 1e-12 {
			t.Fatalf("expected full precision kept, got %v", conversion.ConvertedFull)
		}
		if !conversion.Inverted {
			t.Fatalf("expected inverted conversion")
		}
	})

	t.Run("identity conversion", func(t *testing.T) {
		uc := NewExchangeRateUseCase(nil)

		conversion, err := uc.Convert(context.Background(), "USD", "USD", "42.5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conversion.Rate != 1 || conversion.ConvertedFull != 42.5 {
			t.Fatalf("unexpected conversion: %+v", conversion)
		}
	})
}

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.065, 0.07},
		{0.064, 0.06},
		{-0.065, -0.07},
		{150000, 150000},
		{0.125, 0.13},
	}
	for _, tc := range cases {
		if got := roundMoney(tc.in); got != tc.want {
			t.Fatalf("roundMoney(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
