package cli

import (
	"context"

	"github.com/langowen/converter/internal/entities"
)

type Service interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
	ExchangeRate(ctx context.Context, from, to string) (float64, error)
	ListRates(ctx context.Context) ([]entities.CurrencyRate, error)
	UpdateRate(ctx context.Context, code string, rate float64) error
	Exists(ctx context.Context, code string) (bool, error)
	Codes(ctx context.Context) ([]string, error)
}

type Metrics interface {
	InvalidInput(kind string)
}

type nopMetrics struct{}

func (nopMetrics) InvalidInput(_ string) {}
