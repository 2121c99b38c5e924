package service

import (
	"context"

	"github.com/langowen/converter/internal/entities"
)

type Storage interface {
	GetRate(ctx context.Context, code string) (*entities.ExchangeRate, error)
	GetAllRates(ctx context.Context) ([]entities.ExchangeRate, error)
	ExistsRate(ctx context.Context, code string) (bool, error)
	SaveRate(ctx context.Context, rate *entities.ExchangeRate) error
}
