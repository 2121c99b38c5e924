package service

import (
	"context"
	"log/slog"

	"github.com/langowen/converter/internal/entities"
	"github.com/pkg/errors"
)

type Service struct {
	storage Storage
	metrics Metrics
}

func NewService(storage Storage, metrics Metrics) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Service{
		storage: storage,
		metrics: metrics,
	}
}

// Convert pivots through USD: amount / rate[from] * rate[to].
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	const op = "service.Convert"

	if amount < 0 {
		return 0, errors.Wrap(entities.ErrInvalidArgument, "amount must not be negative")
	}

	fromRate, err := s.storage.GetRate(ctx, from)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	toRate, err := s.storage.GetRate(ctx, to)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	amountInBase := amount / fromRate.Rate
	result := amountInBase * toRate.Rate

	s.metrics.ConversionDone(from, to)
	slog.Debug("Converted", "amount", amount, "from", from, "to", to, "result", result)

	return result, nil
}

// ExchangeRate returns the unit rate rate[to] / rate[from], used for display only.
func (s *Service) ExchangeRate(ctx context.Context, from, to string) (float64, error) {
	const op = "service.ExchangeRate"

	fromRate, err := s.storage.GetRate(ctx, from)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	toRate, err := s.storage.GetRate(ctx, to)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	return toRate.Rate / fromRate.Rate, nil
}

// ListRates returns every rate sorted by code, with display names resolved.
func (s *Service) ListRates(ctx context.Context) ([]entities.CurrencyRate, error) {
	const op = "service.ListRates"

	rates, err := s.storage.GetAllRates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	result := make([]entities.CurrencyRate, len(rates))
	for i, rate := range rates {
		result[i] = entities.CurrencyRate{
			ExchangeRate: rate,
			Name:         entities.CurrencyName(rate.Code),
		}
	}

	s.metrics.RatesListed()

	return result, nil
}

// UpdateRate overwrites the rate of an existing currency.
// A non-positive rate yields ErrInvalidArgument and leaves the table untouched.
func (s *Service) UpdateRate(ctx context.Context, code string, rate float64) error {
	const op = "service.UpdateRate"

	newRate, err := entities.NewRate(code, rate)
	if err != nil {
		s.metrics.RateUpdateRejected()
		return err
	}

	if err := s.storage.SaveRate(ctx, newRate); err != nil {
		s.metrics.RateUpdateRejected()
		return errors.Wrap(err, op)
	}

	s.metrics.RateUpdated(code)
	slog.Info("Rate updated", "currency", code, "rate", rate)

	return nil
}

func (s *Service) Exists(ctx context.Context, code string) (bool, error) {
	const op = "service.Exists"

	ok, err := s.storage.ExistsRate(ctx, code)
	if err != nil {
		return false, errors.Wrap(err, op)
	}

	return ok, nil
}

// Codes returns all supported currency codes in ascending order.
func (s *Service) Codes(ctx context.Context) ([]string, error) {
	const op = "service.Codes"

	rates, err := s.storage.GetAllRates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	codes := make([]string, len(rates))
	for i, rate := range rates {
		codes[i] = rate.Code
	}

	return codes, nil
}
