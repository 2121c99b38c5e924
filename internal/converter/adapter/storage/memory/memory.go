package memory

import (
	"context"
	"log/slog"
	"sort"

	"github.com/langowen/converter/internal/entities"
	"github.com/pkg/errors"
)

// Storage is the rate table. It is owned by a single session and is not safe for concurrent use.
type Storage struct {
	rates map[string]float64
}

// New returns a table seeded with the default rates.
func New() *Storage {
	return &Storage{rates: entities.DefaultRates()}
}

// NewWithRates builds a table from rates, rejecting an empty table or any invalid entry.
func NewWithRates(rates map[string]float64) (*Storage, error) {
	const op = "storage.memory.NewWithRates"

	if len(rates) == 0 {
		return nil, errors.Wrap(entities.ErrEmptyRates, op)
	}

	table := make(map[string]float64, len(rates))
	for code, rate := range rates {
		if err := (entities.ExchangeRate{Code: code, Rate: rate}).Validate(); err != nil {
			return nil, errors.Wrap(err, op)
		}
		table[code] = rate
	}

	return &Storage{rates: table}, nil
}

func (s *Storage) GetRate(_ context.Context, code string) (*entities.ExchangeRate, error) {
	const op = "storage.memory.GetRate"

	rate, ok := s.rates[code]
	if !ok {
		return nil, errors.Wrapf(entities.ErrNotFound, "%s: %s", op, code)
	}

	return &entities.ExchangeRate{Code: code, Rate: rate}, nil
}

// GetAllRates returns every entry sorted by code ascending.
func (s *Storage) GetAllRates(_ context.Context) ([]entities.ExchangeRate, error) {
	rates := make([]entities.ExchangeRate, 0, len(s.rates))
	for code, rate := range s.rates {
		rates = append(rates, entities.ExchangeRate{Code: code, Rate: rate})
	}

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Code < rates[j].Code
	})

	return rates, nil
}

func (s *Storage) ExistsRate(_ context.Context, code string) (bool, error) {
	_, ok := s.rates[code]
	return ok, nil
}

// SaveRate overwrites the rate of an existing code. Unknown codes are never inserted.
func (s *Storage) SaveRate(_ context.Context, rate *entities.ExchangeRate) error {
	const op = "storage.memory.SaveRate"

	if err := rate.Validate(); err != nil {
		return errors.Wrap(err, op)
	}

	old, ok := s.rates[rate.Code]
	if !ok {
		return errors.Wrapf(entities.ErrNotFound, "%s: %s", op, rate.Code)
	}

	s.rates[rate.Code] = rate.Rate

	slog.Debug("Rate updated", "currency", rate.Code, "old", old, "new", rate.Rate)

	return nil
}
