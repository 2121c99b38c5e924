package prometheus

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "converter"

// Metrics counts session activity on its own registry; nothing is exposed over the network.
type Metrics struct {
	registry      *prometheus.Registry
	conversions   *prometheus.CounterVec
	rateUpdates   *prometheus.CounterVec
	rejected      prometheus.Counter
	listings      prometheus.Counter
	invalidInputs *prometheus.CounterVec
}

func New() (*Metrics, error) {
	const op = "metrics.prometheus.New"

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Completed conversions by source and target currency.",
		}, []string{"from", "to"}),
		rateUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_updates_total",
			Help:      "Applied rate updates by currency.",
		}, []string{"currency"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_updates_rejected_total",
			Help:      "Rate updates rejected by validation.",
		}),
		listings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listings_total",
			Help:      "Rate table listings rendered.",
		}),
		invalidInputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_inputs_total",
			Help:      "Reprompts caused by invalid user input, by kind.",
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{m.conversions, m.rateUpdates, m.rejected, m.listings, m.invalidInputs} {
		if err := m.registry.Register(c); err != nil {
			return nil, errors.Wrap(err, op)
		}
	}

	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ConversionDone(from, to string) {
	m.conversions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) RateUpdated(currency string) {
	m.rateUpdates.WithLabelValues(currency).Inc()
}

func (m *Metrics) RateUpdateRejected() {
	m.rejected.Inc()
}

func (m *Metrics) RatesListed() {
	m.listings.Inc()
}

func (m *Metrics) InvalidInput(kind string) {
	m.invalidInputs.WithLabelValues(kind).Inc()
}

// LogSummary writes one record per metric family with its summed counter value.
func (m *Metrics) LogSummary(logger *slog.Logger) error {
	const op = "metrics.prometheus.LogSummary"

	families, err := m.registry.Gather()
	if err != nil {
		return errors.Wrap(err, op)
	}

	for _, family := range families {
		var total float64
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		logger.Info("Session metric", "name", family.GetName(), "value", total)
	}

	return nil
}
