package service

type Metrics interface {
	ConversionDone(from, to string)
	RateUpdated(currency string)
	RateUpdateRejected()
	RatesListed()
}

type nopMetrics struct{}

func (nopMetrics) ConversionDone(_, _ string) {}
func (nopMetrics) RateUpdated(_ string) {}
func (nopMetrics) RateUpdateRejected() {}
func (nopMetrics) RatesListed() {}
