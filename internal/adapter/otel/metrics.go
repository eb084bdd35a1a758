package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "sitekit"

// Metrics holds all sitekit metric instruments.
type Metrics struct {
	SiteLoads            metric.Int64Counter
	SiteLoadFailures     metric.Int64Counter
	SiteCacheHits        metric.Int64Counter
	AppointmentsReceived metric.Int64Counter
	AppointmentsFailed   metric.Int64Counter
	SubmitDuration       metric.Float64Histogram
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.SiteLoads, err = meter.Int64Counter("sitekit.site.loads",
		metric.WithDescription("Number of tenant site loads"))
	if err != nil {
		return nil, err
	}

	m.SiteLoadFailures, err = meter.Int64Counter("sitekit.site.load_failures",
		metric.WithDescription("Number of tenant site loads that failed to resolve a clinic"))
	if err != nil {
		return nil, err
	}

	m.SiteCacheHits, err = meter.Int64Counter("sitekit.site.cache_hits",
		metric.WithDescription("Number of site loads served from the L1 cache"))
	if err != nil {
		return nil, err
	}

	m.AppointmentsReceived, err = meter.Int64Counter("sitekit.appointments.received",
		metric.WithDescription("Number of booking submissions persisted"))
	if err != nil {
		return nil, err
	}

	m.AppointmentsFailed, err = meter.Int64Counter("sitekit.appointments.failed",
		metric.WithDescription("Number of booking submissions rejected or failed"))
	if err != nil {
		return nil, err
	}

	m.SubmitDuration, err = meter.Float64Histogram("sitekit.appointments.submit_seconds",
		metric.WithDescription("Booking submission duration in seconds"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
