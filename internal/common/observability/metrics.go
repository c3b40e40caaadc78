package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider      *metric.MeterProvider
	meter              otelmetric.Meter
	validationCounter  otelmetric.Int64Counter
	validationDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	validationCounter, _ := meter.Int64Counter(
		"decisions.validated",
		otelmetric.WithDescription("Number of decision notice validation passes"),
	)

	validationDuration, _ := meter.Float64Histogram(
		"decisions.duration",
		otelmetric.WithDescription("Decision validation duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:      provider,
		meter:              meter,
		validationCounter:  validationCounter,
		validationDuration: validationDuration,
	}
}

// RecordValidation counts one validation pass per benefit and outcome
// ("valid", "invalid" or "failed").
func (o *Observability) RecordValidation(ctx context.Context, benefitCode, outcome string) {
	if o.validationCounter != nil {
		o.validationCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("benefitCode", benefitCode),
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordValidationDuration(ctx context.Context, duration time.Duration, benefitCode string) {
	if o.validationDuration != nil {
		o.validationDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("benefitCode", benefitCode),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
