package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricSdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"faultline.dev/pkg/faultline/version"
)

// PrometheusMeter builds a meter backed by the Prometheus exporter, so
// pipeline counters show up on the default Prometheus registry.
func PrometheusMeter(appName, appVersion string) metric.Meter {
	exporter, err := prometheus.New(prometheus.WithoutTargetInfo())
	if err != nil {
		return nil
	}

	meter := metricSdk.NewMeterProvider(
		metricSdk.WithReader(exporter),
		metricSdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(appName),
			attribute.String("faultline_version", version.Framework),
		))).Meter(appName, metric.WithInstrumentationVersion(appVersion))

	return meter
}

// Handler exposes the Prometheus scrape endpoint for the default
// registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
