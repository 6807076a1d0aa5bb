package tracing

import (
	"fmt"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

// HoneycombSetup configures the OpenTelemetry SDK via the honeycomb distro.
// The returned function shuts the tracing pipeline down and is safe to call
// even when tracing is disabled.
func HoneycombSetup(tracingEnabled bool, serviceName string) (func(), error) {
	if !tracingEnabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure open telemetry: %w", err)
	}

	log.Debugln("honeycomb tracing set up")

	return otelShutdown, nil
}
