package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"luckycasino/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const namespace = "lucky_casino"

// Metrics holds the Prometheus collectors for the bot and the file server
type Metrics struct {
	CommandsTotal       *prometheus.CounterVec
	CallbacksTotal      *prometheus.CounterVec
	WebAppPayloadsTotal prometheus.Counter
	WebAppPayloadBytes  prometheus.Histogram

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers all collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bot",
				Name:      "commands_total",
				Help:      "Total number of bot commands handled",
			},
			[]string{"command"},
		),
		CallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bot",
				Name:      "callbacks_total",
				Help:      "Total number of callback queries answered",
			},
			[]string{"recognized"},
		),
		WebAppPayloadsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bot",
				Name:      "webapp_payloads_total",
				Help:      "Total number of payloads received from the mini app",
			},
		),
		WebAppPayloadBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "bot",
				Name:      "webapp_payload_bytes",
				Help:      "Size of payloads received from the mini app",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 6), // 16B to 16KB
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "webserver",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"code", "method"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "webserver",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
	}
}

// Subscribe counts bot activity from the event bus
func (m *Metrics) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeCommandHandled, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.CommandHandledEvent); ok {
			m.CommandsTotal.WithLabelValues(e.Command).Inc()
		}
	})
	bus.Subscribe(events.EventTypeCallbackAnswered, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.CallbackAnsweredEvent); ok {
			m.CallbacksTotal.WithLabelValues(strconv.FormatBool(e.Recognized)).Inc()
		}
	})
	bus.Subscribe(events.EventTypeWebAppDataReceived, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.WebAppDataReceivedEvent); ok {
			m.WebAppPayloadsTotal.Inc()
			m.WebAppPayloadBytes.Observe(float64(len(e.Payload)))
		}
	})
}

// InstrumentHandler wraps next with request count and latency collection
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.HTTPRequestDuration,
		promhttp.InstrumentHandlerCounter(m.HTTPRequestsTotal, next))
}

// Handler exposes the collectors gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve runs a /metrics listener on addr until ctx is cancelled
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Metrics server shutdown error: %v", err)
		}
	}()

	log.Infof("Metrics listening on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
