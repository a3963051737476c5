// Package api assembles the HTTP server of the service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"riverqueue.com/riverui"

	"wcagrep/internal/api/handler/v1handler"
	"wcagrep/internal/config"
	"wcagrep/pkg/controller"
	"wcagrep/pkg/logger"
)

//go:embed specs/v1.yaml
var v1Spec []byte

const (
	// RiverUIPrefix serves the job queue dashboard.
	RiverUIPrefix = "/riverui"
	// healthPath is left out of traces.
	healthPath = "/api/health"
)

// Options are the listener and routing settings of the server. Zero
// durations keep the net/http defaults.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	// WriteTimeout is cleared by the websocket route once it hijacks.
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// RequestTimeout bounds every handler except the event stream.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	MetricsPath    string
	AllowedOrigins []string
	// TrustProxyHeaders rewrites the peer address from forwarding headers.
	TrustProxyHeaders bool
}

func NewOptions(cfg *config.Config) Options {
	h := cfg.HTTP

	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		Addr:              h.Addr,
		ReadTimeout:       h.ReadTimeout,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		WriteTimeout:      h.WriteTimeout,
		IdleTimeout:       h.IdleTimeout,
		RequestTimeout:    h.RequestTimeout,
		MaxHeaderBytes:    h.MaxHeaderBytes,
		MetricsPath:       h.MetricsPath,
		AllowedOrigins:    h.AllowedOrigins,
		TrustProxyHeaders: h.TrustProxyHeaders,
	}
}

type Deps struct {
	v1handler.Deps

	// Track records API usage per route. Nil disables tracking.
	Track func(http.Handler) http.Handler
	// River serves the job queue dashboard when set.
	River *river.Client[pgx.Tx]
}

// NewServer builds the HTTP server: the v1 API and its documentation,
// Prometheus metrics, and pprof plus the river dashboard for authenticated
// operators. ctx bounds the dashboard's background work.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions, deps.CRM)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	r := chi.NewRouter()
	if opts.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer, controller.WithLogger, controller.CORS(opts.AllowedOrigins))
	r.Use(middleware.Compress(5, "application/json", "text/html", "text/css", "application/yaml"))
	if deps.Track != nil {
		r.Use(deps.Track)
	}

	r.Handle(opts.MetricsPath, promhttp.Handler())
	mountDocs(r)
	v1handler.New(deps.Deps).Routes(r, secHandler.Middleware)

	r.Group(func(r chi.Router) {
		r.Use(secHandler.Middleware)
		r.Handle(controller.PprofPrefix+"*", controller.PprofMux())
		if deps.River != nil {
			err = mountRiverUI(ctx, r, deps.River)
		}
	})
	if err != nil {
		return nil, err
	}

	handler, err := instrument(withTimeout(r, opts.RequestTimeout, v1handler.EventsPath), opts.MetricsPath)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func mountDocs(r chi.Router) {
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Handle("/v1/docs/*", v5emb.New("wcagrep API", "/specs/v1.yaml", "/v1/docs/"))
}

func mountRiverUI(ctx context.Context, r chi.Router, client *river.Client[pgx.Tx]) error {
	ui, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    logger.Slog(logger.Named(ctx, "riverui")),
		Prefix:    RiverUIPrefix,
	})
	if err != nil {
		return fmt.Errorf("could not create river ui: %w", err)
	}
	if err := ui.Start(ctx); err != nil {
		return fmt.Errorf("could not start river ui: %w", err)
	}
	r.Handle(RiverUIPrefix, ui)
	r.Handle(RiverUIPrefix+"/*", ui)

	return nil
}

// instrument records OpenTelemetry spans and HTTP metrics, the latter
// exported through the Prometheus registry. Health checks and scrapes are
// left out.
func instrument(next http.Handler, metricsPath string) (http.Handler, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return otelhttp.NewHandler(next, "http.server",
		otelhttp.WithMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != healthPath && r.URL.Path != metricsPath
		}),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithPublicEndpointFn(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, controller.PprofPrefix)
		}),
	), nil
}

// withTimeout bounds every request by d except those to the streaming paths,
// which http.TimeoutHandler cannot hijack. A zero d disables the timeout.
func withTimeout(next http.Handler, d time.Duration, streaming ...string) http.Handler {
	if d <= 0 {
		return next
	}

	limited := http.TimeoutHandler(next, d, `{"error":"request timed out","code":"TIMEOUT"}`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range streaming {
			if r.URL.Path == p {
				next.ServeHTTP(w, r)

				return
			}
		}
		limited.ServeHTTP(w, r)
	})
}
