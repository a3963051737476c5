package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcagrep/internal/agents"
	"wcagrep/internal/api"
	"wcagrep/internal/api/handler/v1handler"
	"wcagrep/internal/config"
	"wcagrep/internal/crm"
	"wcagrep/internal/discovery"
	"wcagrep/internal/events"
	"wcagrep/internal/mockup"
	"wcagrep/internal/monitor"
	"wcagrep/internal/outreach"
	"wcagrep/internal/prompts"
	"wcagrep/internal/report"
	"wcagrep/internal/scanner"
	"wcagrep/internal/triggers"
	"wcagrep/internal/worker"
	"wcagrep/pkg/browser"
	"wcagrep/pkg/browser/httpfetch"
	"wcagrep/pkg/browser/rodfetch"
	"wcagrep/pkg/controller"
	"wcagrep/pkg/llm"
	"wcagrep/pkg/llm/claude"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/mailer"
	"wcagrep/pkg/metrics"
	"wcagrep/pkg/storage/postgres"
)

// outboundTimeout bounds webhook deliveries and searches.
const outboundTimeout = 30 * time.Second

// services are shared by the API server and the workers of one process.
type services struct {
	pool     *browser.Pool
	llm      llm.Completer
	mailer   mailer.Sender
	scanner  scanner.Scanner
	reports  *report.Generator
	outreach outreach.Outreach
	agents   *agents.Runner
}

func setupServices(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL,
	m *metrics.Metrics, publisher events.Publisher) *services {
	pool, err := browser.NewPool(m,
		browser.Slot{
			Name: httpfetch.Name,
			Backend: httpfetch.New(&http.Client{}, httpfetch.Options{
				UserAgent:    cfg.Browser.UserAgent,
				MaxPageBytes: cfg.Browser.MaxPageBytes,
				Timeout:      cfg.Browser.HTTP.Timeout,
			}),
			Enabled:    cfg.Browser.HTTP.Enabled,
			Concurrent: cfg.Browser.HTTP.Concurrent,
			DailyLimit: cfg.Browser.HTTP.DailyLimit,
		},
		browser.Slot{
			Name: rodfetch.Name,
			Backend: rodfetch.New(rodfetch.Options{
				ControlURL: cfg.Browser.Headless.ControlURL,
				Bin:        cfg.Browser.Headless.Bin,
				UserAgent:  cfg.Browser.UserAgent,
				Timeout:    cfg.Browser.Headless.Timeout,
			}),
			Enabled:    cfg.Browser.Headless.Enabled,
			Concurrent: cfg.Browser.Headless.Concurrent,
			DailyLimit: cfg.Browser.Headless.DailyLimit,
		},
	)
	if err != nil {
		logger.Fatal(ctx, "could not create browser pool", zap.Error(err))
	}

	s := &services{pool: pool}

	// both stay nil interfaces when not configured
	if cfg.LLM.APIKey != "" {
		s.llm = claude.New(claude.Options{
			APIKey:     cfg.LLM.APIKey,
			Model:      cfg.LLM.Model,
			MaxTokens:  cfg.LLM.MaxTokens,
			HTTPClient: &http.Client{Timeout: cfg.LLM.Timeout},
			MaxRetries: 2,
		})
	} else {
		logger.Info(ctx, "no llm api key configured, using templates only")
	}
	if cfg.Outreach.SMTP.Host != "" {
		smtp, err := mailer.New(mailer.Options{
			Host:     cfg.Outreach.SMTP.Host,
			Port:     cfg.Outreach.SMTP.Port,
			Username: cfg.Outreach.SMTP.Username,
			Password: cfg.Outreach.SMTP.Password,
			FromName: cfg.Outreach.SenderName,
			From:     cfg.Outreach.SenderAddress,
			Timeout:  outboundTimeout,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create mailer", zap.Error(err))
		}
		s.mailer = smtp
	} else {
		logger.Warn(ctx, "no smtp host configured, outreach emails will not be delivered")
	}

	s.scanner = scanner.New(strg, pool, publisher, m, scanner.NewOptions(cfg))
	s.reports = report.New(cfg.Files.ReportsDir)
	s.outreach = outreach.New(strg, outreach.NewGenerator(s.llm), s.reports, s.mailer, publisher, m, outreach.NewOptions(cfg))
	s.agents = agents.NewRunner(strg, s.scanner, s.reports, agents.NewOptions(cfg))

	return s
}

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL,
	m *metrics.Metrics, s *services) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
		Storage:   strg,
		Scanner:   s.scanner,
		Deliverer: triggers.NewDeliverer(&http.Client{Timeout: outboundTimeout}, s.mailer, m),
		Agents:    s.agents,
	}, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started")

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, m *metrics.Metrics,
	s *services, hub *events.Hub, riverClient *river.Client[pgx.Tx]) func(ctx context.Context) {
	quickWin := controller.NewRateLimiter(cfg.RateLimit.QuickWinWindow, cfg.RateLimit.QuickWinMax)
	agentTrigger := controller.NewRateLimiter(cfg.RateLimit.AgentTriggerWindow, cfg.RateLimit.AgentTriggerMax)
	usage := monitor.NewUsageTracker(m)
	searchClient := &http.Client{Timeout: outboundTimeout}

	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			CRM:      crm.New(strg),
			Scanner:  s.scanner,
			Outreach: s.outreach,
			Agents:   s.agents,
			Discovery: discovery.New(strg,
				discovery.NewHTMLSearcher(searchClient, cfg.Discovery.SearchURL, cfg.Browser.UserAgent),
				s.llm,
				discovery.NewOptions(cfg)),
			Health:            monitor.NewHealthChecker(&http.Client{Timeout: cfg.Monitor.Timeout}, monitor.NewHealthOptions(cfg)),
			Usage:             usage,
			Mockups:           mockup.New(strg, s.llm, cfg.Files.MockupsDir),
			Reports:           s.reports,
			Prompts:           prompts.NewRunner(s.llm),
			Backends:          s.pool,
			Events:            hub.Subscribe,
			QuickWinLimit:     quickWin.Middleware,
			AgentTriggerLimit: agentTrigger.Middleware,
			Environment:       cfg.Environment,
		},
		Track: usage.Middleware,
		River: riverClient,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		quickWin.Close()
		agentTrigger.Close()
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			apiOnly, _ := cmd.Flags().GetBool("api-only")
			workersOnly, _ := cmd.Flags().GetBool("workers-only")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if apiOnly && workersOnly {
				logger.Fatal(ctx, "--api-only and --workers-only are mutually exclusive")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			m := metrics.New(prometheus.DefaultRegisterer)

			hub := events.NewHub()
			go hub.Run(ctx)

			s := setupServices(ctx, cfg, strg, m, hub)
			defer func() {
				if err := s.pool.Close(); err != nil {
					logger.Warn(ctx, "could not close browser backends", zap.Error(err))
				}
			}()

			var (
				riverClient   *river.Client[pgx.Tx]
				stopWorkers   = func(context.Context) {}
				stopWebserver = func(context.Context) {}
			)
			if !apiOnly {
				riverClient, stopWorkers = setupWorkers(ctx, cfg, strg, m, s)
			} else {
				var err error
				if riverClient, err = worker.NewInsertOnlyClient(ctx, strg.Pool); err != nil {
					logger.Fatal(ctx, "could not create river client", zap.Error(err))
				}
			}
			if !workersOnly {
				stopWebserver = setupServer(ctx, cfg, strg, m, s, hub, riverClient)
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	cmd.Flags().Bool("api-only", false, "Only serve the API, without background workers")
	cmd.Flags().Bool("workers-only", false, "Only run the background workers, without the API")

	return cmd
}
