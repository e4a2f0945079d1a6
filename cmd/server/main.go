package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KavunVP/cafeteria/buildinfo"
	"github.com/KavunVP/cafeteria/cafeteria"
	"github.com/KavunVP/cafeteria/config"
	"github.com/KavunVP/cafeteria/cooker"
	"github.com/KavunVP/cafeteria/cron"
	"github.com/KavunVP/cafeteria/journal"
	"github.com/KavunVP/cafeteria/logging"
	"github.com/KavunVP/cafeteria/metrics"
	"github.com/KavunVP/cafeteria/server"
)

type Args struct {
	ConfigPath string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := parseArgs()

	if args.ConfigPath == "" {
		return fmt.Errorf("config flag (-c or --config) is required")
	}

	cfg, err := config.LoadConfig(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	wrapped, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Output:    cfg.Logging.Output,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := wrapped.Logger

	build := buildinfo.Get()
	logger.Info("cafeteria starting",
		"version", build.Version,
		"git_commit", build.GitCommit,
		"config_path", args.ConfigPath,
		"burners", cfg.Kitchen.Burners,
	)

	// Kitchen infrastructure.
	gc := cooker.NewGasCooker(cfg.Kitchen.Burners)
	history := journal.NewMemoryStore(cfg.Kitchen.HistorySize)
	collector := logging.NewOrderLogCollector()

	scrape, err := metrics.NewScrapeRegistry()
	if err != nil {
		return fmt.Errorf("failed to create metrics registry: %w", err)
	}
	kitchen, err := metrics.NewKitchen(scrape)
	if err != nil {
		return fmt.Errorf("failed to create kitchen metrics: %w", err)
	}

	caf := cafeteria.NewCafeteria(gc,
		cafeteria.WithLogger(logger),
		cafeteria.WithCookDurations(cfg.Kitchen.BreadCookTime, cfg.Kitchen.SausageCookTime),
		cafeteria.WithJournal(history),
		cafeteria.WithMetrics(kitchen),
		cafeteria.WithOrderLogCollector(collector),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional push-mode reporting alongside the scrape endpoint.
	if cfg.Monitoring.VictoriaMetricsURL != "" {
		if err := startReporter(ctx, cfg, caf, logger); err != nil {
			return err
		}
	}

	srvOpts := []server.Option{
		server.WithLogger(logger),
		server.WithListenAddr(cfg.Server.ListenAddr),
		server.WithOrderTimeout(cfg.Server.OrderTimeout),
		server.WithHistory(history),
		server.WithOrderLogs(collector),
		server.WithMetricsHandler(scrape.Handler()),
	}
	if cfg.Server.TLSCert != "" {
		srvOpts = append(srvOpts, server.WithTLS(cfg.Server.TLSCert, cfg.Server.TLSKey))
	}

	srv, err := server.New(caf, srvOpts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	return srv.Run(ctx)
}

// startReporter wires a scheduled kitchen snapshot push to VictoriaMetrics.
func startReporter(ctx context.Context, cfg config.Config, caf *cafeteria.Cafeteria, logger *slog.Logger) error {
	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get hostname: %w", err)
	}

	push := metrics.NewPushRegistry(metrics.PushConfig{
		URL:      cfg.Monitoring.VictoriaMetricsURL,
		Prefix:   cfg.Monitoring.MetricsPrefix,
		Job:      cfg.Monitoring.JobName,
		Instance: hostname,
	})

	reporter, err := metrics.NewReporter(push, caf, logger)
	if err != nil {
		return fmt.Errorf("failed to create metrics reporter: %w", err)
	}

	trigger, err := cron.NewCronTrigger(cfg.Monitoring.ReportSchedule, reporter, logger)
	if err != nil {
		return fmt.Errorf("failed to create report trigger: %w", err)
	}

	logger.Info("starting metrics reporter",
		"url", cfg.Monitoring.VictoriaMetricsURL,
		"schedule", cfg.Monitoring.ReportSchedule,
		"next_run", trigger.NextRun(),
	)
	trigger.Start(ctx)
	return nil
}

func parseArgs() Args {
	configPath := flag.String("config", "", "Path to config file")
	configPathShort := flag.String("c", "", "Path to config file (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCafeteria - Asynchronous Hot Dog Kitchen\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --config /etc/cafeteria/config.yaml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -c config.yaml\n", os.Args[0])
	}

	flag.Parse()

	path := *configPath
	if path == "" && *configPathShort != "" {
		path = *configPathShort
	}
	return Args{ConfigPath: path}
}
