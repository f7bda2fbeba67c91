package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/remeha-exporter/internal/bot"
	"github.com/clambin/remeha-exporter/internal/cmd/config"
	"github.com/clambin/remeha-exporter/internal/collector"
	"github.com/clambin/remeha-exporter/internal/health"
	"github.com/clambin/remeha-exporter/internal/mqtt"
	"github.com/clambin/remeha-exporter/internal/notifier"
	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var Cmd = cobra.Command{
	Use:   "monitor",
	Short: "export Remeha Home metrics to Prometheus",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return run(ctx, viper.GetViper(), cmd.Root().Version, charmer.GetLogger(cmd))
	},
}

// A Task runs until its context is canceled.
type Task interface {
	Run(context.Context) error
}

type TaskFunc func(context.Context) error

func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

func run(ctx context.Context, cfg *viper.Viper, version string, logger *slog.Logger) error {
	logger.Info("remeha-exporter starting", "version", version)
	defer logger.Info("remeha-exporter stopped")

	remehaConfig, err := config.Remeha(cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requestMetrics := newRequestMetrics("remeha", "exporter", nil)
	registry.MustRegister(requestMetrics)
	client := remeha.New(ctx, remehaConfig, instrumentedRoundTripper(http.DefaultTransport, requestMetrics))

	g, ctx := errgroup.WithContext(ctx)
	for _, task := range makeTasks(cfg, client, registry, version, logger) {
		g.Go(func() error { return task.Run(ctx) })
	}
	return g.Wait()
}

func makeTasks(cfg *viper.Viper, source remeha.DataSource, registry *prometheus.Registry, version string, l *slog.Logger) []Task {
	var tasks []Task

	// Poller
	p := poller.New(source, cfg.GetDuration("poller.interval"), l.With("component", "poller"))
	if timeout := cfg.GetDuration("poller.timeout"); timeout > 0 {
		p.DashboardTimeout = timeout
	}
	notifiers := notifier.Notifiers{&notifier.SLogNotifier{Logger: l.With("component", "notifier")}}
	tasks = append(tasks, p)

	// Collector
	coll := &collector.Collector{Poller: p, Logger: l.With("component", "collector")}
	registry.MustRegister(coll)
	tasks = append(tasks, coll)

	// Prometheus Server
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	tasks = append(tasks, &httpServer{addr: cfg.GetString("exporter.addr"), handler: m})

	// Health Endpoint
	h := health.New(p, p, l.With("component", "health"))
	tasks = append(tasks, h, &httpServer{addr: cfg.GetString("health.addr"), handler: h.Handler()})

	// MQTT
	if broker := cfg.GetString("mqtt.broker"); broker != "" {
		tasks = append(tasks, mqttTask(p, broker, cfg.GetString("mqtt.clientID"), cfg.GetString("mqtt.prefix"), l.With("component", "mqtt")))
	}

	// Slackbot
	if token := cfg.GetString("slack.token"); token != "" {
		b := slackbot.New(
			token,
			slackbot.WithName("remehaBot "+version),
			slackbot.WithLogger(l.With(slog.String("component", "slackbot"))),
		)
		tasks = append(tasks,
			b,
			bot.New(b, p, l.With(slog.String("component", "remehabot"))),
		)
		if channel := cfg.GetString("slack.channel"); channel != "" {
			notifiers = append(notifiers, &notifier.SlackNotifier{Bot: b, Channel: channel, Logger: l.With("component", "notifier")})
		}
	}

	p.Notifier = notifiers
	return tasks
}

func mqttTask(p poller.Poller, broker, clientID, prefix string, logger *slog.Logger) Task {
	return TaskFunc(func(ctx context.Context) error {
		client, err := mqtt.Connect(broker, clientID, mqtt.DefaultTimeout, logger)
		if err != nil {
			return err
		}
		defer client.Disconnect(250)
		return mqtt.New(p, client, prefix, logger).Run(ctx)
	})
}

type httpServer struct {
	addr    string
	handler http.Handler
}

func (s *httpServer) Run(ctx context.Context) error {
	server := http.Server{Addr: s.addr, Handler: s.handler, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server %s: %w", s.addr, err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
