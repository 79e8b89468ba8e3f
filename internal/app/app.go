package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/shopcart/internal/health"
	"github.com/vladislavdragonenkov/shopcart/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/shopcart/internal/service/outbox"
	"github.com/vladislavdragonenkov/shopcart/internal/transport/httpapi"
	"github.com/vladislavdragonenkov/shopcart/internal/version"
)

// Run поднимает REST API, сервер метрик и outbox worker, затем блокируется
// до отмены ctx либо фатальной ошибки HTTP-сервера.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := NewDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	// Kafka опционален: без брокеров события остаются в outbox со статусом pending.
	kafkaProducer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err != nil {
		logger.WithError(err).Warn("continuing without kafka")
	}
	defer closeKafka(kafkaProducer, logger)

	if kafkaProducer != nil {
		publisher := kafka.NewOutboxPublisher(kafkaProducer, kafka.TopicOrderEvents)
		dlqPublisher := kafka.NewOutboxPublisher(kafkaProducer, kafka.TopicDeadLetterQueue)
		worker := outbox.NewWorker(
			deps.Outbox,
			publisher,
			outbox.WithLogger(logger.WithField("component", "outbox-worker")),
			outbox.WithDLQPublisher(dlqPublisher),
		)
		go worker.Run(ctx)
	}

	v, _, _ := version.Info()
	healthHandler := healthcheck.NewHandler(v)
	healthHandler.RegisterChecker("storage", deps.StorageChecker)

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	apiServer := httpapi.NewServer(
		deps.Catalog,
		deps.CartSvc,
		deps.Checkout,
		deps.CustomerSvc,
		deps.Tokens,
		logger.WithField("component", "http-server"),
	)
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: apiServer.Engine()}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(httpSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
