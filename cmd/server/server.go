package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/bh2e-sheets/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/bh2e-sheets/internal/i18n"
	sheetorchestrator "github.com/KirkDiggler/bh2e-sheets/internal/orchestrators/sheet"
	"github.com/KirkDiggler/bh2e-sheets/internal/pkg/clock"
	"github.com/KirkDiggler/bh2e-sheets/internal/pkg/idgen"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/chat"
)

var (
	grpcPort    int
	metricsPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the sheet gRPC server with its metrics endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides BH2E_GRPC_PORT")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "Metrics port, overrides BH2E_METRICS_PORT")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if metricsPort != 0 {
		cfg.MetricsPort = metricsPort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	// Chat messages are announced on the toolkit bus; the server only logs them
	bus := events.NewBus()
	bus.SubscribeFunc(chat.EventChatMessage, 0, func(_ context.Context, event events.Event) error {
		slog.Debug("Chat message posted",
			"event", event.Type(),
			"message_id", event.Source().GetID(),
		)
		return nil
	})

	chatService, err := chat.NewService(&chat.Config{
		Repository:  st.chat,
		EventBus:    bus,
		IDGenerator: idgen.NewUUID("msg"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create chat service: %w", err)
	}

	translator, err := i18n.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	orchestrator, err := sheetorchestrator.New(&sheetorchestrator.Config{
		ActorRepo:   st.actors,
		DiceRoller:  rpgtoolkit.NewRoller(nil),
		ChatService: chatService,
		Translator:  translator,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService: orchestrator,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()
	go func() {
		slog.Info("Metrics server starting", "port", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve metrics: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers")
	case err := <-errChan:
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Metrics server shutdown failed", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
