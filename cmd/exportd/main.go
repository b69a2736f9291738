package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/calebmartins/exportq/constants"
	v1 "github.com/calebmartins/exportq/gen/proto/exportq/v1"
	"github.com/calebmartins/exportq/internal/audit"
	"github.com/calebmartins/exportq/internal/common"
	"github.com/calebmartins/exportq/internal/export"
	"github.com/calebmartins/exportq/internal/exporter"
	"github.com/calebmartins/exportq/internal/observability"
	"github.com/calebmartins/exportq/internal/payload"
	repo "github.com/calebmartins/exportq/internal/repository"
	"github.com/calebmartins/exportq/internal/scheduler"
	svc "github.com/calebmartins/exportq/internal/server"
)

func main() {
	logger := observability.NewLogger()
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Job history persistence: Postgres when DB_URL is set, SQLite when
	// SQLITE_PATH is set, in-memory only otherwise.
	sinks := audit.Multi{audit.NewSlogSink(logger)}
	switch {
	case cfg.Database.DSN != "":
		entc, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, pool, logger)
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		jobsRepo := repo.NewExportJobRepository(entc, logger)
		sinks = append(sinks, repo.NewHistorySink(jobsRepo, logger))

	case cfg.Database.SQLitePath != "":
		entc, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, nil, logger)
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("failed to migrate sqlite schema", "error", err)
			os.Exit(1)
		}
		jobsRepo := repo.NewExportJobRepository(entc, logger)
		sinks = append(sinks, repo.NewHistorySink(jobsRepo, logger))

	default:
		logger.Warn("no DB_URL or SQLITE_PATH set; job history is in-memory only")
	}

	// Rendering engine. Without EXPORT_ENGINE_URL jobs are echoed back,
	// which keeps local runs useful.
	var engine scheduler.Engine
	if cfg.Engine.URL != "" {
		engine = exporter.NewHTTPEngine(cfg.Engine.URL, cfg.Engine.Timeout, exporter.WithHTTPLogger(logger))
	} else {
		logger.Warn("EXPORT_ENGINE_URL not set; using echo engine")
		engine = scheduler.EngineFunc(func(_ context.Context, p json.RawMessage) (json.RawMessage, error) {
			return p, nil
		})
	}

	schema, err := payload.CompileSchema(payload.BuildRequestJSONSchema(constants.ExportFormats()))
	if err != nil {
		logger.Error("failed to compile payload schema", "error", err)
		os.Exit(1)
	}

	manager := scheduler.New(scheduler.ConfigFromCommon(cfg.Scheduler), engine,
		scheduler.WithLogger(logger),
		scheduler.WithAuditSink(sinks),
		scheduler.WithPayloadValidator(payload.Validator(schema)),
	)
	timed := scheduler.NewTimedScheduler(manager, logger)

	observability.StartMetricsServer(cfg.Server.MetricsAddr)
	logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	reportSvc := export.NewService(manager, logger)
	v1.RegisterExportQueueServiceServer(grpcServer, svc.NewExportQueueService(manager, timed, reportSvc, logger))

	logger.Info("exportd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	timed.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := manager.Shutdown(shutdownCtx); err != nil {
		logger.Warn("scheduler shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
}
