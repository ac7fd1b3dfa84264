package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	neurosoftpb "github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1"
	"github.com/ulieet/NeuroSoft/internal/async"
	"github.com/ulieet/NeuroSoft/internal/common"
	"github.com/ulieet/NeuroSoft/internal/doctext"
	"github.com/ulieet/NeuroSoft/internal/export"
	"github.com/ulieet/NeuroSoft/internal/extract"
	"github.com/ulieet/NeuroSoft/internal/importer"
	repo "github.com/ulieet/NeuroSoft/internal/repository"
	svc "github.com/ulieet/NeuroSoft/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
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
	defer db.Close(logger)

	if err := db.Ping(ctx, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	patientsRepo := repo.NewPatientRepository(db.Client, logger)
	historiesRepo := repo.NewHistoryRepository(db.Client, logger)
	filesRepo := repo.NewSourceFileRepository(db.Client, logger)

	textExtractor := doctext.New(logger)
	textExtractor.MaxFileSize = cfg.Storage.MaxFileSize
	engine := extract.NewEngine(logger)
	imp := importer.NewFSImporter(historiesRepo, patientsRepo, filesRepo, textExtractor, engine, cfg.Storage.UploadDir, logger)

	patientsService := svc.NewPatientServer(patientsRepo, logger)
	neurosoftpb.RegisterPatientsServiceServer(grpcServer, patientsService)
	historiesService := svc.NewHistoryServer(historiesRepo, logger)
	neurosoftpb.RegisterHistoriesServiceServer(grpcServer, historiesService)
	importService := svc.NewImportServer(imp, logger)
	neurosoftpb.RegisterImportServiceServer(grpcServer, importService)
	reportsService := svc.NewReportServer(historiesRepo, logger)
	neurosoftpb.RegisterReportsServiceServer(grpcServer, reportsService)
	exportService := svc.NewExportServer(export.NewService(historiesRepo, logger), logger)
	neurosoftpb.RegisterExportServiceServer(grpcServer, exportService)

	queue := async.NewImportQueue(imp, logger,
		async.WithWorkers(4),
		async.WithQueueSize(512),
		async.WithImportTimeout(2*time.Minute),
	)

	// Optional spool directory: documents dropped there are imported
	// automatically.
	if watchDir := os.Getenv("WATCH_DIR"); watchDir != "" {
		paths, watchErrs, err := importer.StartWatcher(ctx, importer.WatchConfig{
			Roots:       []string{watchDir},
			InitialScan: true,
			Debounce:    500 * time.Millisecond,
		}, logger)
		if err != nil {
			logger.Error("failed to start spool watcher", "dir", watchDir, "error", err)
			os.Exit(1)
		}
		logger.Info("watching spool directory", "dir", watchDir)
		go func() {
			for p := range paths {
				_ = queue.Enqueue(ctx, async.Job{Path: p, SubmittedAt: time.Now()})
			}
		}()
		go func() {
			for err := range watchErrs {
				logger.Warn("spool watcher error", "error", err)
			}
		}()
	}

	// gRPC health service; empty string means overall server health
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("neurosoftd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
