package main

import (
	"fmt"
	"net"
	"os"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"
	"go-currency-conversion/bridge"
	"go-currency-conversion/config"
	"go-currency-conversion/internal/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if err := godotenv.Load(); err != nil {
		logger.Log("msg", "no .env file loaded", "err", err)
	}
	cfg := config.BridgeFromEnv()
	logToggles(logger, cfg.Toggles)

	if cfg.EngineAddr == "" {
		logger.Log("msg", "EXT_CURRENCY_SERVICE_ADDR is required")
		os.Exit(1)
	}

	engine := bridge.NewClient(fmt.Sprintf("http://%v", cfg.EngineAddr))
	service := bridge.NewService(engine, log.With(logger, "component", "bridge"))

	server := grpc.NewServer()
	pb.RegisterCurrencyServiceServer(server, bridge.NewGRPCServer(service))

	// Liveness only: always SERVING, independent of downstream health.
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.Log("msg", "listening failed", "port", cfg.Port, "err", err)
		os.Exit(1)
	}

	logger.Log("msg", "starting grpc server", "port", cfg.Port)
	if err := server.Serve(listener); err != nil {
		logger.Log("msg", "grpc server failed", "err", err)
		os.Exit(1)
	}
}

func logToggles(logger log.Logger, t config.Toggles) {
	logger.Log("msg", "instrumentation toggles",
		"profiler_disabled", t.DisableProfiler,
		"tracing_disabled", t.DisableTracing,
		"debugger_disabled", t.DisableDebugger,
	)
}
