package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"
	"go-currency-conversion/config"
	"go-currency-conversion/convert"
	"go-currency-conversion/dataset"
	"go-currency-conversion/http"
	"go-currency-conversion/rates"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if err := godotenv.Load(); err != nil {
		logger.Log("msg", "no .env file loaded", "err", err)
	}
	cfg := config.EngineFromEnv()
	logToggles(logger, cfg.Toggles)

	supported, err := dataset.SupportedCurrencies()
	if err != nil {
		logger.Log("msg", "loading supported currencies failed", "err", err)
		os.Exit(1)
	}

	rateService, err := rates.NewFromConfig(cfg.RateProvider, cfg.RateServiceURL)
	if err != nil {
		logger.Log("msg", "building rate provider failed", "err", err)
		os.Exit(1)
	}
	rateService = rates.NewLoggingService(log.With(logger, "component", "rates"), rateService)

	convertService := convert.NewService(rateService, supported)
	convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	handler := http.NewServer(convertService, log.With(logger, "component", "http"))

	logger.Log("msg", "starting http server", "port", cfg.Port)
	if err := nhttp.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Log("msg", "http server failed", "err", err)
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
