// Package config reads the process configuration from the environment once
// at startup. The resulting structs are immutable and passed by reference
// into each component's constructor.
package config

import (
	"os"

	"go-currency-conversion/rates"
)

// Engine configures the conversion engine HTTP process.
type Engine struct {
	// Port the HTTP listen port
	Port string

	// RateProvider selects the rate Service implementation, "live" or "static"
	RateProvider string

	// RateServiceURL the live rate source endpoint
	RateServiceURL string

	Toggles Toggles
}

// Bridge configures the RPC proxy process.
type Bridge struct {
	// Port the gRPC listen port
	Port string

	// EngineAddr host:port of the downstream conversion engine
	EngineAddr string

	Toggles Toggles
}

// Toggles mirrors the deployment environment's instrumentation switches.
// The agents themselves run out of process; the toggles only drive startup
// logging here.
type Toggles struct {
	DisableProfiler bool
	DisableTracing  bool
	DisableDebugger bool
}

// EngineFromEnv reads the engine configuration from the environment.
func EngineFromEnv() Engine {
	return Engine{
		Port:           envOr("PORT", "7000"),
		RateProvider:   os.Getenv("RATE_PROVIDER"),
		RateServiceURL: envOr("RATE_SERVICE_URL", rates.DefaultURL),
		Toggles:        togglesFromEnv(),
	}
}

// BridgeFromEnv reads the bridge configuration from the environment.
func BridgeFromEnv() Bridge {
	return Bridge{
		Port:       envOr("PORT", "7001"),
		EngineAddr: os.Getenv("EXT_CURRENCY_SERVICE_ADDR"),
		Toggles:    togglesFromEnv(),
	}
}

func togglesFromEnv() Toggles {
	return Toggles{
		DisableProfiler: os.Getenv("DISABLE_PROFILER") != "",
		DisableTracing:  os.Getenv("DISABLE_TRACING") != "",
		DisableDebugger: os.Getenv("DISABLE_DEBUGGER") != "",
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
