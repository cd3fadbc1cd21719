// Package server binds the orchestration surface to HTTP.
package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vmstack/pve-orchestrator/pkg/healthz"
	applog "github.com/vmstack/pve-orchestrator/pkg/log"
)

// Run ...
func Run(opts *Options, svc Service) {
	mux := NewHandler(svc).Mux()
	mux.HandleFunc("GET "+opts.HealthzPath, healthz.Handler)
	mux.Handle("GET "+opts.MetricsPath, promhttp.Handler())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", opts.Port), mux); err != nil {
		applog.Fatalw("Failed to start HTTP server", "err", err)
	}
}
