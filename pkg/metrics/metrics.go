// Package metrics exposes the orchestrator's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pve_orchestrator"

var (
	// ProvisionTotal counts provisioning attempts by outcome.
	ProvisionTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provision_total",
		Help:      "Number of VM provisioning attempts by result.",
	}, []string{"cluster", "result"})

	// RollbackTotal counts compensating rollback sequences.
	RollbackTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rollback_total",
		Help:      "Number of compensating rollbacks after failed provisions.",
	}, []string{"cluster"})

	// EnrichFailureTotal counts guest agent queries that timed out or errored.
	EnrichFailureTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrich_failure_total",
		Help:      "Number of guest agent network queries that timed out or failed.",
	}, []string{"cluster"})

	// NodeStressScore is the last swept stress score per node.
	NodeStressScore = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "node_stress_score",
		Help:      "Composite placement stress score per node; lower is better.",
	}, []string{"cluster", "node"})
)

func init() {
	prometheus.MustRegister(ProvisionTotal, RollbackTotal, EnrichFailureTotal, NodeStressScore)
}
