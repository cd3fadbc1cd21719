package metrics

import (
	"context"

	"github.com/vmstack/pve-orchestrator/pkg/crontab"
	"github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/selector"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/telemetry"
	"github.com/vmstack/pve-orchestrator/pkg/registry"
)

// RegisterSweeper registers a cron job refreshing the node stress gauges
// for every configured cluster. The sweep only feeds observability; node
// selection always re-reads live telemetry.
func RegisterSweeper(opts *Options, reg *registry.Registry) error {
	if !opts.SweepEnabled {
		return nil
	}
	collector := telemetry.NewCollector()
	return crontab.RegisterCron(opts.SweepPeriod, func() {
		ctx := context.Background()
		for _, cluster := range reg.Names() {
			sweepCluster(ctx, collector, reg, cluster)
		}
	})
}

func sweepCluster(ctx context.Context, collector *telemetry.Collector, reg *registry.Registry, cluster string) {
	cli, err := reg.Resolve(cluster)
	if err != nil {
		log.CtxWarnw(ctx, "stress sweep cannot resolve cluster", "cluster", cluster, "err", err)
		return
	}
	snapshots, err := collector.Snapshot(ctx, cli)
	if err != nil {
		log.CtxWarnw(ctx, "stress sweep snapshot failed", "cluster", cluster, "err", err)
		return
	}
	for _, snapshot := range snapshots {
		NodeStressScore.WithLabelValues(cluster, snapshot.NodeID).Set(selector.StressScore(snapshot))
	}
}
