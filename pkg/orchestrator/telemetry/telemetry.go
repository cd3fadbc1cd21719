// Package telemetry collects per-node CPU/memory/VM-count snapshots.
package telemetry

import (
	"context"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
	"github.com/vmstack/pve-orchestrator/pkg/pveclient"
)

// Collector ...
type Collector struct{}

// NewCollector ...
func NewCollector() *Collector {
	return &Collector{}
}

// Snapshot queries every node of the cluster. A per-node query failure is
// reported as an unreachable node with zero metrics rather than aborting
// the whole snapshot. The result is computed fresh on each call.
func (c *Collector) Snapshot(ctx context.Context, cli pveclient.Client) ([]*models.NodeSnapshot, error) {
	nodes, err := cli.ListNodes(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*models.NodeSnapshot, 0, len(nodes))
	for _, node := range nodes {
		snapshots = append(snapshots, c.snapshotNode(ctx, cli, node.Node))
	}
	return snapshots, nil
}

func (c *Collector) snapshotNode(ctx context.Context, cli pveclient.Client, nodeID string) *models.NodeSnapshot {
	status, err := cli.GetNodeStatus(ctx, nodeID)
	if err != nil {
		log.CtxWarnw(ctx, "node status query failed", "node", nodeID, "err", err)
		return unreachableSnapshot(nodeID)
	}

	vms, err := cli.ListQemu(ctx, nodeID)
	if err != nil {
		log.CtxWarnw(ctx, "node vm scan failed", "node", nodeID, "err", err)
		return unreachableSnapshot(nodeID)
	}

	running := 0
	for _, vm := range vms {
		if vm.Status == consts.VMRunning {
			running++
		}
	}

	snapshot := &models.NodeSnapshot{
		NodeID:     nodeID,
		CPUPct:     status.CPU * 100,
		RunningVMs: running,
		Reachable:  true,
		Status:     consts.NodeOnline,
	}
	if status.Memory != nil {
		snapshot.MemUsedBytes = status.Memory.Used
		snapshot.MemTotalBytes = status.Memory.Total
	}
	// online disposition is defined solely by cpu load
	if snapshot.CPUPct >= 100 {
		snapshot.Status = consts.NodeHighLoad
	}
	return snapshot
}

func unreachableSnapshot(nodeID string) *models.NodeSnapshot {
	return &models.NodeSnapshot{
		NodeID: nodeID,
		Status: consts.NodeOffline,
	}
}
