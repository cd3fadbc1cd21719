// Package orchestrator exposes the VM management surface: listing,
// placement-driven provisioning and lifecycle operations across
// registered clusters.
package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vmstack/pve-orchestrator/pkg/errs"
	"github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/enrich"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/lifecycle"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/provision"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/selector"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/telemetry"
	"github.com/vmstack/pve-orchestrator/pkg/pveclient"
)

// ClusterRegistry resolves cluster names to client handles.
// Satisfied by *registry.Registry.
type ClusterRegistry interface {
	Names() []string
	Resolve(name string) (pveclient.Client, error)
}

// Orchestrator ...
type Orchestrator struct {
	registry    ClusterRegistry
	collector   *telemetry.Collector
	provisioner *provision.Provisioner
	manager     *lifecycle.Manager
	enricher    *enrich.Enricher
}

// New ...
func New(reg ClusterRegistry, provisioner *provision.Provisioner, manager *lifecycle.Manager, enricher *enrich.Enricher) *Orchestrator {
	return &Orchestrator{
		registry:    reg,
		collector:   telemetry.NewCollector(),
		provisioner: provisioner,
		manager:     manager,
		enricher:    enricher,
	}
}

// Clusters returns the registered cluster names.
func (o *Orchestrator) Clusters() []string {
	return o.registry.Names()
}

// ListVMs scans every node of the cluster. A node whose scan fails is
// logged and skipped so one broken node does not hide the rest. Records
// are sorted by vmid, then enriched with guest agent data.
func (o *Orchestrator) ListVMs(ctx context.Context, cluster string) ([]*models.VMRecord, error) {
	cli, err := o.registry.Resolve(cluster)
	if err != nil {
		return nil, err
	}

	nodes, err := cli.ListNodes(ctx)
	if err != nil {
		return nil, &errs.RemoteOperationError{Op: "list nodes", Cluster: cluster, Err: err}
	}

	vms := make([]*models.VMRecord, 0)
	for _, node := range nodes {
		guests, err := cli.ListQemu(ctx, node.Node)
		if err != nil {
			log.CtxWarnw(ctx, "node scan failed, skipping", "cluster", cluster, "node", node.Node, "err", err)
			continue
		}
		for _, guest := range guests {
			vms = append(vms, &models.VMRecord{
				VMID:          guest.VMID,
				Name:          guest.Name,
				NodeID:        node.Node,
				ClusterName:   cluster,
				Status:        guest.Status,
				CPUPct:        guest.CPU * 100,
				MemUsedBytes:  guest.Mem,
				MemTotalBytes: guest.MaxMem,
				UptimeSeconds: guest.Uptime,
			})
		}
	}
	sort.Slice(vms, func(i, j int) bool { return vms[i].VMID < vms[j].VMID })

	o.enricher.Enrich(ctx, cli, cluster, vms)
	return vms, nil
}

// ListNodes returns the cluster nodes ranked by stress score, decorated
// with a human-readable label and their zone.
func (o *Orchestrator) ListNodes(ctx context.Context, cluster string) ([]*models.ScoredNode, error) {
	cli, err := o.registry.Resolve(cluster)
	if err != nil {
		return nil, err
	}
	snapshots, err := o.collector.Snapshot(ctx, cli)
	if err != nil {
		return nil, &errs.RemoteOperationError{Op: "list nodes", Cluster: cluster, Err: err}
	}

	ranked := selector.Rank(snapshots)
	for _, node := range ranked {
		node.Label = nodeLabel(node.NodeSnapshot)
		node.Zone = nodeZone(node.NodeID)
	}
	return ranked, nil
}

func nodeLabel(snapshot *models.NodeSnapshot) string {
	if !snapshot.Reachable {
		return fmt.Sprintf("%s (offline)", snapshot.NodeID)
	}
	const gb = float64(1 << 30)
	return fmt.Sprintf("%s (%.1f/%.1fGB, CPU:%.1f%%, VM:%d)",
		snapshot.NodeID,
		float64(snapshot.MemUsedBytes)/gb,
		float64(snapshot.MemTotalBytes)/gb,
		snapshot.CPUPct,
		snapshot.RunningVMs)
}

func nodeZone(nodeID string) string {
	if strings.Contains(strings.ToLower(nodeID), "public") {
		return "public"
	}
	return "private"
}

// CreateVM ...
func (o *Orchestrator) CreateVM(ctx context.Context, req *models.ProvisionRequest) (*models.ProvisionResult, error) {
	return o.provisioner.Provision(ctx, req)
}

// StartVM ...
func (o *Orchestrator) StartVM(ctx context.Context, cluster, node string, vmid int) error {
	return o.manager.Start(ctx, cluster, node, vmid)
}

// ShutdownVM ...
func (o *Orchestrator) ShutdownVM(ctx context.Context, cluster, node string, vmid int) error {
	return o.manager.Shutdown(ctx, cluster, node, vmid)
}

// DeleteVM ...
func (o *Orchestrator) DeleteVM(ctx context.Context, cluster, node string, vmid int) error {
	return o.manager.Delete(ctx, cluster, node, vmid)
}

// ReconfigureVM ...
func (o *Orchestrator) ReconfigureVM(ctx context.Context, req *models.ReconfigureRequest) error {
	return o.manager.Reconfigure(ctx, req)
}

// GetVMDetail ...
func (o *Orchestrator) GetVMDetail(ctx context.Context, cluster, node string, vmid int) (*models.VMDetail, error) {
	return o.manager.Detail(ctx, cluster, node, vmid)
}
