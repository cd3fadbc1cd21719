// Package lifecycle implements power, reconfigure, delete and detail
// operations on existing VMs.
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/errs"
	"github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/enrich"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
	"github.com/vmstack/pve-orchestrator/pkg/pveclient"
	clientmodels "github.com/vmstack/pve-orchestrator/pkg/pveclient/models"
)

// ClientResolver resolves a cluster name to its client handle.
// Satisfied by *registry.Registry.
type ClientResolver interface {
	Resolve(name string) (pveclient.Client, error)
}

// Manager ...
type Manager struct {
	opts     *Options
	registry ClientResolver
	enricher *enrich.Enricher
}

// New ...
func New(opts *Options, reg ClientResolver, enricher *enrich.Enricher) *Manager {
	return &Manager{
		opts:     opts,
		registry: reg,
		enricher: enricher,
	}
}

// Start ...
func (m *Manager) Start(ctx context.Context, cluster, node string, vmid int) error {
	cli, err := m.registry.Resolve(cluster)
	if err != nil {
		return err
	}
	if err := cli.StartQemu(ctx, node, vmid); err != nil {
		return &errs.RemoteOperationError{Op: "start vm", Cluster: cluster, Node: node, VMID: vmid, Err: err}
	}
	log.CtxInfow(ctx, "vm started", "cluster", cluster, "node", node, "vmid", vmid)
	return nil
}

// Shutdown issues a graceful guest shutdown, not a hard stop.
func (m *Manager) Shutdown(ctx context.Context, cluster, node string, vmid int) error {
	cli, err := m.registry.Resolve(cluster)
	if err != nil {
		return err
	}
	if err := cli.ShutdownQemu(ctx, node, vmid); err != nil {
		return &errs.RemoteOperationError{Op: "shutdown vm", Cluster: cluster, Node: node, VMID: vmid, Err: err}
	}
	log.CtxInfow(ctx, "vm shutdown requested", "cluster", cluster, "node", node, "vmid", vmid)
	return nil
}

// Reconfigure resizes cpu and memory, then grows the primary disk.
// Bounds are validated before any remote call.
func (m *Manager) Reconfigure(ctx context.Context, req *models.ReconfigureRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	cli, err := m.registry.Resolve(req.ClusterName)
	if err != nil {
		return err
	}

	if err := cli.ConfigureQemu(ctx, &clientmodels.ConfigureQemuRequest{
		Node:     req.NodeID,
		VMID:     req.VMID,
		Cores:    req.CPUCores,
		MemoryMB: req.MemoryMB,
	}); err != nil {
		return &errs.RemoteOperationError{Op: "reconfigure vm", Cluster: req.ClusterName, Node: req.NodeID, VMID: req.VMID, Err: err}
	}

	if err := cli.ResizeQemuDisk(ctx, &clientmodels.ResizeQemuDiskRequest{
		Node: req.NodeID,
		VMID: req.VMID,
		Disk: consts.PrimaryDisk,
		Size: fmt.Sprintf("%dG", req.DiskGB),
	}); err != nil {
		return &errs.RemoteOperationError{Op: "resize disk", Cluster: req.ClusterName, Node: req.NodeID, VMID: req.VMID, Err: err}
	}
	log.CtxInfow(ctx, "vm reconfigured", "cluster", req.ClusterName, "node", req.NodeID, "vmid", req.VMID,
		"cores", req.CPUCores, "memoryMB", req.MemoryMB, "diskGB", req.DiskGB)
	return nil
}

// Delete removes a VM. A running VM is stopped first and given a settle
// delay before deletion. The status pre-check is best-effort: when it
// fails the status is treated as unknown and deletion proceeds directly.
func (m *Manager) Delete(ctx context.Context, cluster, node string, vmid int) error {
	cli, err := m.registry.Resolve(cluster)
	if err != nil {
		return err
	}

	status := consts.VMUnknown
	if current, err := cli.GetQemuStatus(ctx, node, vmid); err != nil {
		log.CtxWarnw(ctx, "status pre-check failed, treating status as unknown", "cluster", cluster, "node", node, "vmid", vmid, "err", err)
	} else {
		status = current.Status
	}

	if status == consts.VMRunning {
		if err := cli.StopQemu(ctx, node, vmid); err != nil {
			return &errs.RemoteOperationError{Op: "stop vm", Cluster: cluster, Node: node, VMID: vmid, Err: err}
		}
		if err := m.settle(ctx); err != nil {
			return err
		}
	}

	if err := cli.DeleteQemu(ctx, node, vmid); err != nil {
		return &errs.RemoteOperationError{Op: "delete vm", Cluster: cluster, Node: node, VMID: vmid, Err: err}
	}
	log.CtxInfow(ctx, "vm deleted", "cluster", cluster, "node", node, "vmid", vmid)
	return nil
}

func (m *Manager) settle(ctx context.Context) error {
	if m.opts.StopSettleDelay == 0 {
		return nil
	}
	timer := time.NewTimer(m.opts.StopSettleDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Detail returns the live status of one VM. The status read is fatal;
// the guest agent network read is best-effort.
func (m *Manager) Detail(ctx context.Context, cluster, node string, vmid int) (*models.VMDetail, error) {
	cli, err := m.registry.Resolve(cluster)
	if err != nil {
		return nil, err
	}

	status, err := cli.GetQemuStatus(ctx, node, vmid)
	if err != nil {
		return nil, &errs.RemoteOperationError{Op: "get vm status", Cluster: cluster, Node: node, VMID: vmid, Err: err}
	}

	detail := &models.VMDetail{
		VMID:          vmid,
		NodeID:        node,
		ClusterName:   cluster,
		Status:        status.Status,
		CPUPct:        status.CPU * 100,
		MemUsedBytes:  status.Mem,
		MemTotalBytes: status.MaxMem,
		UptimeSeconds: status.Uptime,
	}

	if status.Status == consts.VMRunning {
		record := &models.VMRecord{VMID: vmid, NodeID: node, Status: status.Status}
		m.enricher.Enrich(ctx, cli, cluster, []*models.VMRecord{record})
		detail.IPAddress = record.IPAddress
	}
	return detail, nil
}
