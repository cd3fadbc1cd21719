// Package provision drives the multi-step VM create state machine with
// compensating rollback on partial failure.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/errs"
	"github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/metrics"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/selector"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/telemetry"
	"github.com/vmstack/pve-orchestrator/pkg/pveclient"
	clientmodels "github.com/vmstack/pve-orchestrator/pkg/pveclient/models"
	"github.com/vmstack/pve-orchestrator/pkg/taskq"
)

// ClientResolver resolves a cluster name to its client handle.
// Satisfied by *registry.Registry.
type ClientResolver interface {
	Resolve(name string) (pveclient.Client, error)
}

// Provisioner ...
type Provisioner struct {
	opts      *Options
	registry  ClientResolver
	collector *telemetry.Collector
	executor  taskq.Executor
}

// New ...
func New(opts *Options, reg ClientResolver, executor taskq.Executor) *Provisioner {
	return &Provisioner{
		opts:      opts,
		registry:  reg,
		collector: telemetry.NewCollector(),
		executor:  executor,
	}
}

// Provision creates a VM: allocate id, clone template, reconfigure,
// resize disk, schedule a deferred start. Any fatal failure at or after
// id allocation triggers a best-effort stop+delete rollback; the caller
// always receives the original fatal error. Disk resize and the deferred
// start are best-effort and never fail the provision.
func (p *Provisioner) Provision(ctx context.Context, req *models.ProvisionRequest) (*models.ProvisionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cli, err := p.registry.Resolve(req.ClusterName)
	if err != nil {
		return nil, err
	}

	snapshots, err := p.collector.Snapshot(ctx, cli)
	if err != nil {
		return nil, &errs.RemoteOperationError{Op: "list nodes", Cluster: req.ClusterName, Err: err}
	}
	target, err := selector.Select(req.ClusterName, snapshots)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = "vm-" + uuid.New().String()[:8]
	}

	result, err := p.provisionOnNode(ctx, cli, req, target, name)
	if err != nil {
		metrics.ProvisionTotal.WithLabelValues(req.ClusterName, "failure").Inc()
		return nil, err
	}
	metrics.ProvisionTotal.WithLabelValues(req.ClusterName, "success").Inc()
	return result, nil
}

func (p *Provisioner) provisionOnNode(ctx context.Context, cli pveclient.Client, req *models.ProvisionRequest, target *models.ScoredNode, name string) (*models.ProvisionResult, error) {
	cluster, node := req.ClusterName, target.NodeID

	// nothing has been mutated yet, no rollback on failure here
	vmid, err := cli.NextID(ctx)
	if err != nil {
		return nil, &errs.RemoteOperationError{Op: "allocate vmid", Cluster: cluster, Node: node, Err: err}
	}
	log.CtxInfow(ctx, "allocated vmid", "cluster", cluster, "node", node, "vmid", vmid, "name", name)

	if err := p.cloneFromTemplate(ctx, cli, node, vmid, name); err != nil {
		p.rollback(ctx, cluster, node, vmid)
		return nil, &errs.RemoteOperationError{Op: "clone template", Cluster: cluster, Node: node, VMID: vmid, Err: err}
	}

	if err := cli.ConfigureQemu(ctx, p.configureRequest(req, node, vmid)); err != nil {
		p.rollback(ctx, cluster, node, vmid)
		return nil, &errs.RemoteOperationError{Op: "configure vm", Cluster: cluster, Node: node, VMID: vmid, Err: err}
	}

	// disk resize is best-effort relative to vm usability: a failure must
	// never roll back an otherwise-successful provision
	if err := cli.ResizeQemuDisk(ctx, &clientmodels.ResizeQemuDiskRequest{
		Node: node,
		VMID: vmid,
		Disk: consts.PrimaryDisk,
		Size: fmt.Sprintf("%dG", req.DiskGB),
	}); err != nil {
		log.CtxWarnw(ctx, "disk resize failed, continuing", "cluster", cluster, "node", node, "vmid", vmid, "err", err)
	}

	p.scheduleStart(cluster, node, vmid)

	return &models.ProvisionResult{
		VMID:        vmid,
		Name:        name,
		NodeID:      node,
		ClusterName: cluster,
		Selection: &models.SelectionMetadata{
			NodeID:      node,
			StressScore: target.StressScore,
			Candidates:  len(p.opts.TemplateIDs),
		},
	}, nil
}

// cloneFromTemplate tries template candidates in priority order, advancing
// only on a not-found class of failure.
func (p *Provisioner) cloneFromTemplate(ctx context.Context, cli pveclient.Client, node string, vmid int, name string) error {
	var lastErr error
	for _, templateID := range p.opts.TemplateIDs {
		err := cli.CloneQemu(ctx, &clientmodels.CloneQemuRequest{
			Node:       node,
			TemplateID: templateID,
			NewID:      vmid,
			Name:       name,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, pveclient.ErrNotFound) {
			return err
		}
		log.CtxWarnw(ctx, "template not found, trying next candidate", "node", node, "template", templateID, "err", err)
		lastErr = err
	}
	return fmt.Errorf("all template candidates exhausted: %w", lastErr)
}

func (p *Provisioner) configureRequest(req *models.ProvisionRequest, node string, vmid int) *clientmodels.ConfigureQemuRequest {
	configure := &clientmodels.ConfigureQemuRequest{
		Node:       node,
		VMID:       vmid,
		Cores:      req.CPUCores,
		MemoryMB:   req.MemoryMB,
		CPU:        req.CPUModel,
		Agent:      p.opts.Agent,
		CICustom:   req.CICustom,
		CIUser:     req.CIUser,
		CIPassword: req.CIPassword,
		IPConfig0:  req.IPConfig0,
	}
	if req.Agent != nil {
		configure.Agent = *req.Agent
	}
	if configure.CPU == "" {
		configure.CPU = p.opts.CPUModel
	}
	if configure.CICustom == "" {
		configure.CICustom = p.opts.CICustom
	}
	if configure.CIUser == "" {
		configure.CIUser = p.opts.CIUser
	}
	if configure.CIPassword == "" {
		configure.CIPassword = p.opts.CIPassword
	}
	if configure.IPConfig0 == "" {
		configure.IPConfig0 = p.opts.IPConfig0
	}
	return configure
}

// scheduleStart enqueues the deferred power-on after the settle delay so
// the hypervisor finishes materializing the clone first. Fire-and-forget:
// failures are logged and never affect the already-returned result.
func (p *Provisioner) scheduleStart(cluster, node string, vmid int) {
	p.executor.Defer(p.opts.SettleDelay, fmt.Sprintf("start-vm-%d", vmid), func() {
		ctx := context.Background()
		cli, err := p.registry.Resolve(cluster)
		if err != nil {
			log.CtxErrorw(ctx, "deferred start cannot resolve cluster", "cluster", cluster, "vmid", vmid, "err", err)
			return
		}
		if err := cli.StartQemu(ctx, node, vmid); err != nil {
			log.CtxErrorw(ctx, "deferred start failed", "cluster", cluster, "node", node, "vmid", vmid, "err", err)
			return
		}
		log.CtxInfow(ctx, "vm auto-started", "cluster", cluster, "node", node, "vmid", vmid)
	})
}

// rollback attempts stop then delete on the allocated vmid. Both calls are
// independently best-effort; failures are logged and never mask the
// original fatal error. The client handle is re-resolved through the
// registry, matching the idempotent resolve contract.
func (p *Provisioner) rollback(ctx context.Context, cluster, node string, vmid int) {
	metrics.RollbackTotal.WithLabelValues(cluster).Inc()
	log.CtxInfow(ctx, "rolling back failed provision", "cluster", cluster, "node", node, "vmid", vmid)

	cli, err := p.registry.Resolve(cluster)
	if err != nil {
		log.CtxErrorw(ctx, "rollback cannot resolve cluster", "cluster", cluster, "vmid", vmid, "err", err)
		return
	}
	if err := cli.StopQemu(ctx, node, vmid); err != nil {
		log.CtxWarnw(ctx, "rollback stop failed", "cluster", cluster, "node", node, "vmid", vmid, "err", err)
	}
	if err := cli.DeleteQemu(ctx, node, vmid); err != nil {
		log.CtxWarnw(ctx, "rollback delete failed", "cluster", cluster, "node", node, "vmid", vmid, "err", err)
	}
}
