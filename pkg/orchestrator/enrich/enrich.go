// Package enrich fills VM records with guest agent data under bounded
// per-node concurrency.
package enrich

import (
	"context"
	"net"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/metrics"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
	"github.com/vmstack/pve-orchestrator/pkg/pveclient"
	clientmodels "github.com/vmstack/pve-orchestrator/pkg/pveclient/models"
)

// Enricher ...
type Enricher struct {
	opts *Options
}

// New ...
func New(opts *Options) *Enricher {
	return &Enricher{opts: opts}
}

// Enrich queries the guest agent of every running VM and fills in its
// primary IP address in place. Queries to the same node share a bounded
// semaphore; each query carries its own short timeout. A timed-out or
// failed query leaves the IP nil and never fails the listing.
func (e *Enricher) Enrich(ctx context.Context, cli pveclient.Client, cluster string, vms []*models.VMRecord) {
	sems := make(map[string]*semaphore.Weighted)
	for _, vm := range vms {
		if _, ok := sems[vm.NodeID]; !ok {
			sems[vm.NodeID] = semaphore.NewWeighted(e.opts.PerNodeConcurrency)
		}
	}

	var wg sync.WaitGroup
	for _, vm := range vms {
		if vm.Status != consts.VMRunning {
			continue
		}
		vm := vm
		sem := sems[vm.NodeID]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)
			vm.IPAddress = e.queryIP(ctx, cli, cluster, vm.NodeID, vm.VMID)
		}()
	}
	wg.Wait()
}

func (e *Enricher) queryIP(ctx context.Context, cli pveclient.Client, cluster, node string, vmid int) *string {
	queryCtx, cancel := context.WithTimeout(ctx, e.opts.QueryTimeout)
	defer cancel()

	resp, err := cli.AgentNetworkInterfaces(queryCtx, node, vmid)
	if err != nil {
		metrics.EnrichFailureTotal.WithLabelValues(cluster).Inc()
		log.CtxWarnw(ctx, "guest agent query failed", "cluster", cluster, "node", node, "vmid", vmid, "err", err)
		return nil
	}
	return primaryIP(resp.Result)
}

// primaryIP returns the first IPv4 address of the first non-loopback
// interface, nil when the guest reports none.
func primaryIP(ifaces []*clientmodels.AgentInterface) *string {
	for _, iface := range ifaces {
		if iface == nil || iface.Name == "lo" {
			continue
		}
		for _, addr := range iface.IPAddresses {
			if addr == nil || addr.Type != "ipv4" {
				continue
			}
			if ip := net.ParseIP(addr.Address); ip == nil || ip.IsLoopback() {
				continue
			}
			address := addr.Address
			return &address
		}
	}
	return nil
}
