// Package selector picks a placement node from live telemetry.
package selector

import (
	"sort"

	"github.com/vmstack/pve-orchestrator/pkg/errs"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
)

// StressScore combines CPU%, memory% and running VM count. Lower is better.
func StressScore(snapshot *models.NodeSnapshot) float64 {
	return snapshot.CPUPct + snapshot.MemPct() + float64(snapshot.RunningVMs)/10
}

// Rank returns the snapshots scored and ordered for placement: ascending
// stress score, unreachable nodes last regardless of score. The sort is
// stable so equal scores keep snapshot order.
func Rank(snapshots []*models.NodeSnapshot) []*models.ScoredNode {
	ranked := make([]*models.ScoredNode, 0, len(snapshots))
	for _, snapshot := range snapshots {
		ranked = append(ranked, &models.ScoredNode{
			NodeSnapshot: snapshot,
			StressScore:  StressScore(snapshot),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Reachable != ranked[j].Reachable {
			return ranked[i].Reachable
		}
		return ranked[i].StressScore < ranked[j].StressScore
	})
	return ranked
}

// Select returns the least stressed reachable node. It fails with
// NoAvailableNodes when the snapshot is empty or every node is
// unreachable; provisioning must abort before any remote mutation.
func Select(cluster string, snapshots []*models.NodeSnapshot) (*models.ScoredNode, error) {
	ranked := Rank(snapshots)
	if len(ranked) == 0 || !ranked[0].Reachable {
		return nil, &errs.NoAvailableNodesError{Cluster: cluster}
	}
	return ranked[0], nil
}
