package selector

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/vmstack/pve-orchestrator/pkg/errs"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
)

func reachable(id string, cpuPct float64, memUsed, memTotal int64, running int) *models.NodeSnapshot {
	return &models.NodeSnapshot{
		NodeID:        id,
		CPUPct:        cpuPct,
		MemUsedBytes:  memUsed,
		MemTotalBytes: memTotal,
		RunningVMs:    running,
		Reachable:     true,
	}
}

func unreachable(id string) *models.NodeSnapshot {
	return &models.NodeSnapshot{NodeID: id}
}

func TestStressScoreScenario(t *testing.T) {
	g := gomega.NewWithT(t)

	// N1(cpu=80, mem=80%, vms=10) vs N2(cpu=10, mem=10%, vms=1)
	n1 := reachable("n1", 80, 80, 100, 10)
	n2 := reachable("n2", 10, 10, 100, 1)
	g.Expect(StressScore(n1)).To(gomega.BeNumerically("~", 161.0))
	g.Expect(StressScore(n2)).To(gomega.BeNumerically("~", 20.1))

	selected, err := Select("cluster-a", []*models.NodeSnapshot{n1, n2})
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(selected.NodeID).To(gomega.Equal("n2"))
}

func TestStressScoreMonotonic(t *testing.T) {
	g := gomega.NewWithT(t)

	base := reachable("n", 50, 50, 100, 5)
	baseScore := StressScore(base)

	moreCPU := reachable("n", 60, 50, 100, 5)
	g.Expect(StressScore(moreCPU)).To(gomega.BeNumerically(">", baseScore))

	moreMem := reachable("n", 50, 60, 100, 5)
	g.Expect(StressScore(moreMem)).To(gomega.BeNumerically(">", baseScore))

	moreVMs := reachable("n", 50, 50, 100, 6)
	g.Expect(StressScore(moreVMs)).To(gomega.BeNumerically(">", baseScore))
}

func TestSelectNeverPicksUnreachable(t *testing.T) {
	g := gomega.NewWithT(t)

	// unreachable node scores 0, still must lose to any reachable node
	snapshots := []*models.NodeSnapshot{
		unreachable("n-down"),
		reachable("n-busy", 99, 99, 100, 30),
	}
	selected, err := Select("cluster-a", snapshots)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(selected.NodeID).To(gomega.Equal("n-busy"))
}

func TestSelectNoAvailableNodes(t *testing.T) {
	g := gomega.NewWithT(t)

	_, err := Select("cluster-a", nil)
	g.Expect(errs.IsNoAvailableNodes(err)).To(gomega.BeTrue())

	_, err = Select("cluster-a", []*models.NodeSnapshot{unreachable("n1"), unreachable("n2")})
	g.Expect(errs.IsNoAvailableNodes(err)).To(gomega.BeTrue())
}

func TestRankStableTieBreak(t *testing.T) {
	g := gomega.NewWithT(t)

	a := reachable("a", 10, 10, 100, 0)
	b := reachable("b", 10, 10, 100, 0)
	down := unreachable("z")

	ranked := Rank([]*models.NodeSnapshot{down, a, b})
	g.Expect(ranked[0].NodeID).To(gomega.Equal("a"))
	g.Expect(ranked[1].NodeID).To(gomega.Equal("b"))
	g.Expect(ranked[2].NodeID).To(gomega.Equal("z"))
}
