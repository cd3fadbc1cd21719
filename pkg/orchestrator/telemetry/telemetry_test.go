package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/onsi/gomega"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/pveclient/fake"
	clientmodels "github.com/vmstack/pve-orchestrator/pkg/pveclient/models"
)

func TestSnapshot(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fakeClient := fake.NewFakeClient(ctrl)
	fakeClient.EXPECT().ListNodes(gomock.Any()).Return([]*clientmodels.Node{
		{Node: "pve-01"}, {Node: "pve-02"},
	}, nil)
	fakeClient.EXPECT().GetNodeStatus(gomock.Any(), "pve-01").Return(&clientmodels.NodeStatus{
		CPU:    0.8,
		Memory: &clientmodels.NodeMemory{Used: 8 << 30, Total: 16 << 30},
	}, nil)
	fakeClient.EXPECT().ListQemu(gomock.Any(), "pve-01").Return([]*clientmodels.QemuVM{
		{VMID: 101, Status: consts.VMRunning},
		{VMID: 102, Status: consts.VMStopped},
		{VMID: 103, Status: consts.VMRunning},
	}, nil)
	fakeClient.EXPECT().GetNodeStatus(gomock.Any(), "pve-02").Return(nil, errors.New("connection refused"))

	snapshots, err := NewCollector().Snapshot(context.Background(), fakeClient)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(snapshots).To(gomega.HaveLen(2))

	g.Expect(snapshots[0].NodeID).To(gomega.Equal("pve-01"))
	g.Expect(snapshots[0].Reachable).To(gomega.BeTrue())
	g.Expect(snapshots[0].CPUPct).To(gomega.BeNumerically("~", 80.0))
	g.Expect(snapshots[0].MemPct()).To(gomega.BeNumerically("~", 50.0))
	g.Expect(snapshots[0].RunningVMs).To(gomega.Equal(2))
	g.Expect(snapshots[0].Status).To(gomega.Equal(consts.NodeOnline))

	// failed node reported unreachable with zero metrics, snapshot not aborted
	g.Expect(snapshots[1].NodeID).To(gomega.Equal("pve-02"))
	g.Expect(snapshots[1].Reachable).To(gomega.BeFalse())
	g.Expect(snapshots[1].CPUPct).To(gomega.BeZero())
	g.Expect(snapshots[1].Status).To(gomega.Equal(consts.NodeOffline))
}

func TestSnapshotHighLoadLabel(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fakeClient := fake.NewFakeClient(ctrl)
	fakeClient.EXPECT().ListNodes(gomock.Any()).Return([]*clientmodels.Node{{Node: "pve-01"}}, nil)
	fakeClient.EXPECT().GetNodeStatus(gomock.Any(), "pve-01").Return(&clientmodels.NodeStatus{CPU: 1.0}, nil)
	fakeClient.EXPECT().ListQemu(gomock.Any(), "pve-01").Return(nil, nil)

	snapshots, err := NewCollector().Snapshot(context.Background(), fakeClient)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(snapshots[0].Status).To(gomega.Equal(consts.NodeHighLoad))
	// high load alone does not make a node unreachable
	g.Expect(snapshots[0].Reachable).To(gomega.BeTrue())
}

func TestSnapshotListNodesFailure(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fakeClient := fake.NewFakeClient(ctrl)
	fakeClient.EXPECT().ListNodes(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := NewCollector().Snapshot(context.Background(), fakeClient)
	g.Expect(err).To(gomega.HaveOccurred())
}
