package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/onsi/gomega"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/errs"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
	"github.com/vmstack/pve-orchestrator/pkg/utils"
)

type stubService struct {
	clusters []string

	listVMsCluster string
	vms            []*models.VMRecord
	nodes          []*models.ScoredNode

	createReq    *models.ProvisionRequest
	createResult *models.ProvisionResult
	createErr    error

	controlCluster string
	controlNode    string
	controlVMID    int
	controlErr     error

	reconfigureReq *models.ReconfigureRequest

	detail    *models.VMDetail
	detailErr error
}

func (s *stubService) Clusters() []string { return s.clusters }

func (s *stubService) ListVMs(_ context.Context, cluster string) ([]*models.VMRecord, error) {
	s.listVMsCluster = cluster
	return s.vms, nil
}

func (s *stubService) ListNodes(_ context.Context, cluster string) ([]*models.ScoredNode, error) {
	return s.nodes, nil
}

func (s *stubService) CreateVM(_ context.Context, req *models.ProvisionRequest) (*models.ProvisionResult, error) {
	s.createReq = req
	return s.createResult, s.createErr
}

func (s *stubService) StartVM(_ context.Context, cluster, node string, vmid int) error {
	s.controlCluster, s.controlNode, s.controlVMID = cluster, node, vmid
	return s.controlErr
}

func (s *stubService) ShutdownVM(_ context.Context, cluster, node string, vmid int) error {
	s.controlCluster, s.controlNode, s.controlVMID = cluster, node, vmid
	return s.controlErr
}

func (s *stubService) DeleteVM(_ context.Context, cluster, node string, vmid int) error {
	s.controlCluster, s.controlNode, s.controlVMID = cluster, node, vmid
	return s.controlErr
}

func (s *stubService) ReconfigureVM(_ context.Context, req *models.ReconfigureRequest) error {
	s.reconfigureReq = req
	return nil
}

func (s *stubService) GetVMDetail(_ context.Context, cluster, node string, vmid int) (*models.VMDetail, error) {
	return s.detail, s.detailErr
}

func serve(svc Service, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	NewHandler(svc).Mux().ServeHTTP(recorder, req)
	return recorder
}

func TestRootReportsClusters(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{clusters: []string{"cluster-a", "cluster-b"}}

	recorder := serve(svc, http.MethodGet, "/", "")
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))

	var body map[string]any
	g.Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(gomega.Succeed())
	g.Expect(body["service"]).To(gomega.Equal(consts.Component))
	g.Expect(body["clusters"]).To(gomega.HaveLen(2))
}

func TestListVMsDefaultsToFirstCluster(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{
		clusters: []string{"cluster-a", "cluster-b"},
		vms: []*models.VMRecord{
			{VMID: 101, Name: "vm-a", Status: consts.VMRunning, IPAddress: utils.Point("10.0.0.1")},
		},
	}

	recorder := serve(svc, http.MethodGet, "/api/vms", "")
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
	g.Expect(svc.listVMsCluster).To(gomega.Equal("cluster-a"))

	var body struct {
		VMs   []*models.VMRecord `json:"vms"`
		Total int                `json:"total"`
	}
	g.Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(gomega.Succeed())
	g.Expect(body.Total).To(gomega.Equal(1))
	g.Expect(*body.VMs[0].IPAddress).To(gomega.Equal("10.0.0.1"))
}

func TestListVMsClusterParam(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{clusters: []string{"cluster-a", "cluster-b"}}

	recorder := serve(svc, http.MethodGet, "/api/vms?cluster=cluster-b", "")
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
	g.Expect(svc.listVMsCluster).To(gomega.Equal("cluster-b"))
}

func TestCreateVM(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{
		clusters: []string{"cluster-a"},
		createResult: &models.ProvisionResult{
			VMID: 105, Name: "vm-ab12cd34", NodeID: "pve-01", ClusterName: "cluster-a",
		},
	}

	recorder := serve(svc, http.MethodPost, "/api/vm/create",
		`{"cpu_cores": 2, "memory_mb": 2048, "disk_gb": 20}`)
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusCreated))
	g.Expect(svc.createReq.ClusterName).To(gomega.Equal("cluster-a"))
	g.Expect(svc.createReq.CPUCores).To(gomega.Equal(2))

	var body struct {
		Status string                  `json:"status"`
		VM     *models.ProvisionResult `json:"vm"`
	}
	g.Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(gomega.Succeed())
	g.Expect(body.Status).To(gomega.Equal("created"))
	g.Expect(body.VM.VMID).To(gomega.Equal(105))
}

func TestCreateVMErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &errs.ValidationError{Field: "memory_mb", Reason: "too small"}, http.StatusBadRequest},
		{"unknown cluster", &errs.UnknownClusterError{Cluster: "nope"}, http.StatusNotFound},
		{"no nodes", &errs.NoAvailableNodesError{Cluster: "cluster-a"}, http.StatusServiceUnavailable},
		{"remote", &errs.RemoteOperationError{Op: "clone template", Cluster: "cluster-a", Err: errors.New("boom")}, http.StatusBadGateway},
		{"connection", &errs.ConnectionError{Cluster: "cluster-a", Err: errors.New("refused")}, http.StatusBadGateway},
		{"other", errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			svc := &stubService{clusters: []string{"cluster-a"}, createErr: tt.err}

			recorder := serve(svc, http.MethodPost, "/api/vm/create",
				`{"cpu_cores": 2, "memory_mb": 2048, "disk_gb": 20}`)
			g.Expect(recorder.Code).To(gomega.Equal(tt.code))

			var body map[string]string
			g.Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(gomega.Succeed())
			g.Expect(body["error"]).NotTo(gomega.BeEmpty())
		})
	}
}

func TestControlEndpoints(t *testing.T) {
	for _, target := range []string{"/api/vm/start", "/api/vm/shutdown", "/api/vm/delete"} {
		t.Run(target, func(t *testing.T) {
			g := gomega.NewWithT(t)
			svc := &stubService{clusters: []string{"cluster-a"}}

			recorder := serve(svc, http.MethodPost, target, `{"node": "pve-01", "vmid": 101}`)
			g.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			g.Expect(svc.controlCluster).To(gomega.Equal("cluster-a"))
			g.Expect(svc.controlNode).To(gomega.Equal("pve-01"))
			g.Expect(svc.controlVMID).To(gomega.Equal(101))
		})
	}
}

func TestControlRejectsMissingTarget(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{clusters: []string{"cluster-a"}}

	recorder := serve(svc, http.MethodPost, "/api/vm/start", `{"vmid": 101}`)
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
}

func TestReconfigure(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{clusters: []string{"cluster-a"}}

	recorder := serve(svc, http.MethodPost, "/api/vm/config",
		`{"node_id": "pve-01", "vmid": 101, "cpu_cores": 4, "memory_mb": 4096, "disk_gb": 40}`)
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
	g.Expect(svc.reconfigureReq.ClusterName).To(gomega.Equal("cluster-a"))
	g.Expect(svc.reconfigureReq.CPUCores).To(gomega.Equal(4))
}

func TestVMDetail(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{
		clusters: []string{"cluster-a"},
		detail: &models.VMDetail{
			VMID: 101, NodeID: "pve-01", Status: consts.VMRunning,
			IPAddress: utils.Point("10.0.0.7"),
		},
	}

	recorder := serve(svc, http.MethodGet, "/api/nodes/pve-01/101", "")
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))

	var detail models.VMDetail
	g.Expect(json.Unmarshal(recorder.Body.Bytes(), &detail)).To(gomega.Succeed())
	g.Expect(detail.VMID).To(gomega.Equal(101))
	g.Expect(*detail.IPAddress).To(gomega.Equal("10.0.0.7"))
}

func TestVMDetailBadVMID(t *testing.T) {
	g := gomega.NewWithT(t)
	svc := &stubService{clusters: []string{"cluster-a"}}

	recorder := serve(svc, http.MethodGet, "/api/nodes/pve-01/abc", "")
	g.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
}
