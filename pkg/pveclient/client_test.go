package pveclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/vmstack/pve-orchestrator/pkg/pveclient/models"
)

func TestClient(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "pve client")
}

var fakeEndpoint = "https://pve-a.example.com:8006"
var fakeClient = NewClient(&Options{
	Endpoint:   fakeEndpoint,
	User:       "orchestrator@pve",
	TokenName:  "api",
	TokenValue: "secret",
	Timeout:    5 * time.Second,
})

var _ = ginkgo.BeforeSuite(func() {
	httpmock.ActivateNonDefault(fakeClient.(*impl).cli)
})
var _ = ginkgo.AfterSuite(func() {
	httpmock.DeactivateAndReset()
})
var _ = ginkgo.AfterEach(func() {
	httpmock.Reset()
})

func dataResponder(data interface{}) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(200, map[string]interface{}{"data": data})
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return responder
}

var _ = ginkgo.It("ListNodes", func() {
	httpmock.RegisterResponder(http.MethodGet, fmt.Sprintf("%s%s/nodes", fakeEndpoint, apiPrefix),
		dataResponder([]*models.Node{{Node: "pve-01", Status: "online"}, {Node: "pve-02", Status: "online"}}))
	resp, err := fakeClient.ListNodes(context.Background())
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(resp).To(gomega.HaveLen(2))
	gomega.Expect(resp[0].Node).To(gomega.Equal("pve-01"))
})

var _ = ginkgo.It("GetNodeStatus", func() {
	httpmock.RegisterResponder(http.MethodGet, fmt.Sprintf("%s%s/nodes/pve-01/status", fakeEndpoint, apiPrefix),
		dataResponder(&models.NodeStatus{
			CPU:    0.42,
			Memory: &models.NodeMemory{Used: 1 << 30, Total: 4 << 30},
		}))
	resp, err := fakeClient.GetNodeStatus(context.Background(), "pve-01")
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(resp.CPU).To(gomega.BeNumerically("~", 0.42))
	gomega.Expect(resp.Memory.Total).To(gomega.Equal(int64(4 << 30)))
})

var _ = ginkgo.It("ListQemu", func() {
	httpmock.RegisterResponder(http.MethodGet, fmt.Sprintf("%s%s/nodes/pve-01/qemu", fakeEndpoint, apiPrefix),
		dataResponder([]*models.QemuVM{{VMID: 101, Name: "vm-aaaa", Status: "running", Uptime: 3600}}))
	resp, err := fakeClient.ListQemu(context.Background(), "pve-01")
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(resp).To(gomega.HaveLen(1))
	gomega.Expect(resp[0].VMID).To(gomega.Equal(101))
})

var _ = ginkgo.It("NextID", func() {
	// proxmox returns the id as a string
	httpmock.RegisterResponder(http.MethodGet, fmt.Sprintf("%s%s/cluster/nextid", fakeEndpoint, apiPrefix),
		dataResponder("105"))
	id, err := fakeClient.NextID(context.Background())
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(id).To(gomega.Equal(105))
})

var _ = ginkgo.It("CloneQemu", func() {
	var body string
	httpmock.RegisterResponder(http.MethodPost, fmt.Sprintf("%s%s/nodes/pve-01/qemu/9000/clone", fakeEndpoint, apiPrefix),
		func(req *http.Request) (*http.Response, error) {
			raw, _ := io.ReadAll(req.Body)
			body = string(raw)
			gomega.Expect(req.Header.Get("Content-Type")).To(gomega.Equal("application/x-www-form-urlencoded"))
			gomega.Expect(req.Header.Get("Authorization")).To(gomega.Equal("PVEAPIToken=orchestrator@pve!api=secret"))
			return httpmock.NewJsonResponse(200, map[string]interface{}{"data": "UPID:pve-01:xxx"})
		})
	err := fakeClient.CloneQemu(context.Background(), &models.CloneQemuRequest{
		Node:       "pve-01",
		TemplateID: 9000,
		NewID:      105,
		Name:       "vm-aaaa",
	})
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(body).To(gomega.Equal("name=vm-aaaa&newid=105"))
})

var _ = ginkgo.It("ConfigureQemu skips zero fields", func() {
	var body string
	httpmock.RegisterResponder(http.MethodPost, fmt.Sprintf("%s%s/nodes/pve-01/qemu/105/config", fakeEndpoint, apiPrefix),
		func(req *http.Request) (*http.Response, error) {
			raw, _ := io.ReadAll(req.Body)
			body = string(raw)
			return httpmock.NewJsonResponse(200, map[string]interface{}{"data": nil})
		})
	err := fakeClient.ConfigureQemu(context.Background(), &models.ConfigureQemuRequest{
		Node:     "pve-01",
		VMID:     105,
		Cores:    2,
		MemoryMB: 2048,
	})
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(body).To(gomega.Equal("cores=2&memory=2048"))
})

var _ = ginkgo.It("ResizeQemuDisk", func() {
	httpmock.RegisterResponder(http.MethodPut, fmt.Sprintf("%s%s/nodes/pve-01/qemu/105/resize", fakeEndpoint, apiPrefix),
		dataResponder(nil))
	err := fakeClient.ResizeQemuDisk(context.Background(), &models.ResizeQemuDiskRequest{
		Node: "pve-01",
		VMID: 105,
		Disk: "scsi0",
		Size: "20G",
	})
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
})

var _ = ginkgo.It("AgentNetworkInterfaces", func() {
	httpmock.RegisterResponder(http.MethodGet, fmt.Sprintf("%s%s/nodes/pve-01/qemu/105/agent/network-get-interfaces", fakeEndpoint, apiPrefix),
		dataResponder(&models.AgentNetworkResponse{Result: []*models.AgentInterface{
			{Name: "lo", IPAddresses: []*models.AgentIPAddress{{Type: "ipv4", Address: "127.0.0.1"}}},
			{Name: "eth0", IPAddresses: []*models.AgentIPAddress{{Type: "ipv4", Address: "10.0.0.15"}}},
		}}))
	resp, err := fakeClient.AgentNetworkInterfaces(context.Background(), "pve-01", 105)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(resp.Result).To(gomega.HaveLen(2))
	gomega.Expect(resp.Result[1].IPAddresses[0].Address).To(gomega.Equal("10.0.0.15"))
})

var _ = ginkgo.It("NotFound classification", func() {
	httpmock.RegisterResponder(http.MethodPost, fmt.Sprintf("%s%s/nodes/pve-01/qemu/9001/clone", fakeEndpoint, apiPrefix),
		httpmock.NewStringResponder(500, "unable to find configuration file for VM 9001 - no such machine: it does not exist"))
	err := fakeClient.CloneQemu(context.Background(), &models.CloneQemuRequest{Node: "pve-01", TemplateID: 9001, NewID: 105})
	gomega.Expect(errors.Is(err, ErrNotFound)).To(gomega.BeTrue())

	httpmock.RegisterResponder(http.MethodGet, fmt.Sprintf("%s%s/nodes/pve-01/qemu/9999/status/current", fakeEndpoint, apiPrefix),
		httpmock.NewStringResponder(404, "not found"))
	_, err = fakeClient.GetQemuStatus(context.Background(), "pve-01", 9999)
	gomega.Expect(errors.Is(err, ErrNotFound)).To(gomega.BeTrue())
})

var _ = ginkgo.It("other remote errors are not NotFound", func() {
	httpmock.RegisterResponder(http.MethodPost, fmt.Sprintf("%s%s/nodes/pve-01/qemu/105/status/start", fakeEndpoint, apiPrefix),
		httpmock.NewStringResponder(500, "internal error"))
	err := fakeClient.StartQemu(context.Background(), "pve-01", 105)
	gomega.Expect(err).To(gomega.HaveOccurred())
	gomega.Expect(errors.Is(err, ErrNotFound)).To(gomega.BeFalse())
})
