// Package models holds the domain types of the orchestrator.
package models

import (
	"fmt"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/errs"
)

// NodeSnapshot is a transient per-node telemetry record, recomputed on
// every selection or listing request.
type NodeSnapshot struct {
	NodeID        string  `json:"node_id"`
	CPUPct        float64 `json:"cpu_pct"`
	MemUsedBytes  int64   `json:"mem_used_bytes"`
	MemTotalBytes int64   `json:"mem_total_bytes"`
	RunningVMs    int     `json:"running_vm_count"`
	Reachable     bool    `json:"reachable"`
	// Status is online/high-load/offline, derived solely from cpu_pct
	Status string `json:"status"`
}

// MemPct returns memory usage as a percentage, 0 when total is unknown.
func (s *NodeSnapshot) MemPct() float64 {
	if s.MemTotalBytes == 0 {
		return 0
	}
	return float64(s.MemUsedBytes) / float64(s.MemTotalBytes) * 100
}

// ScoredNode is a NodeSnapshot with its computed stress score.
type ScoredNode struct {
	*NodeSnapshot
	StressScore float64 `json:"stress_score"`
	Zone        string  `json:"zone"`
	Label       string  `json:"label"`
}

// VMRecord describes one guest VM. The remote virtualization service is
// the system of record; records are never cached across requests.
type VMRecord struct {
	VMID          int     `json:"vmid"`
	Name          string  `json:"name"`
	NodeID        string  `json:"node_id"`
	ClusterName   string  `json:"cluster_name"`
	Status        string  `json:"status"`
	CPUPct        float64 `json:"cpu_pct"`
	MemUsedBytes  int64   `json:"mem_used_bytes"`
	MemTotalBytes int64   `json:"mem_total_bytes"`
	IPAddress     *string `json:"ip_address,omitempty"`
	UptimeSeconds int64   `json:"uptime_seconds"`
}

// ProvisionRequest ...
type ProvisionRequest struct {
	ClusterName string `json:"cluster_name"`
	CPUCores    int    `json:"cpu_cores"`
	MemoryMB    int    `json:"memory_mb"`
	DiskGB      int    `json:"disk_gb"`
	CPUModel    string `json:"cpu_model,omitempty"`
	// Agent overrides the guest agent template default when set.
	Agent       *int   `json:"agent,omitempty"`
	CICustom    string `json:"cicustom,omitempty"`
	CIUser      string `json:"ciuser,omitempty"`
	CIPassword  string `json:"cipassword,omitempty"`
	IPConfig0   string `json:"ipconfig0,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Validate checks bounds before any remote call is issued.
func (r *ProvisionRequest) Validate() error {
	if r.ClusterName == "" {
		return &errs.ValidationError{Field: "cluster_name", Reason: "cannot be empty"}
	}
	return validateSizing(r.CPUCores, r.MemoryMB, r.DiskGB)
}

// ReconfigureRequest ...
type ReconfigureRequest struct {
	ClusterName string `json:"cluster_name"`
	NodeID      string `json:"node_id"`
	VMID        int    `json:"vmid"`
	CPUCores    int    `json:"cpu_cores"`
	MemoryMB    int    `json:"memory_mb"`
	DiskGB      int    `json:"disk_gb"`
}

// Validate ...
func (r *ReconfigureRequest) Validate() error {
	return validateSizing(r.CPUCores, r.MemoryMB, r.DiskGB)
}

func validateSizing(cores, memoryMB, diskGB int) error {
	if cores < consts.MinCPUCores || cores > consts.MaxCPUCores {
		return &errs.ValidationError{Field: "cpu_cores", Reason: fmt.Sprintf("must be %d-%d", consts.MinCPUCores, consts.MaxCPUCores)}
	}
	if memoryMB < consts.MinMemoryMB || memoryMB > consts.MaxMemoryMB {
		return &errs.ValidationError{Field: "memory_mb", Reason: fmt.Sprintf("must be %d-%d MB", consts.MinMemoryMB, consts.MaxMemoryMB)}
	}
	if diskGB < consts.MinDiskGB || diskGB > consts.MaxDiskGB {
		return &errs.ValidationError{Field: "disk_gb", Reason: fmt.Sprintf("must be %d-%d GB", consts.MinDiskGB, consts.MaxDiskGB)}
	}
	return nil
}

// SelectionMetadata records why a node won placement.
type SelectionMetadata struct {
	NodeID      string  `json:"node_id"`
	StressScore float64 `json:"stress_score"`
	Candidates  int     `json:"candidates"`
}

// ProvisionResult is returned once the VM is cloned and reconfigured.
// Disk resize and deferred start are best-effort and do not gate it.
type ProvisionResult struct {
	VMID        int                `json:"vmid"`
	Name        string             `json:"name"`
	NodeID      string             `json:"node_id"`
	ClusterName string             `json:"cluster_name"`
	Selection   *SelectionMetadata `json:"selection_metadata,omitempty"`
}

// VMDetail is the status plus live network view of one VM.
type VMDetail struct {
	VMID          int     `json:"vmid"`
	NodeID        string  `json:"node_id"`
	ClusterName   string  `json:"cluster_name"`
	Status        string  `json:"status"`
	CPUPct        float64 `json:"cpu_pct"`
	MemUsedBytes  int64   `json:"mem_used_bytes"`
	MemTotalBytes int64   `json:"mem_total_bytes"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	IPAddress     *string `json:"ip_address,omitempty"`
}
