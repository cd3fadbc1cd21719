package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/errs"
	applog "github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/models"
	"github.com/vmstack/pve-orchestrator/pkg/version"
)

// Service is the orchestration surface bound to HTTP.
// Satisfied by *orchestrator.Orchestrator.
type Service interface {
	Clusters() []string
	ListVMs(ctx context.Context, cluster string) ([]*models.VMRecord, error)
	ListNodes(ctx context.Context, cluster string) ([]*models.ScoredNode, error)
	CreateVM(ctx context.Context, req *models.ProvisionRequest) (*models.ProvisionResult, error)
	StartVM(ctx context.Context, cluster, node string, vmid int) error
	ShutdownVM(ctx context.Context, cluster, node string, vmid int) error
	DeleteVM(ctx context.Context, cluster, node string, vmid int) error
	ReconfigureVM(ctx context.Context, req *models.ReconfigureRequest) error
	GetVMDetail(ctx context.Context, cluster, node string, vmid int) (*models.VMDetail, error)
}

// Handler ...
type Handler struct {
	svc Service
	mux *http.ServeMux
}

// NewHandler ...
func NewHandler(svc Service) *Handler {
	h := &Handler{
		svc: svc,
		mux: http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.handleRoot)
	h.mux.HandleFunc("GET /api/vms", h.handleListVMs)
	h.mux.HandleFunc("GET /api/nodes", h.handleListNodes)
	h.mux.HandleFunc("GET /api/nodes/{node}/{vmid}", h.handleVMDetail)
	h.mux.HandleFunc("POST /api/vm/create", h.handleCreate)
	h.mux.HandleFunc("POST /api/vm/start", h.handleStart)
	h.mux.HandleFunc("POST /api/vm/shutdown", h.handleShutdown)
	h.mux.HandleFunc("POST /api/vm/delete", h.handleDelete)
	h.mux.HandleFunc("POST /api/vm/config", h.handleReconfigure)
	return h
}

// Mux ...
func (h *Handler) Mux() *http.ServeMux {
	return h.mux
}

// controlRequest addresses one VM for power and delete operations.
type controlRequest struct {
	ClusterName string `json:"cluster_name,omitempty"`
	Node        string `json:"node"`
	VMID        int    `json:"vmid"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":  consts.Component,
		"version":  version.Version,
		"clusters": h.svc.Clusters(),
	})
}

// cluster returns the requested cluster, falling back to the first
// registered one so single-cluster deployments need no parameter.
func (h *Handler) cluster(r *http.Request) string {
	if cluster := r.URL.Query().Get("cluster"); cluster != "" {
		return cluster
	}
	if names := h.svc.Clusters(); len(names) > 0 {
		return names[0]
	}
	return ""
}

func (h *Handler) defaultCluster(name string) string {
	if name != "" {
		return name
	}
	if names := h.svc.Clusters(); len(names) > 0 {
		return names[0]
	}
	return ""
}

func (h *Handler) handleListVMs(w http.ResponseWriter, r *http.Request) {
	vms, err := h.svc.ListVMs(r.Context(), h.cluster(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"vms": vms, "total": len(vms)})
}

func (h *Handler) handleListNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.svc.ListNodes(r.Context(), h.cluster(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"nodes": nodes, "total": len(nodes)})
}

func (h *Handler) handleVMDetail(w http.ResponseWriter, r *http.Request) {
	vmid, err := strconv.Atoi(r.PathValue("vmid"))
	if err != nil {
		writeError(w, &errs.ValidationError{Field: "vmid", Reason: "must be an integer"})
		return
	}
	detail, err := h.svc.GetVMDetail(r.Context(), h.cluster(r), r.PathValue("node"), vmid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errs.ValidationError{Field: "body", Reason: err.Error()})
		return
	}
	req.ClusterName = h.defaultCluster(req.ClusterName)

	result, err := h.svc.CreateVM(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "created", "vm": result})
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	h.handleControl(w, r, "started", h.svc.StartVM)
}

func (h *Handler) handleShutdown(w http.ResponseWriter, r *http.Request) {
	h.handleControl(w, r, "shutdown", h.svc.ShutdownVM)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.handleControl(w, r, "deleted", h.svc.DeleteVM)
}

func (h *Handler) handleControl(w http.ResponseWriter, r *http.Request, status string, op func(ctx context.Context, cluster, node string, vmid int) error) {
	var req controlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errs.ValidationError{Field: "body", Reason: err.Error()})
		return
	}
	if req.Node == "" || req.VMID == 0 {
		writeError(w, &errs.ValidationError{Field: "node/vmid", Reason: "cannot be empty"})
		return
	}
	if err := op(r.Context(), h.defaultCluster(req.ClusterName), req.Node, req.VMID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": status, "vmid": req.VMID})
}

func (h *Handler) handleReconfigure(w http.ResponseWriter, r *http.Request) {
	var req models.ReconfigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errs.ValidationError{Field: "body", Reason: err.Error()})
		return
	}
	req.ClusterName = h.defaultCluster(req.ClusterName)

	if err := h.svc.ReconfigureVM(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "configured", "vmid": req.VMID})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		applog.Errorw("failed to encode response", "err", err)
	}
}

// writeError maps the error classes to status codes: bad input 400,
// unknown cluster 404, exhausted placement 503, remote failures 502.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errs.IsValidation(err):
		code = http.StatusBadRequest
	case errs.IsUnknownCluster(err):
		code = http.StatusNotFound
	case errs.IsNoAvailableNodes(err):
		code = http.StatusServiceUnavailable
	case isRemote(err):
		code = http.StatusBadGateway
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func isRemote(err error) bool {
	var remoteErr *errs.RemoteOperationError
	if errors.As(err, &remoteErr) {
		return true
	}
	var connErr *errs.ConnectionError
	return errors.As(err, &connErr)
}
