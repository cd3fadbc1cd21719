// Package pveclient is a minimal client for the Proxmox VE HTTP API.
package pveclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/vmstack/pve-orchestrator/pkg/pveclient/models"
)

const apiPrefix = "/api2/json"

// ErrNotFound reports a resource/template not found class of failure.
var ErrNotFound = errors.New("not found")

// Client ...
type Client interface {
	ListNodes(ctx context.Context) ([]*models.Node, error)
	GetNodeStatus(ctx context.Context, node string) (*models.NodeStatus, error)
	ListQemu(ctx context.Context, node string) ([]*models.QemuVM, error)
	GetQemuStatus(ctx context.Context, node string, vmid int) (*models.QemuStatus, error)

	NextID(ctx context.Context) (int, error)
	CloneQemu(ctx context.Context, req *models.CloneQemuRequest) error
	ConfigureQemu(ctx context.Context, req *models.ConfigureQemuRequest) error
	ResizeQemuDisk(ctx context.Context, req *models.ResizeQemuDiskRequest) error

	StartQemu(ctx context.Context, node string, vmid int) error
	StopQemu(ctx context.Context, node string, vmid int) error
	ShutdownQemu(ctx context.Context, node string, vmid int) error
	DeleteQemu(ctx context.Context, node string, vmid int) error

	AgentNetworkInterfaces(ctx context.Context, node string, vmid int) (*models.AgentNetworkResponse, error)
}

type impl struct {
	endpoint string
	auth     string
	cli      *http.Client
}

// NewClient ...
func NewClient(opts *Options) Client {
	transport := http.DefaultTransport
	if opts.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // nolint
		}
	}
	cli := &http.Client{Timeout: opts.Timeout, Transport: transport}
	return &impl{
		endpoint: strings.TrimSuffix(opts.Endpoint, "/"),
		auth:     fmt.Sprintf("PVEAPIToken=%s!%s=%s", opts.User, opts.TokenName, opts.TokenValue),
		cli:      cli,
	}
}

var _ Client = (*impl)(nil)

// ListNodes ...
func (i *impl) ListNodes(ctx context.Context) ([]*models.Node, error) {
	var resp []*models.Node
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/nodes", i.endpoint, apiPrefix), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetNodeStatus ...
func (i *impl) GetNodeStatus(ctx context.Context, node string) (*models.NodeStatus, error) {
	resp := new(models.NodeStatus)
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/nodes/%s/status", i.endpoint, apiPrefix, node), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListQemu ...
func (i *impl) ListQemu(ctx context.Context, node string) ([]*models.QemuVM, error) {
	var resp []*models.QemuVM
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/nodes/%s/qemu", i.endpoint, apiPrefix, node), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetQemuStatus ...
func (i *impl) GetQemuStatus(ctx context.Context, node string, vmid int) (*models.QemuStatus, error) {
	resp := new(models.QemuStatus)
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/status/current", i.endpoint, apiPrefix, node, vmid), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// NextID ...
func (i *impl) NextID(ctx context.Context) (int, error) {
	var resp string
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/cluster/nextid", i.endpoint, apiPrefix), nil, &resp); err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(resp)
	if err != nil {
		return 0, fmt.Errorf("invalid nextid %q: %w", resp, err)
	}
	return id, nil
}

// CloneQemu ...
func (i *impl) CloneQemu(ctx context.Context, req *models.CloneQemuRequest) error {
	return i.doRequest(ctx, http.MethodPost, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/clone", i.endpoint, apiPrefix, req.Node, req.TemplateID), req, nil)
}

// ConfigureQemu ...
func (i *impl) ConfigureQemu(ctx context.Context, req *models.ConfigureQemuRequest) error {
	return i.doRequest(ctx, http.MethodPost, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/config", i.endpoint, apiPrefix, req.Node, req.VMID), req, nil)
}

// ResizeQemuDisk ...
func (i *impl) ResizeQemuDisk(ctx context.Context, req *models.ResizeQemuDiskRequest) error {
	return i.doRequest(ctx, http.MethodPut, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/resize", i.endpoint, apiPrefix, req.Node, req.VMID), req, nil)
}

// StartQemu ...
func (i *impl) StartQemu(ctx context.Context, node string, vmid int) error {
	return i.doRequest(ctx, http.MethodPost, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/status/start", i.endpoint, apiPrefix, node, vmid), nil, nil)
}

// StopQemu ...
func (i *impl) StopQemu(ctx context.Context, node string, vmid int) error {
	return i.doRequest(ctx, http.MethodPost, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/status/stop", i.endpoint, apiPrefix, node, vmid), nil, nil)
}

// ShutdownQemu ...
func (i *impl) ShutdownQemu(ctx context.Context, node string, vmid int) error {
	return i.doRequest(ctx, http.MethodPost, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/status/shutdown", i.endpoint, apiPrefix, node, vmid), nil, nil)
}

// DeleteQemu ...
func (i *impl) DeleteQemu(ctx context.Context, node string, vmid int) error {
	return i.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s%s/nodes/%s/qemu/%d", i.endpoint, apiPrefix, node, vmid), nil, nil)
}

// AgentNetworkInterfaces ...
func (i *impl) AgentNetworkInterfaces(ctx context.Context, node string, vmid int) (*models.AgentNetworkResponse, error) {
	resp := new(models.AgentNetworkResponse)
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/nodes/%s/qemu/%d/agent/network-get-interfaces", i.endpoint, apiPrefix, node, vmid), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (i *impl) doRequest(ctx context.Context, method, url string, req, resp interface{}) error {
	request, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return err
	}
	request.Header.Add("Accept", "application/json")
	request.Header.Add("Authorization", i.auth)

	// params always travel as a form body, every parameterized call is a
	// POST or PUT
	if req != nil {
		params, err := parseParams(req)
		if err != nil {
			return err
		}
		request.Header.Add("Content-Type", "application/x-www-form-urlencoded")
		request.Body = io.NopCloser(strings.NewReader(params.Encode()))
	}

	response, err := i.cli.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode > 399 {
		message, _ := io.ReadAll(response.Body)
		if response.StatusCode == http.StatusNotFound || strings.Contains(string(message), "does not exist") {
			return fmt.Errorf("%s: %w", message, ErrNotFound)
		}
		return fmt.Errorf("%d: %s", response.StatusCode, message)
	}

	if resp == nil {
		return nil
	}
	var env envelope
	decoder := json.NewDecoder(response.Body)
	if err = decoder.Decode(&env); err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, resp)
}

func parseParams(obj interface{}) (url.Values, error) {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("invalid obj type: %s", v.Type().Kind())
	}

	res := make(url.Values, 0)
	for i := 0; i < v.NumField(); i++ {
		tag, ok := v.Type().Field(i).Tag.Lookup("pve")
		if !ok {
			continue
		}
		values, err := parseFieldValue(v.Field(i))
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			res[tag] = values
		}
	}
	return res, nil
}

func parseFieldValue(field reflect.Value) ([]string, error) {
	if field.IsZero() {
		return nil, nil
	}
	switch field.Kind() {
	case reflect.Slice, reflect.Array:
		if field.Len() == 0 {
			return nil, nil
		}
		res := make([]string, 0, field.Len())
		for i := 0; i < field.Len(); i++ {
			s, err := getValueString(field.Index(i))
			if err != nil {
				return nil, err
			}
			res = append(res, s)
		}
		return res, nil
	default:
		s, err := getValueString(field)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

func getValueString(v reflect.Value) (string, error) {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.String:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %s", v.Type().String())
	}
}
