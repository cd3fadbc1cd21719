// Package registry resolves logical cluster names to cached client handles.
package registry

import (
	"sync"

	"github.com/vmstack/pve-orchestrator/pkg/errs"
	"github.com/vmstack/pve-orchestrator/pkg/pveclient"
)

// Registry hands out at most one live client handle per cluster name.
// Construction is lazy: no network validation happens until first use.
type Registry struct {
	names     []string
	configs   map[string]*ClusterOptions
	newClient func(opts *pveclient.Options) pveclient.Client

	mutex   sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once   sync.Once
	client pveclient.Client
	err    error
}

// New ...
func New(opts *Options) *Registry {
	names := make([]string, 0, len(opts.Clusters))
	configs := make(map[string]*ClusterOptions, len(opts.Clusters))
	for _, cluster := range opts.Clusters {
		names = append(names, cluster.Name)
		configs[cluster.Name] = cluster
	}
	return &Registry{
		names:     names,
		configs:   configs,
		newClient: pveclient.NewClient,
		entries:   make(map[string]*entry),
	}
}

// Names returns the configured cluster names in configuration order.
func (r *Registry) Names() []string {
	return r.names
}

// Resolve returns the client handle for a cluster name, constructing it on
// first use. Concurrent first calls share a single construction.
func (r *Registry) Resolve(name string) (pveclient.Client, error) {
	config, ok := r.configs[name]
	if !ok {
		return nil, &errs.UnknownClusterError{Cluster: name}
	}

	r.mutex.Lock()
	e, ok := r.entries[name]
	if !ok {
		e = &entry{}
		r.entries[name] = e
	}
	r.mutex.Unlock()

	e.once.Do(func() {
		if err := config.Client.Validate(); err != nil {
			e.err = err
			return
		}
		e.client = r.newClient(config.Client)
	})
	if e.err != nil {
		// drop the failed entry so a later request retries construction
		r.mutex.Lock()
		if r.entries[name] == e {
			delete(r.entries, name)
		}
		r.mutex.Unlock()
		return nil, &errs.ConnectionError{Cluster: name, Err: e.err}
	}
	return e.client, nil
}
