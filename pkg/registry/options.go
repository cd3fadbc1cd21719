package registry

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/vmstack/pve-orchestrator/pkg/pveclient"
)

// ClusterOptions names one configured cluster.
type ClusterOptions struct {
	Name   string             `mapstructure:"name"`
	Client *pveclient.Options `mapstructure:"client"`
}

// Options ...
type Options struct {
	Clusters []*ClusterOptions `mapstructure:"clusters"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{}
}

// Validate ...
func (o *Options) Validate() error {
	if len(o.Clusters) == 0 {
		return fmt.Errorf("at least one cluster must be configured")
	}
	seen := make(map[string]struct{}, len(o.Clusters))
	for _, cluster := range o.Clusters {
		if cluster.Name == "" {
			return fmt.Errorf("cluster name cannot be empty")
		}
		if _, ok := seen[cluster.Name]; ok {
			return fmt.Errorf("duplicate cluster name: %s", cluster.Name)
		}
		seen[cluster.Name] = struct{}{}
		if cluster.Client == nil {
			return fmt.Errorf("cluster %s: client options must be specified", cluster.Name)
		}
		if err := cluster.Client.Validate(); err != nil {
			return fmt.Errorf("cluster %s: %w", cluster.Name, err)
		}
	}
	return nil
}

// AddFlags ...
//
// Cluster credentials are structured and come from the config file only.
func (o *Options) AddFlags(_ *pflag.FlagSet) {}
