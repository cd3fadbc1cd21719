package options

import (
	"github.com/spf13/pflag"

	"github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/metrics"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/enrich"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/lifecycle"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/provision"
	"github.com/vmstack/pve-orchestrator/pkg/registry"
	"github.com/vmstack/pve-orchestrator/pkg/server"
)

// Options ...
type Options struct {
	Log       *log.Options       `mapstructure:"log"`
	Registry  *registry.Options  `mapstructure:"registry"`
	Server    *server.Options    `mapstructure:"server"`
	Provision *provision.Options `mapstructure:"provision"`
	Enrich    *enrich.Options    `mapstructure:"enrich"`
	Lifecycle *lifecycle.Options `mapstructure:"lifecycle"`
	Metrics   *metrics.Options   `mapstructure:"metrics"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		Log:       log.NewOptions(),
		Registry:  registry.NewOptions(),
		Server:    server.NewOptions(),
		Provision: provision.NewOptions(),
		Enrich:    enrich.NewOptions(),
		Lifecycle: lifecycle.NewOptions(),
		Metrics:   metrics.NewOptions(),
	}
}

// Validate ...
func (o *Options) Validate() error {
	if err := o.Log.Validate(); err != nil {
		return err
	}
	if err := o.Registry.Validate(); err != nil {
		return err
	}
	if err := o.Server.Validate(); err != nil {
		return err
	}
	if err := o.Provision.Validate(); err != nil {
		return err
	}
	if err := o.Enrich.Validate(); err != nil {
		return err
	}
	if err := o.Lifecycle.Validate(); err != nil {
		return err
	}
	if err := o.Metrics.Validate(); err != nil {
		return err
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Log.AddFlags(fs)
	o.Registry.AddFlags(fs)
	o.Server.AddFlags(fs)
	o.Provision.AddFlags(fs)
	o.Enrich.AddFlags(fs)
	o.Lifecycle.AddFlags(fs)
	o.Metrics.AddFlags(fs)
}
