package provision

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options carry the template defaults applied to provisioned VMs.
type Options struct {
	// TemplateIDs are clone candidates tried in priority order.
	TemplateIDs []int         `mapstructure:"templateIDs"`
	SettleDelay time.Duration `mapstructure:"settleDelay"`

	CPUModel   string `mapstructure:"cpuModel"`
	Agent      int    `mapstructure:"agent"`
	CICustom   string `mapstructure:"cicustom"`
	CIUser     string `mapstructure:"ciuser"`
	CIPassword string `mapstructure:"cipassword"`
	IPConfig0  string `mapstructure:"ipconfig0"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		TemplateIDs: []int{9000},
		SettleDelay: 3 * time.Second,
		CPUModel:    "Skylake-Client-v4",
		Agent:       1,
		CICustom:    "vendor=local:snippets/vendor-config.yaml",
		CIUser:      "ubuntu",
		CIPassword:  "password",
		IPConfig0:   "ip=dhcp",
	}
}

// Validate ...
func (o *Options) Validate() error {
	if len(o.TemplateIDs) == 0 {
		return fmt.Errorf("at least one template id must be configured")
	}
	if o.SettleDelay < 0 {
		return fmt.Errorf("settle delay cannot be negative")
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntSliceVar(&o.TemplateIDs, "provision-template-ids", o.TemplateIDs, "template vmids to clone from, in priority order")
	fs.DurationVar(&o.SettleDelay, "provision-settle-delay", o.SettleDelay, "delay before the deferred start of a cloned vm")
	fs.StringVar(&o.CPUModel, "provision-cpu-model", o.CPUModel, "default cpu model of provisioned vms")
	fs.IntVar(&o.Agent, "provision-agent", o.Agent, "default guest agent flag of provisioned vms")
}
