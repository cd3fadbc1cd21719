package lifecycle

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options ...
type Options struct {
	// StopSettleDelay is waited between stopping a running VM and
	// deleting it.
	StopSettleDelay time.Duration `mapstructure:"stopSettleDelay"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		StopSettleDelay: 3 * time.Second,
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.StopSettleDelay < 0 {
		return fmt.Errorf("stop settle delay cannot be negative")
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&o.StopSettleDelay, "lifecycle-stop-settle-delay", o.StopSettleDelay, "delay between stop and delete of a running vm")
}
