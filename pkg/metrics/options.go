package metrics

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options ...
type Options struct {
	SweepEnabled bool          `mapstructure:"sweepEnabled"`
	SweepPeriod  time.Duration `mapstructure:"sweepPeriod"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		SweepEnabled: true,
		SweepPeriod:  time.Minute,
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.SweepEnabled && o.SweepPeriod <= 0 {
		return fmt.Errorf("sweep period must be positive")
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.SweepEnabled, "metrics-sweep-enabled", o.SweepEnabled, "enable the periodic node stress sweep")
	fs.DurationVar(&o.SweepPeriod, "metrics-sweep-period", o.SweepPeriod, "period of the node stress sweep")
}
