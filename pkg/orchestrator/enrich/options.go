package enrich

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options ...
type Options struct {
	// PerNodeConcurrency caps in-flight guest agent queries per node.
	PerNodeConcurrency int64         `mapstructure:"perNodeConcurrency"`
	QueryTimeout       time.Duration `mapstructure:"queryTimeout"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		PerNodeConcurrency: 5,
		QueryTimeout:       time.Second,
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.PerNodeConcurrency < 1 {
		return fmt.Errorf("per-node concurrency must be at least 1")
	}
	if o.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive")
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&o.PerNodeConcurrency, "enrich-per-node-concurrency", o.PerNodeConcurrency, "max in-flight guest agent queries per node")
	fs.DurationVar(&o.QueryTimeout, "enrich-query-timeout", o.QueryTimeout, "timeout of one guest agent query")
}
