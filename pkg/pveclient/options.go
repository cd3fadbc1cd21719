package pveclient

import (
	"fmt"
	"time"
)

// Options configure one Proxmox VE API endpoint.
type Options struct {
	Endpoint           string        `mapstructure:"endpoint"`
	User               string        `mapstructure:"user"`
	TokenName          string        `mapstructure:"tokenName"`
	TokenValue         string        `mapstructure:"tokenValue"`
	Timeout            time.Duration `mapstructure:"timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecureSkipVerify"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		Timeout:            10 * time.Second,
		InsecureSkipVerify: true,
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if o.User == "" || o.TokenName == "" || o.TokenValue == "" {
		return fmt.Errorf("user, tokenName and tokenValue must be specified")
	}
	return nil
}
