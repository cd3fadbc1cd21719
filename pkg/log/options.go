package log

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// Options ...
type Options struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		Level:    "info",
		Encoding: "console",
	}
}

// Validate ...
func (o *Options) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(o.Level)); err != nil {
		return fmt.Errorf("invalid log level %s: %w", o.Level, err)
	}
	if o.Encoding != "console" && o.Encoding != "json" {
		return fmt.Errorf("invalid log encoding: %s", o.Encoding)
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log-level", o.Level, "log level: debug/info/warn/error")
	fs.StringVar(&o.Encoding, "log-encoding", o.Encoding, "log encoding: console/json")
}
