// Package viper loads the optional config file over flag defaults.
package viper

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFlagName is the flag carrying the config file path.
const ConfigFlagName = "config"

var configFile string

func init() {
	pflag.StringVar(&configFile, ConfigFlagName, "", "path to config file")
}

// LoadConfig unmarshals the config file into opts. Absent file is not an
// error; option defaults and flags still apply.
func LoadConfig(opts interface{}) error {
	pflag.Parse()
	if configFile == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	if err := v.Unmarshal(opts); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}
