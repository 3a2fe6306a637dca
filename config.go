package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_defaultRow    = 2_000_000
	_defaultOutput = "text"
	_envPrefix     = "SENSORGAP"
)

// Config is resolved from flags, SENSORGAP_* variables and an optional
// config file, in that order of precedence.
type Config struct {
	Row    int    `mapstructure:"row"`
	Output string `mapstructure:"output"`
}

func _newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("row", _defaultRow)
	v.SetDefault("output", _defaultOutput)
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads configFile if set, binds flags and decodes the result.
func LoadConfig(v *viper.Viper, flags *pflag.FlagSet, configFile string) (c Config, err error) {
	if err = v.BindPFlag("row", flags.Lookup("row")); err != nil {
		return
	}
	if err = v.BindPFlag("output", flags.Lookup("output")); err != nil {
		return
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err = v.ReadInConfig(); err != nil {
			err = errorf("reading config %v: %w", configFile, err)
			return
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return
	}
	c.Output = strings.ToLower(c.Output)
	if _, ok := _renderers[c.Output]; !ok {
		err = errorf("unknown output format %q", c.Output)
		return
	}
	if c.Row < 0 {
		err = errorf("row %d: %w", c.Row, ErrRowOutOfBounds)
	}
	return
}
