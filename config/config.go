// Package config loads summarizer settings from a config file, environment
// variables and command-line flags.
//
// Precedence, highest first: flags that were set, DFUZZSTREAM_* environment
// variables, the config file, defaults.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	fuzzstream "github.com/yyyoichi/dfuzzstream"
)

const EnvPrefix = "DFUZZSTREAM"

// Config mirrors the summarizer options.
type Config struct {
	MinFMiCs       int     `mapstructure:"min_fmics"`
	MaxFMiCs       int     `mapstructure:"max_fmics"`
	MergeThreshold float64 `mapstructure:"merge_threshold"`
	RadiusFactor   float64 `mapstructure:"radius_factor"`
	M              float64 `mapstructure:"m"`
}

// Default returns the summarizer defaults.
func Default() Config {
	return Config{
		MinFMiCs:       5,
		MaxFMiCs:       100,
		MergeThreshold: 1.0,
		RadiusFactor:   1.0,
		M:              2.0,
	}
}

// key -> flag name
var flagNames = map[string]string{
	"min_fmics":       "min-fmics",
	"max_fmics":       "max-fmics",
	"merge_threshold": "merge-threshold",
	"radius_factor":   "radius-factor",
	"m":               "fuzzifier",
}

// RegisterFlags adds one flag per setting to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(flagNames["min_fmics"], d.MinFMiCs, "micro-clusters created before outlier detection starts")
	fs.Int(flagNames["max_fmics"], d.MaxFMiCs, "maximum number of live micro-clusters")
	fs.Float64(flagNames["merge_threshold"], d.MergeThreshold, "similarity at which micro-clusters merge")
	fs.Float64(flagNames["radius_factor"], d.RadiusFactor, "scale applied to micro-cluster radii for outlier detection")
	fs.Float64(flagNames["m"], d.M, "fuzzifier exponent, greater than 1")
}

// Load reads the configuration. path may be empty to skip the config file.
// flags may be nil; otherwise it must have been populated by RegisterFlags.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("min_fmics", d.MinFMiCs)
	v.SetDefault("max_fmics", d.MaxFMiCs)
	v.SetDefault("merge_threshold", d.MergeThreshold)
	v.SetDefault("radius_factor", d.RadiusFactor)
	v.SetDefault("m", d.M)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagNames {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into summarizer options.
func (c Config) Options() []fuzzstream.Option {
	return []fuzzstream.Option{
		fuzzstream.WithMinFMiCs(c.MinFMiCs),
		fuzzstream.WithMaxFMiCs(c.MaxFMiCs),
		fuzzstream.WithMergeThreshold(c.MergeThreshold),
		fuzzstream.WithRadiusFactor(c.RadiusFactor),
		fuzzstream.WithFuzzifier(c.M),
	}
}

// NewSummarizer creates a summarizer configured by c.
func (c Config) NewSummarizer() (*fuzzstream.Summarizer, error) {
	return fuzzstream.New(c.Options()...)
}
