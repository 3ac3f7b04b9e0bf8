// Package config holds the run settings of the hashbench tool, read from
// command-line flags and HASHBENCH_* environment variables.
package config

import (
	"hashbench/sweep"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeySeed        = "seed"
	KeyCheckSeed   = "check-seed"
	KeyMaxExponent = "max-exp"
	KeyOutput      = "out"
	KeyFilter      = "filter"
	KeyProgress    = "progress"
	KeyCheck       = "check"

	EnvPrefix = "HASHBENCH"

	// MaxExponentLimit caps the ladder at 1 GiB buffers.
	MaxExponentLimit = 30
)

type Config struct {
	Seed        uint32
	CheckSeed   uint32
	MaxExponent int
	Output      string
	Filter      string
	Progress    bool
	Check       bool
}

func Default() Config {
	return Config{
		Seed:        0,
		CheckSeed:   0x12345678,
		MaxExponent: sweep.DefaultMaxExponent,
		Output:      "stat.csv",
		Progress:    true,
		Check:       true,
	}
}

// RegisterFlags adds the run flags to fs with defaults from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Uint32(KeySeed, d.Seed, "Seed for the size sweep")
	fs.Uint32(KeyCheckSeed, d.CheckSeed, "Seed for the size-0 check run")
	fs.Int(KeyMaxExponent, d.MaxExponent, "Largest input is 2^max-exp bytes")
	fs.StringP(KeyOutput, "o", d.Output, "Output CSV path")
	fs.StringP(KeyFilter, "f", d.Filter, "Comma-separated algorithm name prefixes")
	fs.Bool(KeyProgress, d.Progress, "Show sweep progress on stderr")
	fs.Bool(KeyCheck, d.Check, "Print the size-0 check run before the sweep")
}

// NewViper returns a viper instance bound to fs and the environment.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}
	return v, nil
}

// Load reads and validates a Config from v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Seed:        v.GetUint32(KeySeed),
		CheckSeed:   v.GetUint32(KeyCheckSeed),
		MaxExponent: v.GetInt(KeyMaxExponent),
		Output:      v.GetString(KeyOutput),
		Filter:      v.GetString(KeyFilter),
		Progress:    v.GetBool(KeyProgress),
		Check:       v.GetBool(KeyCheck),
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.MaxExponent < 0 || c.MaxExponent > MaxExponentLimit {
		return errors.Errorf("%s must be in [0, %d], got %d", KeyMaxExponent, MaxExponentLimit, c.MaxExponent)
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.Errorf("%s must not be empty", KeyOutput)
	}
	return nil
}
