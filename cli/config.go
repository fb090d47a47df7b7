package cli

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config is the TOML file accepted by --config. Every key is optional.
//
//	file       = "distances.txt"
//	start      = 2
//	bound      = "minout"
//	time_limit = "30s"
//	output     = "yaml"
//	verify     = true
//	verbose    = false
type Config struct {
	File      string `toml:"file"`
	Start     int    `toml:"start"`
	Bound     string `toml:"bound"`
	TimeLimit string `toml:"time_limit"`
	Output    string `toml:"output"`
	Verify    *bool  `toml:"verify"`
	Verbose   *bool  `toml:"verbose"`
}

// LoadConfig reads and decodes a config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.TimeLimit != "" {
		if _, err = time.ParseDuration(cfg.TimeLimit); err != nil {
			return nil, errors.Wrapf(err, "config %s: time_limit", path)
		}
	}

	return &cfg, nil
}

// apply copies config values into i for every flag the user did not set.
func (c *Config) apply(i *Input, fs *pflag.FlagSet) {
	set := func(name string) bool { return !fs.Changed(name) }

	if c.File != "" && set(flagFile) {
		i.matrixFile = c.File
	}
	if c.Start != 0 && set(flagStart) {
		i.start = c.Start
	}
	if c.Bound != "" && set(flagBound) {
		i.bound = c.Bound
	}
	if c.TimeLimit != "" && set(flagTimeLimit) {
		// validated by LoadConfig
		i.timeLimit, _ = time.ParseDuration(c.TimeLimit)
	}
	if c.Output != "" && set(flagOutput) {
		i.output = c.Output
	}
	if c.Verify != nil && set(flagVerify) {
		i.verify = *c.Verify
	}
	if c.Verbose != nil && set(flagVerbose) {
		i.verbose = *c.Verbose
	}
}
