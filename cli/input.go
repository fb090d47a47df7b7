package cli

import (
	"time"

	"github.com/spf13/pflag"
)

// Flag names, shared by the command definition and the config merge.
const (
	flagConfig    = "config"
	flagFile      = "file"
	flagStart     = "start"
	flagBound     = "bound"
	flagTimeLimit = "time-limit"
	flagOutput    = "output"
	flagVerify    = "verify"
	flagVerbose   = "verbose"
)

// DefaultMatrixFile is read when neither --file nor the config names a table.
const DefaultMatrixFile = "matrix.txt"

// Input contains the resolved settings for one run of the root command.
type Input struct {
	configPath string
	matrixFile string
	start      int // 1-based; 0 means ask
	bound      string
	timeLimit  time.Duration
	output     string
	verify     bool
	verbose    bool
}

// bindFlags registers every flag of the root command on fs, backed by i.
func (i *Input) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.configPath, flagConfig, "c", "", "path to a TOML config file")
	fs.StringVarP(&i.matrixFile, flagFile, "f", DefaultMatrixFile, "path to the cost matrix file")
	fs.IntVarP(&i.start, flagStart, "s", 0, "start vertex, 1-based (asked interactively when omitted)")
	fs.StringVarP(&i.bound, flagBound, "b", "incumbent", "pruning bound: incumbent, none or minout")
	fs.DurationVarP(&i.timeLimit, flagTimeLimit, "t", 0, "abort the search after this long (0 = no limit)")
	fs.StringVarP(&i.output, flagOutput, "o", "text", "output format: text, yaml or json")
	fs.BoolVar(&i.verify, flagVerify, false, "cross-check the optimal cost with Held-Karp (n <= 16)")
	fs.BoolVarP(&i.verbose, flagVerbose, "v", false, "verbose output")
}
