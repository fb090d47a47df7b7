package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamcycle/tsp"
)

// Report is the machine-readable form of a solved instance (yaml and json).
// Vertices are 1-based.
type Report struct {
	Vertices int         `yaml:"vertices" json:"vertices"`
	Start    int         `yaml:"start" json:"start"`
	Cost     int64       `yaml:"cost" json:"cost"`
	Route    []int       `yaml:"route" json:"route"`
	Tour     string      `yaml:"tour" json:"tour"`
	Bound    string      `yaml:"bound" json:"bound"`
	Stats    StatsReport `yaml:"stats" json:"stats"`
	Verified *bool       `yaml:"verified,omitempty" json:"verified,omitempty"`
}

// StatsReport mirrors tsp.Stats with stable field names.
type StatsReport struct {
	Nodes        uint64 `yaml:"nodes" json:"nodes"`
	Pruned       uint64 `yaml:"pruned" json:"pruned"`
	Leaves       uint64 `yaml:"leaves" json:"leaves"`
	Improvements uint64 `yaml:"improvements" json:"improvements"`
}

func newReport(n int, res tsp.Result[int64], verified *bool) Report {
	var start int
	if len(res.Tour.Route) > 0 {
		start = res.Tour.Route[0] + 1
	}

	return Report{
		Vertices: n,
		Start:    start,
		Cost:     res.Tour.Cost,
		Route:    res.Tour.OneBased(),
		Tour:     res.Tour.String(),
		Bound:    res.Bound.String(),
		Stats: StatsReport{
			Nodes:        res.Stats.Nodes,
			Pruned:       res.Stats.Pruned,
			Leaves:       res.Stats.Leaves,
			Improvements: res.Stats.Improvements,
		},
		Verified: verified,
	}
}

// render writes r to w in the requested format.
func render(w io.Writer, format string, r Report) error {
	switch format {
	case "text", "":
		_, err := fmt.Fprintf(w, "Minimum tour cost: %d\nMinimum tour: %s\n", r.Cost, r.Tour)

		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(r), "encoding json")
	default:
		return errors.Wrapf(ErrUnknownOutput, "%q", format)
	}
}

// checkOutput rejects an unknown format before any work is done.
func checkOutput(format string) error {
	switch format {
	case "text", "yaml", "json", "":
		return nil
	default:
		return errors.Wrapf(ErrUnknownOutput, "%q", format)
	}
}
