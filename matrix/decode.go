// Package matrix: plain-text decoder.
//
// Format: N lines, each with N whitespace-separated integers. Blank lines may
// only trail the table; a blank line before a row, a token that is not an
// integer, or a table that is not square is ErrMalformedInput.

package matrix

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxLineBytes bounds one row of text; 16 MiB fits tables far beyond what an
// exhaustive search could ever finish.
const maxLineBytes = 16 << 20

// LoadFile opens path and decodes it with Decode.
// A path that does not exist is reported as ErrMissingInput.
func LoadFile(path string) (*Matrix[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrMissingInput, "open %s", path)
		}

		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return m, nil
}

// Decode reads a cost table from r.
//
// Errors:
//   - ErrMalformedInput (wrapped with line and column) for a token that is not
//     a base-10 int64;
//   - ErrRagged / ErrNonSquare from New for shape violations;
//   - read errors from r, wrapped.
//
// Complexity: O(N²) time and memory.
func Decode(r io.Reader) (*Matrix[int64], error) {
	var (
		sc    = bufio.NewScanner(r)
		rows  [][]int64
		line  int
		blank int // first blank line seen, 0 if none
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			if blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: blank line inside the table", blank)
		}
		row := make([]int64, len(fields))
		for col, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedInput, "line %d, column %d: %q is not an integer", line, col+1, tok)
			}
			row[col] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read matrix")
	}

	return New(rows)
}
