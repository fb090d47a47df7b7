package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hamcycle/tsp"
)

// Prompter asks the user for a 1-based start vertex in [1, n].
// Implementations keep asking until they get a valid answer.
type Prompter interface {
	AskStartVertex(n int) (int, error)
}

// newPrompter picks survey for an interactive terminal and a plain line
// reader for anything else (pipes, files, tests).
func newPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return surveyPrompter{}
	}

	return &linePrompter{in: bufio.NewReader(in), out: out}
}

func promptMessage(n int) string {
	return fmt.Sprintf("Enter the start vertex (1 to %d):", n)
}

// parseVertex accepts a decimal integer in [1, n].
func parseVertex(s string, n int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", strings.TrimSpace(s))
	}
	if v < 1 || v > n {
		return 0, fmt.Errorf("%d is not between 1 and %d", v, n)
	}

	return v, nil
}

type surveyPrompter struct{}

func (surveyPrompter) AskStartVertex(n int) (int, error) {
	var answer string
	in := &survey.Input{Message: promptMessage(n)}
	validate := func(ans interface{}) error {
		s, _ := ans.(string)
		_, err := parseVertex(s, n)

		return err
	}
	if err := survey.AskOne(in, &answer, survey.WithValidator(validate)); err != nil {
		return 0, errors.Wrap(err, "reading start vertex")
	}

	return parseVertex(answer, n)
}

type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *linePrompter) AskStartVertex(n int) (int, error) {
	for {
		fmt.Fprint(p.out, promptMessage(n)+" ")
		line, err := p.in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			v, perr := parseVertex(line, n)
			if perr == nil {
				return v, nil
			}
			fmt.Fprintln(p.out, perr)
		}
		if err != nil {
			if err == io.EOF {
				return 0, errors.Wrap(tsp.ErrInvalidStartVertex, "no start vertex given before end of input")
			}

			return 0, errors.Wrap(err, "reading start vertex")
		}
	}
}
