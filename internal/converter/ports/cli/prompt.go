package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// errInputClosed is returned by every reader once the input is exhausted.
var errInputClosed = errors.New("input closed")

// prompter reads whitespace separated tokens line by line and reprompts
// until a token is valid. Lines have no length limit.
type prompter struct {
	reader  *bufio.Reader
	pending []string
	closed  bool
	readErr error
	out     io.Writer
	metrics Metrics
	upper   cases.Caser
}

func newPrompter(in io.Reader, out io.Writer, metrics Metrics) *prompter {
	return &prompter{
		reader:  bufio.NewReader(in),
		out:     out,
		metrics: metrics,
		upper:   cases.Upper(language.Und),
	}
}

func (p *prompter) next(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	for len(p.pending) == 0 {
		if p.closed {
			return "", errInputClosed
		}

		line, err := p.reader.ReadString('\n')
		p.pending = strings.Fields(line)
		if err != nil {
			p.closed = true
			if !errors.Is(err, io.EOF) {
				p.readErr = err
			}
		}
	}

	token := p.pending[0]
	p.pending = p.pending[1:]

	return token, nil
}

// discardLine drops the tokens left on the current input line.
func (p *prompter) discardLine() {
	p.pending = nil
}

// err reports the read failure that closed the input, nil on plain end of input.
func (p *prompter) err() error {
	return p.readErr
}

func (p *prompter) reject(kind, message string) {
	p.metrics.InvalidInput(kind)
	fmt.Fprintln(p.out, message)
}

// readInt reads an integer in [min, max].
func (p *prompter) readInt(prompt string, min, max int) (int, error) {
	for {
		token, err := p.next(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			p.reject("integer", "Invalid input. Please enter an integer.")
			continue
		}

		if value < min || value > max {
			p.reject("integer_range", fmt.Sprintf("Please enter a number between %d and %d", min, max))
			continue
		}

		return value, nil
	}
}

// readFloat reads any finite number.
func (p *prompter) readFloat(prompt string) (float64, error) {
	for {
		token, err := p.next(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			p.reject("number", "Invalid input. Please enter a number.")
			continue
		}

		return value, nil
	}
}

// readNonNegativeFloat reads a finite number >= 0.
func (p *prompter) readNonNegativeFloat(prompt string) (float64, error) {
	for {
		value, err := p.readFloat(prompt)
		if err != nil {
			return 0, err
		}

		if value < 0 {
			p.reject("negative_number", "Please enter a non-negative number")
			continue
		}

		return value, nil
	}
}

// readCurrency reads a code present in the rate table, upper-casing the input.
func (p *prompter) readCurrency(ctx context.Context, prompt string, svc Service) (string, error) {
	const op = "cli.readCurrency"

	for {
		token, err := p.next(prompt)
		if err != nil {
			return "", err
		}

		code := p.upper.String(token)

		ok, err := svc.Exists(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, op)
		}
		if ok {
			return code, nil
		}

		codes, err := svc.Codes(ctx)
		if err != nil {
			return "", errors.Wrap(err, op)
		}

		p.reject("currency", "Invalid currency code. Supported codes are: "+strings.Join(codes, ", "))
	}
}
