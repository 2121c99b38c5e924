package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type state int

const (
	stateAwaitingChoice state = iota
	stateTerminated
)

type choice int

const (
	choiceConvert choice = iota + 1
	choiceList
	choiceUpdate
	choiceExit
)

const menu = `
Main Menu:
1. Convert Currency
2. View All Supported Currencies
3. Update Exchange Rate
4. Exit
`

// Session drives the interactive menu over a single rate table.
type Session struct {
	id      string
	in      io.Reader
	out     io.Writer
	prompt  *prompter
	service Service
	logger  *slog.Logger
	state   state
}

type Options struct {
	Metrics Metrics
	Logger  *slog.Logger
}

type Option func(o *Options)

func WithMetrics(m Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func NewSession(in io.Reader, out io.Writer, service Service, opts ...Option) *Session {
	options := Options{
		Metrics: nopMetrics{},
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	id := uuid.NewString()

	return &Session{
		id:      id,
		in:      in,
		out:     out,
		prompt:  newPrompter(in, out, options.Metrics),
		service: service,
		logger:  options.Logger.With("session_id", id),
		state:   stateAwaitingChoice,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Run loops until the user exits or the input ends. Errors from an action
// are reported and the loop continues; only a failed read of the input is returned.
func (s *Session) Run(ctx context.Context) error {
	const op = "cli.Session.Run"

	s.logger.Debug("Session started")

	fmt.Fprintln(s.out, "Currency Converter (Manual Rates)")
	fmt.Fprintln(s.out, "---------------------------------")

	for s.state != stateTerminated {
		s.state = s.step(ctx)
	}

	if err := s.prompt.err(); err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

func (s *Session) step(ctx context.Context) state {
	fmt.Fprint(s.out, menu)

	n, err := s.prompt.readInt("Enter your choice (1-4): ", int(choiceConvert), int(choiceExit))
	if err != nil {
		return s.terminate(err)
	}

	var actionErr error
	switch choice(n) {
	case choiceConvert:
		actionErr = s.convert(ctx)
	case choiceList:
		actionErr = s.list(ctx)
	case choiceUpdate:
		actionErr = s.updateRate(ctx)
	case choiceExit:
		return s.terminate(nil)
	}

	if errors.Is(actionErr, errInputClosed) {
		return s.terminate(actionErr)
	}
	if actionErr != nil {
		s.logger.Debug("Action failed", "choice", n, "error", actionErr.Error())
		fmt.Fprintln(s.out, "Error: "+actionErr.Error())
		s.prompt.discardLine()
	}

	return stateAwaitingChoice
}

func (s *Session) terminate(cause error) state {
	if cause == nil {
		fmt.Fprintln(s.out, "Exiting currency converter. Goodbye!")
	} else {
		fmt.Fprintln(s.out)
		if err := s.prompt.err(); err != nil {
			s.logger.Debug("Input closed", "error", err.Error())
		} else {
			s.logger.Debug("Input closed")
		}
	}

	if closer, ok := s.in.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			s.logger.Warn("Failed to close input", "error", err.Error())
		}
	}

	s.logger.Debug("Session terminated")

	return stateTerminated
}

func (s *Session) convert(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nCurrency Conversion")
	fmt.Fprintln(s.out, "-------------------")

	amount, err := s.prompt.readNonNegativeFloat("Enter amount to convert: ")
	if err != nil {
		return err
	}

	from, err := s.prompt.readCurrency(ctx, "Enter source currency code: ", s.service)
	if err != nil {
		return err
	}

	to, err := s.prompt.readCurrency(ctx, "Enter target currency code: ", s.service)
	if err != nil {
		return err
	}

	converted, err := s.service.Convert(ctx, amount, from, to)
	if err != nil {
		return err
	}

	rate, err := s.service.ExchangeRate(ctx, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nConversion Result:")
	fmt.Fprintf(s.out, "%s %s = %s %s\n", FormatAmount(amount), from, FormatAmount(converted), to)
	fmt.Fprintf(s.out, "Exchange Rate: 1 %s = %s %s\n", from, FormatRate(rate), to)

	return nil
}

func (s *Session) list(ctx context.Context) error {
	rates, err := s.service.ListRates(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nSupported Currencies:")
	fmt.Fprint(s.out, listHeader)
	fmt.Fprint(s.out, listSeparator)
	for _, rate := range rates {
		fmt.Fprint(s.out, FormatRateRow(rate))
	}

	return nil
}

func (s *Session) updateRate(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nUpdate Exchange Rate")
	fmt.Fprintln(s.out, "--------------------")

	code, err := s.prompt.readCurrency(ctx, "Enter currency code to update: ", s.service)
	if err != nil {
		return err
	}

	rate, err := s.prompt.readFloat("Enter new exchange rate (per USD): ")
	if err != nil {
		return err
	}

	if err := s.service.UpdateRate(ctx, code, rate); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Exchange rate for %s updated successfully.\n", code)

	return nil
}
