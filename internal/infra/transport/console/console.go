package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// Service defines the account operations reachable from the console.
type Service interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Balance() decimal.Decimal
}

// Session reads commands line by line and answers each with one response line.
type Session struct {
	service Service
	in      io.Reader
	out     io.Writer
}

// NewSession creates a new Session instance.
func NewSession(service Service, in io.Reader, out io.Writer) *Session {
	return &Session{
		service: service,
		in:      in,
		out:     out,
	}
}

// Start handles commands until the input is exhausted or the context is cancelled.
// On cancellation the reader goroutine stays parked in Read until in is closed.
func (s *Session) Start(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case <-done:
				return
			case lines <- scanner.Text():
			}
		}
		readErr <- scanner.Err()
	}()

	slog.Info("Console session started")
	defer slog.Info("Console session stopped")

	for {
		select {
		case <-ctx.Done():
			slog.Info("Console session cancelled")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read command: %w", err)
				}
				return nil
			}

			if strings.TrimSpace(line) == "" {
				continue
			}

			// Both cases may be ready at once; a cancelled session applies nothing more.
			if ctx.Err() != nil {
				slog.Info("Console session cancelled")
				return nil
			}

			s.writeResponse(line, s.handleRequest(line))
		}
	}
}

// handleRequest processes a command and returns a corresponding response.
func (s *Session) handleRequest(line string) response {
	r, err := parseRequest(line)
	if err != nil {
		return response{
			status: Rejected,
			reason: err.Error(),
		}
	}

	var reason string
	switch r.operation {
	case opDeposit:
		err = s.service.Deposit(r.amount)
		reason = "deposit processed"
	case opWithdraw:
		err = s.service.Withdraw(r.amount)
		reason = "withdrawal processed"
	case opBalance:
		reason = "balance " + s.service.Balance().String()
	}

	if err != nil {
		return response{
			status: Rejected,
			reason: err.Error(),
		}
	}

	return response{
		status: Accepted,
		reason: reason,
	}
}

// writeResponse sends a response to the session output.
func (s *Session) writeResponse(request string, r response) {
	_, err := fmt.Fprintf(s.out, "%s\n", r)
	if err != nil {
		slog.Error("Failed to write response", "error", err, "request", request, "response", r)
		return
	}
	slog.Debug("Handling request", "request", request, "response", r)
}
