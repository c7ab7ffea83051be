// Package cli dispatches the fibfizz command line.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/aaron-oconnor/Fibonacci/internal/fib"
)

const (
	progName = "fibfizz"
	testFlag = "--test"
)

var (
	ErrUsage        = errors.New("incorrect number of inputs")
	ErrInvalidInput = errors.New("invalid input")
	ErrUpperLimit   = errors.New("upper limit exceeded")
)

// Run executes one invocation with args (program name excluded) and
// returns the process exit code. All output, errors included, goes to w.
func Run(args []string, w io.Writer) int {
	if err := run(args, w); err != nil {
		printError(w, err)
		return exitCode(err)
	}
	return 0
}

func run(args []string, w io.Writer) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if args[0] == testFlag {
		SelfTest(w)
		return nil
	}

	count, err := fib.ParseCount(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if count > fib.MaxIndex {
		return fmt.Errorf("%w: %d > %d", ErrUpperLimit, count, fib.MaxIndex)
	}

	bw := bufio.NewWriter(w)
	for _, v := range fib.Sequence(count) {
		fmt.Fprintln(bw, fib.Classify(v))
	}
	return bw.Flush()
}

// exitCode keeps the historical contract: only the upper limit error
// fails the process.
func exitCode(err error) int {
	if errors.Is(err, ErrUpperLimit) {
		return -1
	}
	return 0
}

func printError(w io.Writer, err error) {
	switch {
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(w, "incorrect number of inputs")
		fmt.Fprintf(w, "enter %s %s to test the functions\n", progName, testFlag)
		fmt.Fprintf(w, "enter %s x to calculate the first x fibonacci numbers\n", progName)
		fmt.Fprintf(w, "for example: %s 10 to calculate the first 10 numbers\n", progName)
	case errors.Is(err, ErrInvalidInput):
		fmt.Fprintln(w, "the input must be a whole number greater than 0")
		fmt.Fprintf(w, "for example: %s 10 to calculate the first 10 numbers\n", progName)
	case errors.Is(err, ErrUpperLimit):
		fmt.Fprintf(w, "the largest fibonacci number that can be calculated is %d\n", fib.MaxIndex)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
