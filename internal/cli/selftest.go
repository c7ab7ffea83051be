package cli

import (
	"fmt"
	"io"

	"github.com/aaron-oconnor/Fibonacci/internal/fib"
)

type check struct {
	name string
	// run reports whether the check passed and, on failure, what came back.
	run func() (bool, string)
}

// SelfTest runs the built-in checks, reports each one to w and returns the
// number that failed.
func SelfTest(w io.Writer) int {
	fmt.Fprintln(w, "running tests")

	failed := 0
	failed += runGroup(w, "inputValid", parseChecks())
	failed += runGroup(w, "calculateFibonacci", walkChecks())
	failed += runGroup(w, "isPrime", primeChecks())

	fmt.Fprintln(w)
	if failed == 0 {
		fmt.Fprintln(w, "All tests passed")
	} else {
		fmt.Fprintf(w, "Failed %d test(s)\n", failed)
	}
	return failed
}

func runGroup(w io.Writer, group string, checks []check) int {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "testing %s ..\n", group)

	failed := 0
	for _, c := range checks {
		ok, got := c.run()
		if ok {
			fmt.Fprintf(w, "    %-16s: pass\n", c.name)
			continue
		}
		failed++
		fmt.Fprintf(w, "    %-16s: fail ** (returned %s)\n", c.name, got)
	}
	return failed
}

func parseChecks() []check {
	rejects := func(in string) check {
		return check{"input " + in, func() (bool, string) {
			n, err := fib.ParseCount(in)
			return err != nil, fmt.Sprint(n)
		}}
	}
	accepts := func(in string, want uint64) check {
		return check{"input " + in, func() (bool, string) {
			n, err := fib.ParseCount(in)
			if err != nil {
				return false, err.Error()
			}
			return n == want, fmt.Sprint(n)
		}}
	}
	return []check{
		rejects("-1"),
		rejects("0"),
		accepts("1", 1),
		accepts("100", 100),
		rejects("abc"),
	}
}

func walkChecks() []check {
	const last = 100
	terms := make([]uint64, last+1)
	w := fib.NewWalk()
	for i := uint64(0); i <= last; i++ {
		terms[i] = w.Term(i, i == 0)
	}

	term := func(index int, want uint64) check {
		return check{fmt.Sprintf("fibonacci %d", index), func() (bool, string) {
			return terms[index] == want, fmt.Sprint(terms[index])
		}}
	}
	return []check{
		term(2, 1),
		term(10, 55),
		term(20, 6765),
		term(40, 102334155),
		term(60, 1548008755920),
		term(100, 0),
	}
}

func primeChecks() []check {
	prime := func(v uint64, want bool) check {
		return check{fmt.Sprintf("prime check %d", v), func() (bool, string) {
			got := fib.IsPrime(v)
			return got == want, fmt.Sprint(got)
		}}
	}
	return []check{
		prime(0, false),
		prime(3, true),
		prime(17, true),
		prime(40, false),
		prime(193, true),
	}
}
