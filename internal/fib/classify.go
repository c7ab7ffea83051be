package fib

import "strconv"

const (
	LabelZero     = "0"
	LabelFizzBuzz = "FizzBuzz"
	LabelBuzz     = "Buzz"
	LabelFizz     = "Fizz"
	LabelBuzzFizz = "BuzzFizz"
)

// Classify labels a term. Divisibility wins over primality.
func Classify(v uint64) string {
	switch {
	case v == 0:
		return LabelZero
	case v%15 == 0:
		return LabelFizzBuzz
	case v%3 == 0:
		return LabelBuzz
	case v%5 == 0:
		return LabelFizz
	case IsPrime(v):
		return LabelBuzzFizz
	default:
		return strconv.FormatUint(v, 10)
	}
}

// IsPrime reports whether v is an odd prime. Even values, 2 included,
// are rejected so F(3) keeps printing as "2".
func IsPrime(v uint64) bool {
	if v <= 1 || v%2 == 0 {
		return false
	}
	for i := uint64(3); i <= v/i; i += 2 {
		if v%i == 0 {
			return false
		}
	}
	return true
}
