package fib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	assert.False(t, IsPrime(0))
	assert.False(t, IsPrime(1))
	assert.True(t, IsPrime(3))
	assert.True(t, IsPrime(17))
	assert.False(t, IsPrime(40))
	assert.True(t, IsPrime(193))
}

func TestIsPrime_OddComposites(t *testing.T) {
	for _, v := range []uint64{9, 15, 21, 25, 49, 121, 377, 10946 + 1} {
		assert.False(t, IsPrime(v), "%d", v)
	}
}

func TestIsPrime_RejectsEven(t *testing.T) {
	for _, v := range []uint64{2, 4, 8, 144} {
		assert.False(t, IsPrime(v), "%d", v)
	}
}

func TestIsPrime_LargeFibonacciPrimes(t *testing.T) {
	assert.True(t, IsPrime(2971215073))
	assert.True(t, IsPrime(99194853094755497))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "2"},
		{3, "Buzz"},
		{5, "Fizz"},
		{8, "8"},
		{13, "BuzzFizz"},
		{21, "Buzz"},
		{55, "Fizz"},
		{89, "BuzzFizz"},
		{144, "Buzz"},
		{610, "Fizz"},
		{6765, "FizzBuzz"},
		{832040, "Fizz"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.v), "%d", tc.v)
	}
}

func TestClassify_FifteenWinsOverEverything(t *testing.T) {
	for v := uint64(15); v < 15*200; v += 15 {
		assert.Equal(t, LabelFizzBuzz, Classify(v), "%d", v)
	}
}
