package fib

// Walk produces successive Fibonacci terms. Term must be called with
// strictly increasing indices starting at 0; it is not random-access.
// A Walk is not safe for concurrent use.
type Walk struct {
	first  uint64
	second uint64
	last   uint64
}

// NewWalk returns a walk seeded with F(0)=0 and F(1)=1.
func NewWalk() *Walk {
	w := &Walk{}
	w.Reset()
	return w
}

// Reset puts the walk back at the start of the sequence.
func (w *Walk) Reset() {
	w.first, w.second, w.last = 0, 1, 0
}

// Term returns F(index). When reset is set the walk restarts first.
// Indices above MaxIndex yield 0 and leave the walk where it was.
func (w *Walk) Term(index uint64, reset bool) uint64 {
	if reset {
		w.Reset()
	}
	if index > MaxIndex {
		w.last = 0
		return 0
	}
	if index <= 1 {
		w.last = index
		return w.last
	}
	w.last = w.first + w.second
	w.first, w.second = w.second, w.last
	return w.last
}

// Last returns the term produced by the most recent call to Term.
func (w *Walk) Last() uint64 {
	return w.last
}

// Sequence returns F(0) through F(count-1) from a fresh walk.
func Sequence(count uint64) []uint64 {
	if count > MaxIndex+1 {
		count = MaxIndex + 1
	}
	terms := make([]uint64, 0, count)
	w := NewWalk()
	for i := uint64(0); i < count; i++ {
		terms = append(terms, w.Term(i, i == 0))
	}
	return terms
}
