package practice

// fixedRand returns pick from IntN (clamped to n-1) and leaves order
// untouched on Shuffle, so option order equals candidates then answer.
type fixedRand struct {
	pick     int
	lastN    int
	shuffleN int
	shuffled bool
}

func (r *fixedRand) IntN(n int) int {
	r.lastN = n
	if r.pick >= n {
		return n - 1
	}
	return r.pick
}

func (r *fixedRand) Shuffle(n int, _ func(i, j int)) {
	r.shuffleN = n
	r.shuffled = true
}

// reverseRand reverses the slice on Shuffle.
type reverseRand struct{}

func (reverseRand) IntN(int) int { return 0 }

func (reverseRand) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
