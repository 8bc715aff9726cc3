package ladder

import "math"

// Stopping pairs a starting value with its stopping time.
type Stopping struct {
	N     uint64 `json:"n"`
	Steps int    `json:"steps"`
}

// next applies one plain Collatz step.
func next(n uint64) (uint64, error) {
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > (math.MaxUint64-1)/3 {
		return 0, overflow("sequence", n, "3n+1 exceeds 64 bits")
	}
	return 3*n + 1, nil
}

// Sequence returns n, f(n), f(f(n)), ... ending at the first 1.
func Sequence(n uint64) ([]uint64, error) {
	if n < 1 {
		return nil, invalidInput("sequence", n, "start must be at least 1")
	}
	seq := []uint64{n}
	for n != 1 {
		var err error
		if n, err = next(n); err != nil {
			return seq, err
		}
		seq = append(seq, n)
	}
	return seq, nil
}

// StoppingTime counts the steps needed to reach 1 from n.
func StoppingTime(n uint64) (int, error) {
	if n < 1 {
		return 0, invalidInput("stopping time", n, "start must be at least 1")
	}
	steps := 0
	for n != 1 {
		var err error
		if n, err = next(n); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// StoppingTimeRange returns the stopping time of every n in [lo, hi].
func StoppingTimeRange(lo, hi uint64) ([]Stopping, error) {
	if lo < 1 {
		return nil, invalidInput("stopping range", lo, "lower bound must be at least 1")
	}
	if lo > hi {
		return nil, invalidInput("stopping range", lo, "lower bound exceeds upper bound %d", hi)
	}
	out := make([]Stopping, 0, min(hi-lo+1, 1<<16))
	for n := lo; ; n++ {
		steps, err := StoppingTime(n)
		if err != nil {
			return out, err
		}
		out = append(out, Stopping{N: n, Steps: steps})
		if n == hi {
			break
		}
	}
	return out, nil
}
