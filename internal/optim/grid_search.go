package optim

import (
	"context"
	"fmt"
	"math"
)

// GridSearch evaluates a scoring function over a fixed set of
// candidate values and keeps the minimizer.
type GridSearch struct {
	values []float64
}

func NewGridSearch(values []float64) *GridSearch {
	return &GridSearch{values: values}
}

// Range builds n evenly spaced candidates across [lo, hi] inclusive.
func Range(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	step := (hi - lo) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = lo + float64(i)*step
	}
	return values
}

// Search scores every candidate and returns the best value with its
// score. Candidates whose evaluation fails are skipped; Search fails
// only when every candidate does.
func (g *GridSearch) Search(ctx context.Context, evaluate func(v float64) (float64, error)) (float64, float64, error) {
	best := math.Inf(1)
	bestValue := 0.0
	evaluated := 0
	var lastErr error

	for _, v := range g.values {
		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		default:
		}

		score, err := evaluate(v)
		if err != nil {
			lastErr = err
			continue
		}
		evaluated++
		if score < best {
			best = score
			bestValue = v
		}
	}

	if evaluated == 0 {
		if lastErr != nil {
			return 0, 0, lastErr
		}
		return 0, 0, fmt.Errorf("no candidates to evaluate")
	}
	return bestValue, best, nil
}
