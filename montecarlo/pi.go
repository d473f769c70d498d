package montecarlo

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidCount is returned for a non-positive number of points.
var ErrInvalidCount = errors.New("montecarlo: number of points must be positive")

const (
	// z score of a two sided 95% normal interval
	z95 = 1.96
	// minimum sample size for the error analysis
	analysisThreshold = 100
	chunkSize         = 4096
)

// PiEstimate is the result of EstimatePi. StdDev, CILow, CIHigh and
// ErrorRatio are only set when HasErrorAnalysis is true.
type PiEstimate struct {
	N        int     `json:"n"`
	Inside   int     `json:"inside"`
	Estimate float64 `json:"estimate"`
	AbsError float64 `json:"abs_error"`
	RelError float64 `json:"rel_error"` // relative to math.Pi, as a fraction

	HasErrorAnalysis bool    `json:"has_error_analysis"`
	StdDev           float64 `json:"std_dev,omitempty"`
	CILow            float64 `json:"ci_low,omitempty"`
	CIHigh           float64 `json:"ci_high,omitempty"`
	// ErrorRatio is StdDev / AbsError, +Inf when the estimate is exact.
	ErrorRatio float64 `json:"-"`
}

// EstimatePi draws n points uniformly from [-1,1]x[-1,1] and estimates π from
// the share that falls inside the unit circle.
func EstimatePi(rng *rand.Rand, n int) (PiEstimate, error) {
	if n <= 0 {
		return PiEstimate{}, ErrInvalidCount
	}
	if rng == nil {
		return PiEstimate{}, errors.New("montecarlo: random source is nil")
	}

	inside := countInside(rng, n)
	est := PiEstimate{
		N:        n,
		Inside:   inside,
		Estimate: 4 * float64(inside) / float64(n),
	}
	est.AbsError = math.Abs(est.Estimate - math.Pi)
	est.RelError = est.AbsError / math.Pi

	if n > analysisThreshold {
		p := float64(inside) / float64(n)
		est.HasErrorAnalysis = true
		est.StdDev = 4 * math.Sqrt(p*(1-p)/float64(n))
		est.CILow = est.Estimate - z95*est.StdDev
		est.CIHigh = est.Estimate + z95*est.StdDev
		if est.AbsError > 0 {
			est.ErrorRatio = est.StdDev / est.AbsError
		} else {
			est.ErrorRatio = math.Inf(1)
		}
	}
	return est, nil
}

// Covers reports whether the confidence interval contains v.
func (e PiEstimate) Covers(v float64) bool {
	return e.HasErrorAnalysis && e.CILow <= v && v <= e.CIHigh
}

func countInside(rng *rand.Rand, n int) int {
	size := chunkSize
	if n < size {
		size = n
	}
	x := make([]float64, size)
	y := make([]float64, size)
	inUnit := func(v float64) bool { return v <= 1 }

	inside := 0
	for left := n; left > 0; left -= size {
		if left < size {
			x, y = x[:left], y[:left]
		}
		for i := range x {
			x[i] = 2*rng.Float64() - 1
			y[i] = 2*rng.Float64() - 1
		}
		floats.Mul(x, x)
		floats.Mul(y, y)
		floats.Add(x, y)
		inside += floats.Count(inUnit, x)
	}
	return inside
}
