// Package quality provides statistical checks of a Generator's output:
// chi-square uniformity, Kolmogorov–Smirnov fits against the normal and
// exponential distributions, and a chi-square fit of Poisson counts.
//
// The checks draw from the generator they are given, so they advance its
// stream.
package quality

import (
	"fmt"
	"math"
	"sort"

	"github.com/nozzle/mtrand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// minExpected is the smallest expected count allowed in a chi-square bin.
const minExpected = 5

// Report is the outcome of one goodness-of-fit check.
type Report struct {
	// Name identifies the check, e.g. "uniform" or "normal".
	Name string
	// N is the number of samples drawn.
	N int
	// Statistic is the chi-square value or the KS distance D.
	Statistic float64
	// DF is the chi-square degrees of freedom, 0 for KS checks.
	DF int
	// PValue is the probability of a statistic at least this extreme
	// under the hypothesized distribution.
	PValue float64
	// Mean and StdDev summarize the sample.
	Mean   float64
	StdDev float64
}

// Passed reports whether the check does not reject at significance alpha.
func (r Report) Passed(alpha float64) bool {
	return r.PValue >= alpha
}

func (r Report) String() string {
	return fmt.Sprintf("%s: n=%d stat=%.4f df=%d p=%.4f mean=%.5f sd=%.5f",
		r.Name, r.N, r.Statistic, r.DF, r.PValue, r.Mean, r.StdDev)
}

// Uniformity draws n Float64 values and tests them against U[0,1) with a
// chi-square test over equal-width bins.
func Uniformity(g *mtrand.Generator, n, bins int) (Report, error) {
	if bins < 2 || n < bins*minExpected {
		return Report{}, fmt.Errorf("%w: uniformity n %d bins %d", mtrand.ErrInvalidParameter, n, bins)
	}

	samples := make([]float64, n)
	observed := make([]float64, bins)
	for i := range samples {
		u := g.Float64()
		samples[i] = u
		observed[int(u*float64(bins))]++
	}

	expected := make([]float64, bins)
	for i := range expected {
		expected[i] = float64(n) / float64(bins)
	}

	return chiSquareReport("uniform", samples, observed, expected), nil
}

// NormalFit draws n samples from N(mu, sigma²) and measures their KS
// distance from the normal CDF.
func NormalFit(g *mtrand.Generator, n int, mu, sigma float64) (Report, error) {
	if n < 1 || !(sigma > 0) {
		return Report{}, fmt.Errorf("%w: normal fit n %d sigma %v", mtrand.ErrInvalidParameter, n, sigma)
	}

	samples := make([]float64, n)
	for i := range samples {
		v, err := g.Normal(mu, sigma)
		if err != nil {
			return Report{}, err
		}
		samples[i] = v
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	return ksReport("normal", samples, dist.CDF), nil
}

// ExponentialFit draws n samples with the given rate and measures their KS
// distance from the exponential CDF.
func ExponentialFit(g *mtrand.Generator, n int, rate float64) (Report, error) {
	if n < 1 {
		return Report{}, fmt.Errorf("%w: exponential fit n %d", mtrand.ErrInvalidParameter, n)
	}

	samples := make([]float64, n)
	for i := range samples {
		v, err := g.Exponential(rate)
		if err != nil {
			return Report{}, err
		}
		samples[i] = v
	}

	dist := distuv.Exponential{Rate: rate}
	return ksReport("exponential", samples, dist.CDF), nil
}

// PoissonFit draws n Poisson counts and tests them with a chi-square test.
// Sparse bins at both ends are pooled so every bin expects at least five
// counts.
func PoissonFit(g *mtrand.Generator, n int, mean float64) (Report, error) {
	if n < 10*minExpected || !(mean > 0) || math.IsInf(mean, 1) {
		return Report{}, fmt.Errorf("%w: poisson fit n %d mean %v", mtrand.ErrInvalidParameter, n, mean)
	}

	dist := distuv.Poisson{Lambda: mean}
	fn := float64(n)

	// [0, lo] pooled, (lo, hi] individual, (hi, inf) pooled.
	lo := 0
	for fn*dist.CDF(float64(lo)) < minExpected {
		lo++
	}
	hi := lo
	for fn*dist.Prob(float64(hi+1)) >= minExpected && fn*dist.Survival(float64(hi+1)) >= minExpected {
		hi++
	}

	bins := hi - lo + 2
	expected := make([]float64, bins)
	expected[0] = fn * dist.CDF(float64(lo))
	for k := lo + 1; k <= hi; k++ {
		expected[k-lo] = fn * dist.Prob(float64(k))
	}
	expected[bins-1] = fn * dist.Survival(float64(hi))

	samples := make([]float64, n)
	observed := make([]float64, bins)
	for i := range samples {
		c, err := g.Poisson(mean)
		if err != nil {
			return Report{}, err
		}
		samples[i] = float64(c)
		k := int(c)
		switch {
		case k <= lo:
			observed[0]++
		case k > hi:
			observed[bins-1]++
		default:
			observed[k-lo]++
		}
	}

	// Expected counts are scaled to the observed total so pooled rounding
	// does not bias the statistic.
	floats.Scale(floats.Sum(observed)/floats.Sum(expected), expected)

	return chiSquareReport("poisson", samples, observed, expected), nil
}

func chiSquareReport(name string, samples, observed, expected []float64) Report {
	chi2 := stat.ChiSquare(observed, expected)
	df := len(observed) - 1
	mean, std := stat.MeanStdDev(samples, nil)
	return Report{
		Name:      name,
		N:         len(samples),
		Statistic: chi2,
		DF:        df,
		PValue:    distuv.ChiSquared{K: float64(df)}.Survival(chi2),
		Mean:      mean,
		StdDev:    std,
	}
}

func ksReport(name string, samples []float64, cdf func(float64) float64) Report {
	mean, std := stat.MeanStdDev(samples, nil)
	d := ksDistance(samples, cdf)
	return Report{
		Name:      name,
		N:         len(samples),
		Statistic: d,
		PValue:    ksPValue(d, len(samples)),
		Mean:      mean,
		StdDev:    std,
	}
}

// ksDistance returns the one-sample Kolmogorov–Smirnov statistic. It sorts
// samples in place.
func ksDistance(samples []float64, cdf func(float64) float64) float64 {
	sort.Float64s(samples)
	n := float64(len(samples))
	var d float64
	for i, x := range samples {
		f := cdf(x)
		if v := float64(i+1)/n - f; v > d {
			d = v
		}
		if v := f - float64(i)/n; v > d {
			d = v
		}
	}
	return d
}

// ksPValue evaluates the asymptotic Kolmogorov distribution with
// Stephens' small-sample correction.
func ksPValue(d float64, n int) float64 {
	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	// The survival function is 1 to double precision below this point.
	if lambda < 0.2 {
		return 1
	}

	var sum float64
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k*k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}

	p := 2 * sum
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
