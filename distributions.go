package mtrand

import (
	"fmt"
	"math"
)

// poissonStep bounds the exponent folded into the Poisson accumulator at a
// time; exp(-500) is still a normal float64.
const poissonStep = 500

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Normal returns a sample from the normal distribution N(mu, sigma²) using
// the Box–Muller transform. It consumes two uniforms per call.
func (g *Generator) Normal(mu, sigma float64) (float64, error) {
	if !finite(mu) || !finite(sigma) || sigma < 0 {
		return 0, fmt.Errorf("%w: normal mu %v sigma %v", ErrInvalidParameter, mu, sigma)
	}
	return mu + sigma*g.NormFloat64(), nil
}

// NormFloat64 returns a standard normal sample (mean 0, stddev 1). Both
// uniforms are drawn from (0, 1).
func (g *Generator) NormFloat64() float64 {
	u1 := g.openFloat64()
	u2 := g.openFloat64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Exponential returns a sample from the exponential distribution with the
// given rate, by inverting the CDF.
func (g *Generator) Exponential(rate float64) (float64, error) {
	if !finite(rate) || rate <= 0 {
		return 0, fmt.Errorf("%w: exponential rate %v", ErrInvalidParameter, rate)
	}
	return -math.Log(g.openFloat64()) / rate, nil
}

// ExpFloat64 returns an exponential sample with rate 1.
func (g *Generator) ExpFloat64() float64 {
	return -math.Log(g.openFloat64())
}

// Poisson returns a sample from the Poisson distribution with the given
// mean using Knuth's multiplication method. A mean of 0 returns 0 without
// drawing.
func (g *Generator) Poisson(mean float64) (uint64, error) {
	if !finite(mean) || mean < 0 {
		return 0, fmt.Errorf("%w: poisson mean %v", ErrInvalidParameter, mean)
	}
	if mean == 0 {
		return 0, nil
	}
	if mean <= poissonStep {
		return g.poissonKnuth(mean), nil
	}
	return g.poissonChunked(mean), nil
}

func (g *Generator) poissonKnuth(mean float64) uint64 {
	l := math.Exp(-mean)
	var k uint64
	p := 1.0
	for {
		k++
		p *= g.openFloat64()
		if p < l {
			return k - 1
		}
	}
}

// poissonChunked is Knuth's method with exp(mean) folded into the
// accumulator in steps, so large means never underflow exp(-mean).
func (g *Generator) poissonChunked(mean float64) uint64 {
	left := mean
	var k uint64
	p := 1.0
	for {
		k++
		p *= g.openFloat64()
		for p < 1 && left > 0 {
			if left > poissonStep {
				p *= math.Exp(poissonStep)
				left -= poissonStep
			} else {
				p *= math.Exp(left)
				left = 0
			}
		}
		if p <= 1 {
			return k - 1
		}
	}
}
