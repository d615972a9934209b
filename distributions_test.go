package mtrand

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestNormalMoments(t *testing.T) {
	g := NewWithSeed(42)
	const n = 100000

	tests := []struct {
		mu, sigma float64
	}{
		{0, 1},
		{10, 2.5},
		{-3, 0.1},
	}

	for _, tt := range tests {
		samples := make([]float64, n)
		for i := range samples {
			v, err := g.Normal(tt.mu, tt.sigma)
			if err != nil {
				t.Fatal(err)
			}
			samples[i] = v
		}
		mean, std := stat.MeanStdDev(samples, nil)
		if math.Abs(mean-tt.mu) > 0.02*tt.sigma+1e-9 {
			t.Errorf("N(%v, %v): mean %.4f", tt.mu, tt.sigma, mean)
		}
		if math.Abs(std-tt.sigma) > 0.02*tt.sigma {
			t.Errorf("N(%v, %v): stddev %.4f", tt.mu, tt.sigma, std)
		}
	}
}

func TestNormalZeroSigma(t *testing.T) {
	g := NewWithSeed(1)
	v, err := g.Normal(4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 4 {
		t.Errorf("N(4, 0) = %v, expected 4", v)
	}
}

func TestNormalInvalid(t *testing.T) {
	g := NewWithSeed(1)
	for _, sigma := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := g.Normal(0, sigma); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Normal(0, %v) error = %v", sigma, err)
		}
	}
	if g.Index() != StateSize {
		t.Error("invalid normal consumed words")
	}
}

func TestExponential(t *testing.T) {
	g := NewWithSeed(7)
	const n = 100000
	const rate = 2.0

	samples := make([]float64, n)
	for i := range samples {
		v, err := g.Exponential(rate)
		if err != nil {
			t.Fatal(err)
		}
		if v < 0 || math.IsInf(v, 0) {
			t.Fatalf("Exponential(%v) = %v", rate, v)
		}
		samples[i] = v
	}
	if mean := stat.Mean(samples, nil); math.Abs(mean-1/rate) > 0.01 {
		t.Errorf("exponential mean %.4f, expected %.4f", mean, 1/rate)
	}

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := g.Exponential(bad); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Exponential(%v) error = %v", bad, err)
		}
	}
}

func TestPoissonMoments(t *testing.T) {
	g := NewWithSeed(99)
	const n = 50000

	for _, mean := range []float64{0.5, 3, 20, 1200} {
		samples := make([]float64, n)
		for i := range samples {
			k, err := g.Poisson(mean)
			if err != nil {
				t.Fatal(err)
			}
			samples[i] = float64(k)
		}
		m, v := stat.MeanVariance(samples, nil)
		tol := 5 * math.Sqrt(mean/n)
		if math.Abs(m-mean) > tol {
			t.Errorf("Poisson(%v): mean %.4f (tolerance %.4f)", mean, m, tol)
		}
		if math.Abs(v-mean)/mean > 0.05 {
			t.Errorf("Poisson(%v): variance %.4f", mean, v)
		}
	}
}

func TestPoissonZeroMean(t *testing.T) {
	g := NewWithSeed(5)
	for range 100 {
		k, err := g.Poisson(0)
		if err != nil {
			t.Fatal(err)
		}
		if k != 0 {
			t.Fatalf("Poisson(0) = %d", k)
		}
	}
	if g.Index() != StateSize {
		t.Errorf("Poisson(0) consumed words: index %d", g.Index())
	}
}

func TestPoissonInvalid(t *testing.T) {
	g := NewWithSeed(5)
	for _, bad := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		if _, err := g.Poisson(bad); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Poisson(%v) error = %v", bad, err)
		}
	}
}

func TestExpFloat64Positive(t *testing.T) {
	g := NewWithSeed(17)
	for range 10000 {
		if v := g.ExpFloat64(); v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("ExpFloat64() = %v", v)
		}
	}
}

func BenchmarkNormal(b *testing.B) {
	g := NewWithSeed(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Normal(0, 1)
	}
}

func BenchmarkPoisson(b *testing.B) {
	g := NewWithSeed(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Poisson(4)
	}
}

// knuthPoisson is the textbook multiplication loop, drawing open uniforms
// from ref.
func knuthPoisson(ref *Generator, mean float64) uint64 {
	l := math.Exp(-mean)
	var k uint64
	p := 1.0
	for {
		p *= ref.openFloat64()
		if p < l {
			return k
		}
		k++
	}
}

func TestPoissonMatchesKnuth(t *testing.T) {
	g := NewWithSeed(21)
	for _, mean := range []float64{0.5, 3, 20, 150} {
		for i := range 1000 {
			ref := g.Clone()
			want := knuthPoisson(ref, mean)
			got, err := g.Poisson(mean)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("Poisson(%v) draw %d = %d, expected %d", mean, i, got, want)
			}
			if g.Index() != ref.Index() {
				t.Fatalf("Poisson(%v) draw %d consumed a different number of words", mean, i)
			}
		}
	}
}

func TestNormalUsesOpenUniforms(t *testing.T) {
	g := NewWithSeed(22)
	for range 1000 {
		ref := g.Clone()
		u1, u2 := ref.openFloat64(), ref.openFloat64()
		want := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		if got := g.NormFloat64(); got != want {
			t.Fatalf("NormFloat64 = %v, expected %v", got, want)
		}
	}
}
