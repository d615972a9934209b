// Command mtrand draws values from a Mersenne Twister generator and writes
// them to CSV, or runs statistical checks on the stream.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/nozzle/mtrand"
	"github.com/nozzle/mtrand/internal/parallel"
	"github.com/nozzle/mtrand/quality"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

type options struct {
	kind   string
	n      int
	min    int
	max    int
	mu     float64
	sigma  float64
	rate   float64
	mean   float64
	p      float64
	length int
}

func main() {
	// Parse command-line flags
	outputFile := flag.String("output", "-", "Output CSV file (- for stdout)")
	seed := flag.Uint("seed", 5489, "Random seed")
	entropy := flag.Bool("entropy", false, "Seed from system entropy instead of -seed")
	width := flag.Int("width", 32, "Word width in bits for -kind word (32 or 64)")
	stateIn := flag.String("state-in", "", "Resume from a saved generator state")
	stateOut := flag.String("state-out", "", "Save the generator state after drawing")
	check := flag.Bool("check", false, "Run goodness-of-fit checks instead of drawing")
	survey := flag.Int("survey", 0, "Run a uniformity survey over this many seeds")
	verbose := flag.Bool("verbose", false, "Verbose output")

	var opts options
	flag.StringVar(&opts.kind, "kind", "u32", "Value kind: u32, word, int, float, bool, char, string, bytes, normal, exp, poisson")
	flag.IntVar(&opts.n, "n", 10, "Number of values")
	flag.IntVar(&opts.min, "min", 1, "Lower bound for -kind int")
	flag.IntVar(&opts.max, "max", 100, "Upper bound for -kind int")
	flag.Float64Var(&opts.mu, "mu", 0, "Mean for -kind normal")
	flag.Float64Var(&opts.sigma, "sigma", 1, "Standard deviation for -kind normal")
	flag.Float64Var(&opts.rate, "rate", 1, "Rate for -kind exp")
	flag.Float64Var(&opts.mean, "mean", 4, "Mean for -kind poisson")
	flag.Float64Var(&opts.p, "p", 0.5, "Probability for -kind bool")
	flag.IntVar(&opts.length, "length", 16, "Length for -kind string and bytes")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	first, err := seedValue(*seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid seed")
	}

	if *survey > 0 {
		runSurvey(log, *survey, first)
		return
	}

	// Configure generator
	config := mtrand.DefaultConfig()
	config.Seed = first
	config.WordWidth = *width
	if *entropy {
		config.Entropy = mtrand.SystemEntropy{}
	}

	g, err := mtrand.NewFromConfig(config)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if *stateIn != "" {
		if err := loadState(g, *stateIn); err != nil {
			log.Fatal().Err(err).Str("file", *stateIn).Msg("loading state")
		}
	}
	log.Debug().Stringer("generator", g).Msg("generator ready")

	if *check {
		runChecks(log, g, opts.n)
		return
	}

	rows, values, err := draw(g, opts)
	if err != nil {
		log.Fatal().Err(err).Str("kind", opts.kind).Msg("drawing values")
	}

	if err := saveCSV(*outputFile, rows); err != nil {
		log.Fatal().Err(err).Msg("saving output")
	}

	if len(values) > 1 {
		mean, std := stat.MeanStdDev(values, nil)
		log.Debug().Int("n", len(values)).Float64("mean", mean).Float64("stddev", std).Msg("sample summary")
	}

	if *stateOut != "" {
		if err := saveState(g, *stateOut); err != nil {
			log.Fatal().Err(err).Str("file", *stateOut).Msg("saving state")
		}
		log.Debug().Str("file", *stateOut).Int("index", g.Index()).Msg("saved state")
	}
}

// seedValue narrows the -seed flag to a 32-bit seed.
func seedValue(v uint) (uint32, error) {
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("seed %d exceeds %d", v, uint32(math.MaxUint32))
	}
	return uint32(v), nil
}

// draw produces n CSV rows of the requested kind. Numeric kinds also return
// their values for the summary.
func draw(g *mtrand.Generator, opts options) ([][]string, []float64, error) {
	rows := make([][]string, 0, opts.n)
	var values []float64

	for range opts.n {
		var cell string
		var v float64
		numeric := true

		switch opts.kind {
		case "u32":
			u := g.Uint32()
			cell, v = strconv.FormatUint(uint64(u), 10), float64(u)
		case "word":
			w := g.Word()
			cell, v = strconv.FormatUint(w, 10), float64(w)
		case "int":
			i, err := g.Int(opts.min, opts.max)
			if err != nil {
				return nil, nil, err
			}
			cell, v = strconv.Itoa(i), float64(i)
		case "float":
			v = g.Float64()
			cell = strconv.FormatFloat(v, 'f', -1, 64)
		case "normal":
			x, err := g.Normal(opts.mu, opts.sigma)
			if err != nil {
				return nil, nil, err
			}
			cell, v = strconv.FormatFloat(x, 'f', -1, 64), x
		case "exp":
			x, err := g.Exponential(opts.rate)
			if err != nil {
				return nil, nil, err
			}
			cell, v = strconv.FormatFloat(x, 'f', -1, 64), x
		case "poisson":
			k, err := g.Poisson(opts.mean)
			if err != nil {
				return nil, nil, err
			}
			cell, v = strconv.FormatUint(k, 10), float64(k)
		case "bool":
			b, err := g.Bool(opts.p)
			if err != nil {
				return nil, nil, err
			}
			cell = strconv.FormatBool(b)
			if b {
				v = 1
			}
		case "char":
			cell, numeric = string(g.Char()), false
		case "string":
			cell, numeric = g.Alphanumeric(opts.length), false
		case "bytes":
			cell, numeric = fmt.Sprintf("%x", g.Bytes(opts.length)), false
		default:
			return nil, nil, fmt.Errorf("unknown kind %q", opts.kind)
		}

		rows = append(rows, []string{cell})
		if numeric {
			values = append(values, v)
		}
	}

	return rows, values, nil
}

// runChecks runs each goodness-of-fit check on its own spawned generator.
func runChecks(log zerolog.Logger, g *mtrand.Generator, n int) {
	if n < 1000 {
		n = 100000
	}

	gens := []*mtrand.Generator{g.Spawn(), g.Spawn(), g.Spawn(), g.Spawn()}
	reports := make([]quality.Report, len(gens))

	err := parallel.Run(context.Background(),
		func(context.Context) (err error) {
			reports[0], err = quality.Uniformity(gens[0], n, 10)
			return err
		},
		func(context.Context) (err error) {
			reports[1], err = quality.NormalFit(gens[1], n, 0, 1)
			return err
		},
		func(context.Context) (err error) {
			reports[2], err = quality.ExponentialFit(gens[2], n, 1)
			return err
		},
		func(context.Context) (err error) {
			reports[3], err = quality.PoissonFit(gens[3], n, 4)
			return err
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("check failed to run")
	}

	failed := false
	for _, r := range reports {
		ev := log.Info()
		if !r.Passed(0.001) {
			ev = log.Warn()
			failed = true
		}
		ev.Str("check", r.Name).
			Int("n", r.N).
			Float64("statistic", r.Statistic).
			Float64("p", r.PValue).
			Msg("goodness of fit")
	}
	if failed {
		os.Exit(1)
	}
}

func runSurvey(log zerolog.Logger, seeds int, first uint32) {
	config := quality.DefaultSurveyConfig()
	config.Seeds = make([]uint32, seeds)
	for i := range config.Seeds {
		config.Seeds[i] = first + uint32(i)
	}
	config.ProgressCallback = func(done, total int) {
		log.Debug().Int("done", done).Int("total", total).Msg("survey progress")
	}

	rejected := 0
	for _, r := range quality.Survey(config) {
		if r.Err != nil {
			log.Fatal().Err(r.Err).Uint32("seed", r.Seed).Msg("survey failed")
		}
		if !r.Passed(0.001) {
			rejected++
			log.Warn().Uint32("seed", r.Seed).Float64("p", r.PValue).Msg("uniformity rejected")
		}
	}
	log.Info().Int("seeds", seeds).Int("rejected", rejected).Msg("survey complete")
}

func loadState(g *mtrand.Generator, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var s mtrand.State
	if err := s.UnmarshalBinary(data); err != nil {
		return err
	}
	return g.SetState(s)
}

func saveState(g *mtrand.Generator, filename string) error {
	data, err := g.State().MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// saveCSV writes one value per row to filename, or stdout for "-".
func saveCSV(filename string, rows [][]string) error {
	var w io.Writer = os.Stdout
	if filename != "-" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
