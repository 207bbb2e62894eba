package vectors

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahdiidarabi/ed25519ref/internal/workpool"
)

// Harness parses vector files and checks every vector against ed25519ref.
type Harness struct {
	parser VectorParser
	config Config
	log    zerolog.Logger
}

// NewHarness creates a harness for sign.input files with default settings.
func NewHarness() *Harness {
	return &Harness{
		parser: &LineParser{},
		config: DefaultConfig(),
		log:    zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger(),
	}
}

// WithParser sets a custom vector parser.
func (h *Harness) WithParser(parser VectorParser) *Harness {
	h.parser = parser
	return h
}

// WithConfig sets the run configuration.
func (h *Harness) WithConfig(config Config) *Harness {
	h.config = config
	return h
}

// WithLogger sets the logger used for progress and failures.
func (h *Harness) WithLogger(log zerolog.Logger) *Harness {
	h.log = log
	return h
}

// Run parses source and checks every vector in it.
//
// Args:
//   - ctx: Context for cancellation.
//   - source: Path to a vector file in the parser's format.
//
// Returns:
//   - Report of the run; the error is non-nil if parsing failed, the run was
//     cancelled, or (with FailFast) a vector failed.
func (h *Harness) Run(ctx context.Context, source string) (*Report, error) {
	vectors, err := h.parser.ParseVectors(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vectors: %w", err)
	}
	h.log.Info().Str("source", source).Int("vectors", len(vectors)).Msg("Loaded vectors")
	return h.RunVectors(ctx, vectors)
}

// RunVectors checks already parsed vectors.
func (h *Harness) RunVectors(ctx context.Context, vectors []*Vector) (*Report, error) {
	start := time.Now()
	report := &Report{Total: len(vectors)}

	var mu sync.Mutex
	job := func(ctx context.Context, i int) error {
		v := vectors[i]
		err := Check(v, h.config.CrossCheck)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.Failed++
			report.Failures = append(report.Failures, Failure{Line: v.Line, Err: err})
			h.log.Error().Int("line", v.Line).Err(err).Msg("Vector failed")
			return fmt.Errorf("vector %d: %w", v.Line, err)
		}
		report.Passed++
		h.log.Debug().Int("line", v.Line).Int("message_len", len(v.Message)).Msg("Vector passed")
		return nil
	}

	_, err := workpool.Run(ctx, len(vectors), job, workpool.Options{
		Workers:          h.config.Workers,
		FailFast:         h.config.FailFast,
		ProgressInterval: h.config.ProgressInterval,
		Progress: func(done int64) {
			h.log.Info().Int64("done", done).Int("total", len(vectors)).Msg("Progress")
		},
	})

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Line < report.Failures[j].Line
	})
	report.Elapsed = time.Since(start)

	h.log.Info().
		Int("passed", report.Passed).
		Int("failed", report.Failed).
		Int("total", report.Total).
		Dur("elapsed", report.Elapsed).
		Msg("Vector run finished")

	if h.config.FailFast || ctx.Err() != nil {
		return report, err
	}
	return report, nil
}
