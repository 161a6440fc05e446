// Package batch hashes many sources at once on a bounded worker pool.
//
// Each source is an independent digest computation, so sources are read and
// hashed in parallel; results always come back in the order the sources were
// given.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"

	"github.com/nemuizzz/sha2sum/pkg/sha2"
)

// DefaultWorkers is the pool size used when Config.Workers is not set
const DefaultWorkers = 4

// Error definitions
var (
	ErrInvalidWorkers = errors.New("worker count must be greater than zero")
	ErrRunnerReleased = errors.New("runner has been released")
)

// SourceReader loads a source fully into memory
type SourceReader interface {
	Read(ctx context.Context, source string) ([]byte, error)
}

// Result is the outcome for one source
type Result struct {
	Source  string        `json:"source"`
	Variant string        `json:"variant"`
	Digest  string        `json:"digest,omitempty"`
	Size    int           `json:"size"`
	Blocks  int           `json:"blocks,omitempty"`
	Elapsed time.Duration `json:"-"`
	Error   string        `json:"error,omitempty"`
	Err     error         `json:"-"`
}

// Config holds the configuration for a Runner
type Config struct {
	Variant sha2.Variant
	Workers int
}

// DefaultConfig returns a SHA-256 configuration with DefaultWorkers workers
func DefaultConfig() *Config {
	return &Config{
		Variant: sha2.SHA256,
		Workers: DefaultWorkers,
	}
}

// Runner hashes sources with a fixed variant
type Runner struct {
	config   Config
	reader   SourceReader
	pool     *ants.Pool
	mu       sync.RWMutex
	released bool
}

// NewRunner creates a Runner reading sources through reader
func NewRunner(reader SourceReader, config *Config) (*Runner, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if !config.Variant.Valid() {
		return nil, sha2.ErrUnknownVariant
	}
	if config.Workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	pool, err := ants.NewPool(config.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "creating worker pool")
	}

	return &Runner{
		config: *config,
		reader: reader,
		pool:   pool,
	}, nil
}

// Run hashes every source and returns one Result per source, in order.
// A failing source is reported in its Result and does not stop the others.
func (r *Runner) Run(ctx context.Context, sources []string) []Result {
	results := make([]Result, len(sources))

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.released {
		for i, source := range sources {
			results[i] = r.failed(source, ErrRunnerReleased)
		}
		return results
	}

	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			results[i] = r.Hash(ctx, source)
		})
		if err != nil {
			wg.Done()
			results[i] = r.failed(source, errors.Wrap(err, "scheduling"))
		}
	}
	wg.Wait()

	return results
}

// Hash reads and hashes a single source on the calling goroutine
func (r *Runner) Hash(ctx context.Context, source string) Result {
	start := time.Now()

	data, err := r.reader.Read(ctx, source)
	if err != nil {
		return r.failed(source, err)
	}

	digest, err := sha2.Sum(r.config.Variant, data)
	if err != nil {
		return r.failed(source, err)
	}

	return Result{
		Source:  source,
		Variant: r.config.Variant.String(),
		Digest:  digest,
		Size:    len(data),
		Blocks:  sha2.Blocks(len(data)),
		Elapsed: time.Since(start),
	}
}

// Variant returns the variant this Runner hashes with
func (r *Runner) Variant() sha2.Variant {
	return r.config.Variant
}

// Release stops the worker pool. Later calls to Run fail every source.
func (r *Runner) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.released = true
	r.pool.Release()
}

func (r *Runner) failed(source string, err error) Result {
	return Result{
		Source:  source,
		Variant: r.config.Variant.String(),
		Error:   err.Error(),
		Err:     err,
	}
}

// Failed counts the results that carry an error
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
