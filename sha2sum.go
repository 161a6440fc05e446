// Package sha2sum provides a simple API for computing SHA-224 and SHA-256
// digests of byte slices, files, URLs and standard input.
// This package wraps the lower-level functionality in pkg/sha2, pkg/input
// and pkg/batch behind a smaller interface.
package sha2sum

import (
	"context"

	"github.com/nemuizzz/sha2sum/pkg/batch"
	customhttp "github.com/nemuizzz/sha2sum/pkg/http"
	"github.com/nemuizzz/sha2sum/pkg/input"
	"github.com/nemuizzz/sha2sum/pkg/sha2"
)

// Variant selects SHA-224 or SHA-256
type Variant = sha2.Variant

// Supported variants
const (
	SHA224 = sha2.SHA224
	SHA256 = sha2.SHA256
)

// Result is the digest (or failure) for one source
type Result = batch.Result

// Sum224 returns the lowercase hex SHA-224 digest of data
func Sum224(data []byte) string {
	return sha2.Sum224(data)
}

// Sum256 returns the lowercase hex SHA-256 digest of data
func Sum256(data []byte) string {
	return sha2.Sum256(data)
}

// Sum hashes data with the variant named by tag ("224", "sha256", "SHA-224", ...)
func Sum(tag string, data []byte) (string, error) {
	v, err := sha2.ParseVariant(tag)
	if err != nil {
		return "", err
	}
	return sha2.Sum(v, data)
}

// Hasher digests named sources with one variant
type Hasher struct {
	variant Variant
	workers int
	http    *customhttp.ClientOptions
}

// NewHasher creates a Hasher with default worker count and HTTP options
func NewHasher(v Variant) *Hasher {
	return &Hasher{
		variant: v,
		workers: batch.DefaultWorkers,
		http:    customhttp.DefaultClientOptions(),
	}
}

// WithWorkers sets how many sources are hashed in parallel
func (h *Hasher) WithWorkers(n int) *Hasher {
	h.workers = n
	return h
}

// WithHTTPOptions sets the options used when a source is a URL
func (h *Hasher) WithHTTPOptions(opts *customhttp.ClientOptions) *Hasher {
	h.http = opts
	return h
}

// SumSources reads and hashes every source, returning results in order.
// The error is only non-nil when the Hasher itself is misconfigured; per-source
// failures are reported in the results.
func (h *Hasher) SumSources(ctx context.Context, sources ...string) ([]Result, error) {
	runner, err := batch.NewRunner(input.NewReader(h.http), &batch.Config{
		Variant: h.variant,
		Workers: h.workers,
	})
	if err != nil {
		return nil, err
	}
	defer runner.Release()

	return runner.Run(ctx, sources), nil
}

// Iterator returns an iterator over the results for sources.
func (h *Hasher) Iterator(ctx context.Context, sources ...string) func(yield func(Result) bool) {
	return func(yield func(Result) bool) {
		results, err := h.SumSources(ctx, sources...)
		if err != nil {
			yield(Result{Variant: h.variant.String(), Error: err.Error(), Err: err})
			return
		}
		for _, res := range results {
			if !yield(res) {
				return
			}
		}
	}
}
