// Package input loads a named source fully into memory before it is hashed.
// A source is "-" for standard input, an http:// or https:// URL, or a path.
package input

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/pkg/errors"

	customhttp "github.com/nemuizzz/sha2sum/pkg/http"
)

// Stdin is the source name that selects standard input.
const Stdin = "-"

// ErrUnreadable is the cause of every error returned by Reader.Read.
var ErrUnreadable = errors.New("source cannot be read")

// Reader reads sources. The zero value reads files and stdin and fetches
// URLs with the default HTTP client.
type Reader struct {
	Client      *http.Client
	HTTPOptions *customhttp.ClientOptions
	Stdin       io.Reader
}

// NewReader returns a Reader whose URL fetches use opts.
func NewReader(opts *customhttp.ClientOptions) *Reader {
	if opts == nil {
		opts = customhttp.DefaultClientOptions()
	}
	return &Reader{
		Client:      customhttp.NewClient(opts),
		HTTPOptions: opts,
		Stdin:       os.Stdin,
	}
}

// Read returns the full contents of source. Failures wrap ErrUnreadable, so
// errors.Cause(err) == ErrUnreadable holds for any of them.
func (r *Reader) Read(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, unreadable(err, source)
	}

	var (
		data []byte
		err  error
	)

	switch {
	case source == Stdin:
		in := r.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	case customhttp.IsURL(source):
		client := r.Client
		if client == nil {
			client = customhttp.NewClient(r.HTTPOptions)
		}
		data, err = customhttp.Fetch(ctx, client, source, r.HTTPOptions)
	default:
		data, err = os.ReadFile(source)
	}

	if err != nil {
		return nil, unreadable(err, source)
	}
	return data, nil
}

// unreadable keeps ErrUnreadable as the cause and the original error in the message.
func unreadable(err error, source string) error {
	return errors.Wrapf(ErrUnreadable, "%s: %v", source, err)
}
