package rmq

import (
	"fmt"
	"log/slog"
	"strings"
)

// IndexKind selects the range-minimum index built over the depth sequence.
type IndexKind int

const (
	// IndexSparse is the power-of-two sparse table, O(m log m) space.
	IndexSparse IndexKind = iota
	// IndexBlock is the block-decomposed index for +-1 sequences, O(m) space.
	IndexBlock
)

// String returns the string representation of the index kind.
func (k IndexKind) String() string {
	switch k {
	case IndexSparse:
		return "sparse"
	case IndexBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ParseIndexKind maps "sparse" or "block" to an IndexKind.
func ParseIndexKind(s string) (IndexKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sparse":
		return IndexSparse, nil
	case "block":
		return IndexBlock, nil
	default:
		return 0, fmt.Errorf("unknown index kind %q", s)
	}
}

type options struct {
	logger   *slog.Logger
	index    IndexKind
	validate bool
}

// Option configures New and Builder.Build.
type Option func(*options)

// WithLogger sets the logger that receives the build record.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIndex selects the range-minimum index kind. Default is IndexSparse.
func WithIndex(k IndexKind) Option {
	return func(o *options) {
		o.index = k
	}
}

// WithValidation makes New run Validate on the result before returning it.
func WithValidation(on bool) Option {
	return func(o *options) {
		o.validate = on
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		index:  IndexSparse,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
