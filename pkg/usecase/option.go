package usecase

import (
	"io"
	"os"
)

// output holds where user-facing report lines are written
type output struct {
	out    io.Writer
	errOut io.Writer
}

// Option is a functional option for use case construction
type Option func(*output)

// WithOutput sets the writer for report lines, os.Stdout by default
func WithOutput(w io.Writer) Option {
	return func(o *output) {
		o.out = w
	}
}

// WithErrorOutput sets the writer for failure messages, os.Stderr by default
func WithErrorOutput(w io.Writer) Option {
	return func(o *output) {
		o.errOut = w
	}
}

func newOutput(opts []Option) output {
	o := output{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
