package step

import (
	"context"
	"fmt"
	"iter"
)

// Producer runs an algorithm, handing every step to emit. It must return as
// soon as emit reports false.
type Producer func(emit func(Step) bool)

// lazy adapts a Producer to Sequence.
type lazy struct {
	ctx     context.Context
	produce Producer
	used    bool
	err     error
}

// Lazy wraps produce into a Sequence bound to ctx. The producer does not
// start until the returned Sequence is ranged over.
func Lazy(ctx context.Context, produce Producer) Sequence {
	if ctx == nil {
		ctx = context.Background()
	}

	return &lazy{ctx: ctx, produce: produce}
}

// Steps implements Sequence.
func (l *lazy) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if l.used {
			return
		}
		l.used = true

		stopped := false
		l.produce(func(s Step) bool {
			if stopped {
				return false
			}
			if err := l.ctx.Err(); err != nil {
				l.err = err
				stopped = true
				return false
			}
			if !yield(s) {
				// A consumer breaking right after Completed still saw everything.
				if s.Kind != Completed {
					l.err = ErrAborted
				}
				stopped = true
				return false
			}
			return true
		})
	}
}

// Err implements Sequence.
func (l *lazy) Err() error { return l.err }

// Drain consumes seq to the end, calling fn (if non-nil) for every step.
// An error from fn aborts the sequence and is returned wrapped.
func Drain(seq Sequence, fn func(Step) error) error {
	for s := range seq.Steps() {
		if fn == nil {
			continue
		}
		if err := fn(s); err != nil {
			return fmt.Errorf("step: hook failed on %s: %w", s.Kind, err)
		}
	}

	return seq.Err()
}

// Collect drains seq and returns every step it produced.
func Collect(seq Sequence) ([]Step, error) {
	var out []Step
	err := Drain(seq, func(s Step) error {
		out = append(out, s)
		return nil
	})

	return out, err
}

// Kinds projects steps onto their kinds; handy in assertions.
func Kinds(steps []Step) []Kind {
	out := make([]Kind, len(steps))
	for i, s := range steps {
		out[i] = s.Kind
	}

	return out
}
