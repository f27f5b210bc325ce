// Package player paces a step.Sequence for a human viewer: one step per
// interval, with pause, resume and stop controls that are safe to call
// from another goroutine while Run is active.
package player

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/op/go-logging"

	"github.com/katalvlaran/dsviz/step"
)

var log = logging.MustGetLogger("player")

// DefaultInterval is the delay between two delivered steps.
const DefaultInterval = 500 * time.Millisecond

// ErrStopped is returned by Run after Stop.
var ErrStopped = errors.New("player: stopped")

// ErrRunning is returned by Run when the player is already running.
var ErrRunning = errors.New("player: already running")

// Option configures a Player.
type Option func(*Player)

// WithInterval sets the delay between steps. Zero or negative values
// deliver steps back to back.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		p.interval = d
	}
}

// WithName labels the player in log lines, e.g. "bfs from A".
func WithName(name string) Option {
	return func(p *Player) {
		p.name = name
	}
}

// Player drives one step.Sequence.
type Player struct {
	seq      step.Sequence
	interval time.Duration
	name     string

	counts *haxmap.Map[string, *atomic.Int64] // keyed by step.Kind name

	mu      sync.Mutex
	running bool
	paused  bool
	resume  chan struct{} // closed by Resume
	stop    context.CancelFunc
	stopped bool
}

// New returns a Player for seq.
func New(seq step.Sequence, opts ...Option) *Player {
	p := &Player{
		seq:      seq,
		interval: DefaultInterval,
		name:     "sequence",
		counts:   haxmap.New[string, *atomic.Int64](),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run delivers the steps of the sequence to fn, waiting one interval after
// each step. It returns when the sequence completes, fn fails, ctx is done
// or Stop is called. The sequence is abandoned in the last three cases.
func (p *Player) Run(ctx context.Context, fn func(step.Step) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := p.start(cancel); err != nil {
		return err
	}
	defer p.finish()

	next, stop := iter.Pull(p.seq.Steps())
	defer stop()

	var tick <-chan time.Time
	if p.interval > 0 {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Infof("%s: playing, interval %v", p.name, p.interval)
	for {
		if err := p.waitResumed(ctx); err != nil {
			return p.abort(err)
		}
		s, ok := next()
		if !ok {
			break
		}
		p.count(s.Kind)
		log.Debugf("%s: %s %s%s", p.name, s.Kind, s.Node, edgeLabel(s))
		if fn != nil {
			if err := fn(s); err != nil {
				log.Errorf("%s: step handler failed: %v", p.name, err)
				return fmt.Errorf("player: %s: %w", s.Kind, err)
			}
		}
		if s.Kind == step.Completed {
			break
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return p.abort(ctx.Err())
			case <-tick:
			}
		}
	}

	if err := p.seq.Err(); err != nil {
		return p.abort(err)
	}
	log.Infof("%s: completed after %d steps", p.name, p.Total())

	return nil
}

func (p *Player) start(cancel context.CancelFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return ErrRunning
	}
	if p.stopped {
		return ErrStopped
	}
	p.running = true
	p.stop = cancel

	return nil
}

func (p *Player) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running = false
	p.stop = nil
}

// abort maps a cancellation caused by Stop to ErrStopped.
func (p *Player) abort(err error) error {
	p.mu.Lock()
	stopped := p.stopped
	p.mu.Unlock()
	if stopped {
		err = ErrStopped
	}
	log.Warningf("%s: aborted: %v", p.name, err)

	return err
}

// waitResumed blocks while the player is paused.
func (p *Player) waitResumed(ctx context.Context) error {
	p.mu.Lock()
	if !p.paused {
		p.mu.Unlock()
		return ctx.Err()
	}
	ch := p.resume
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ch:
		return ctx.Err()
	}
}

// Pause holds the next step until Resume. It is a no-op when already paused.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return
	}
	p.paused = true
	p.resume = make(chan struct{})
	log.Infof("%s: paused", p.name)
}

// Resume releases a paused player.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		return
	}
	p.paused = false
	close(p.resume)
	log.Infof("%s: resumed", p.name)
}

// Paused reports whether the player is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.paused
}

// Stop aborts Run; later calls to Run return ErrStopped.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	if p.stop != nil {
		p.stop()
	}
}

func (p *Player) count(k step.Kind) {
	c, _ := p.counts.GetOrSet(k.String(), new(atomic.Int64))
	c.Add(1)
}

// Count returns how many steps of kind k were delivered so far.
func (p *Player) Count(k step.Kind) int64 {
	if c, ok := p.counts.Get(k.String()); ok {
		return c.Load()
	}

	return 0
}

// Total returns the number of steps delivered so far.
func (p *Player) Total() int64 {
	var n int64
	p.counts.ForEach(func(_ string, c *atomic.Int64) bool {
		n += c.Load()
		return true
	})

	return n
}

func edgeLabel(s step.Step) string {
	if s.From == "" && s.To == "" {
		return ""
	}

	return fmt.Sprintf("%s→%s (%g)", s.From, s.To, s.Weight)
}
