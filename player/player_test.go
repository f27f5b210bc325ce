package player_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/bfs"
	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/player"
	"github.com/katalvlaran/dsviz/step"
)

// walk returns a fresh BFS sequence over A→B, A→C, B→D.
func walk(t *testing.T) step.Sequence {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(id))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	w, err := bfs.Walk(g, "A")
	require.NoError(t, err)

	return w
}

func TestRun_DeliversEverything(t *testing.T) {
	p := player.New(walk(t), player.WithInterval(0), player.WithName("bfs"))

	var got []step.Kind
	err := p.Run(context.Background(), func(s step.Step) error {
		got = append(got, s.Kind)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, step.Completed, got[len(got)-1])
	assert.EqualValues(t, 4, p.Count(step.Visiting))
	assert.EqualValues(t, 3, p.Count(step.EdgeDiscovered))
	assert.EqualValues(t, 1, p.Count(step.Completed))
	assert.Zero(t, p.Count(step.EdgeRelaxed))
	assert.EqualValues(t, len(got), p.Total())
}

func TestRun_Interval(t *testing.T) {
	p := player.New(walk(t), player.WithInterval(time.Millisecond))

	start := time.Now()
	require.NoError(t, p.Run(context.Background(), nil))
	// 8 steps, 7 waits
	assert.GreaterOrEqual(t, time.Since(start), 7*time.Millisecond)
}

func TestRun_PauseResume(t *testing.T) {
	p := player.New(walk(t), player.WithInterval(0))
	p.Pause()
	p.Pause()
	require.True(t, p.Paused())

	var delivered atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- p.Run(context.Background(), func(step.Step) error {
			delivered.Add(1)
			return nil
		})
	}()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, delivered.Load(), "nothing is delivered while paused")

	p.Resume()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("player did not finish after Resume")
	}
	assert.EqualValues(t, 8, delivered.Load())
	assert.False(t, p.Paused())
}

func TestRun_Stop(t *testing.T) {
	seq := walk(t)
	p := player.New(seq, player.WithInterval(time.Hour))

	err := p.Run(context.Background(), func(step.Step) error {
		p.Stop()
		return nil
	})
	assert.ErrorIs(t, err, player.ErrStopped)
	assert.EqualValues(t, 1, p.Total())
	assert.ErrorIs(t, seq.Err(), step.ErrAborted)

	assert.ErrorIs(t, p.Run(context.Background(), nil), player.ErrStopped)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := player.New(walk(t), player.WithInterval(time.Hour))

	err := p.Run(ctx, func(step.Step) error {
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_HandlerError(t *testing.T) {
	boom := errors.New("boom")
	p := player.New(walk(t), player.WithInterval(0))

	err := p.Run(context.Background(), func(s step.Step) error {
		if s.Kind == step.EdgeDiscovered {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 2, p.Total())
}

func TestRun_AlreadyRunning(t *testing.T) {
	p := player.New(walk(t), player.WithInterval(0))

	var inner error
	err := p.Run(context.Background(), func(s step.Step) error {
		if s.Kind == step.Visiting && inner == nil {
			inner = p.Run(context.Background(), nil)
		}
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, inner, player.ErrRunning)
}
