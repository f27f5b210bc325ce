// Package console is a line-oriented front end for the data structures:
// each command mutates or queries one structure and the outcome is logged.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"

	"github.com/katalvlaran/dsviz/avl"
	"github.com/katalvlaran/dsviz/binheap"
	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/hashtable"
	"github.com/katalvlaran/dsviz/step"
)

var log = logging.MustGetLogger("console")

var (
	// ErrUnknownCommand is returned for a line whose command is not known.
	ErrUnknownCommand = errors.New("console: unknown command")

	// ErrUsage is returned when a known command has the wrong arguments.
	ErrUsage = errors.New("console: bad arguments")
)

// Console owns one instance of each structure.
type Console struct {
	cfg   Config
	heap  *binheap.Heap[int]
	tree  *avl.Tree[int]
	graph *core.Graph
	table *hashtable.Table[string]

	lastSteps []step.Step
}

// New builds a console from cfg.
func New(cfg Config) (*Console, error) {
	var opts []hashtable.Option
	if cfg.TableTombstones {
		opts = append(opts, hashtable.WithTombstones())
	}
	table, err := hashtable.New[string](cfg.TableCapacity, cfg.TableStrategy, opts...)
	if err != nil {
		return nil, err
	}

	c := &Console{
		cfg:   cfg,
		heap:  binheap.New[int](cfg.HeapKind, binheap.WithBackend(cfg.HeapBackend)),
		graph: core.NewGraph(),
		table: table,
	}
	c.tree = avl.New[int](avl.WithOnRotate(func(r avl.Rotation[int]) {
		log.Infof("avl: %s rotation at %d", r.Case, r.At)
	}))
	if c.heap.Backend() != cfg.HeapBackend {
		log.Warningf("heap: backend %q unavailable, using %s", cfg.HeapBackend, c.heap.Backend())
	}

	return c, nil
}

// Heap returns the current heap.
func (c *Console) Heap() *binheap.Heap[int] { return c.heap }

// Tree returns the AVL tree.
func (c *Console) Tree() *avl.Tree[int] { return c.tree }

// Graph returns the graph.
func (c *Console) Graph() *core.Graph { return c.graph }

// Table returns the current hash table.
func (c *Console) Table() *hashtable.Table[string] { return c.table }

// LastSteps returns the steps of the last graph algorithm run.
func (c *Console) LastSteps() []step.Step { return c.lastSteps }

// Run executes every line of r. A failing command is logged and does not
// stop the script; only read errors and ctx cancellation are returned.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := c.Exec(ctx, line); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Errorf("%s: %v", line, err)
		}
	}

	return sc.Err()
}

// Exec runs one command line.
func (c *Console) Exec(ctx context.Context, line string) error {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil
	}
	switch f[0] {
	case "heap":
		return c.execHeap(f[1:])
	case "avl":
		return c.execAVL(f[1:])
	case "graph":
		return c.execGraph(ctx, f[1:])
	case "hash":
		return c.execHash(f[1:])
	case "help":
		log.Info(usage)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, f[0])
	}
}

const usage = `commands:
  heap insert <int> | heap extract | heap clear | heap show | heap type <min|max>
  avl insert <int> | avl delete <int> | avl clear | avl show
  graph node add|remove <id> | graph edge add <from> <to> [weight]
  graph edge remove <from> <to> | graph clear | graph show
  graph preset path|cycle|star|wheel|complete|grid|random <n> [cols|p]
  graph run bfs|dfs|dijkstra|prim <start>
  hash insert <key> <value> | hash search|delete <key> | hash clear | hash show
  hash resize <capacity> | hash strategy chaining|linear-probing`

// want checks the argument count of a subcommand.
func want(args []string, n int, form string) error {
	if len(args) != n {
		return fmt.Errorf("%w: want %s", ErrUsage, form)
	}

	return nil
}
