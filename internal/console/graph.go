package console

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/dsviz/bfs"
	"github.com/katalvlaran/dsviz/builder"
	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/dfs"
	"github.com/katalvlaran/dsviz/dijkstra"
	"github.com/katalvlaran/dsviz/player"
	"github.com/katalvlaran/dsviz/prim"
	"github.com/katalvlaran/dsviz/step"
)

func (c *Console) execGraph(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: graph needs a subcommand", ErrUsage)
	}
	switch args[0] {
	case "node":
		return c.execNode(args[1:])
	case "edge":
		return c.execEdge(args[1:])
	case "clear":
		c.graph.Clear()
		log.Info("graph: cleared")
	case "show":
		s := c.graph.Snapshot()
		edges := make([]string, len(s.Edges))
		for i, e := range s.Edges {
			edges[i] = fmt.Sprintf("%s→%s(%g)", e.From, e.To, e.Weight)
		}
		log.Infof("graph: nodes %v edges [%s]", s.Nodes, strings.Join(edges, " "))
	case "preset":
		return c.execPreset(args[1:])
	case "run":
		if err := want(args, 3, "graph run <algorithm> <start>"); err != nil {
			return err
		}
		return c.runAlgorithm(ctx, args[1], args[2])
	default:
		return fmt.Errorf("%w: graph %s", ErrUnknownCommand, args[0])
	}

	return nil
}

func (c *Console) execNode(args []string) error {
	if err := want(args, 2, "graph node add|remove <id>"); err != nil {
		return err
	}
	switch args[0] {
	case "add":
		if err := c.graph.AddNode(args[1]); err != nil {
			return err
		}
		log.Infof("graph: added node %s", args[1])
	case "remove":
		if err := c.graph.RemoveNode(args[1]); err != nil {
			return err
		}
		log.Infof("graph: removed node %s", args[1])
	default:
		return fmt.Errorf("%w: graph node %s", ErrUnknownCommand, args[0])
	}

	return nil
}

func (c *Console) execEdge(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: graph edge needs a subcommand", ErrUsage)
	}
	switch args[0] {
	case "add":
		if len(args) != 3 && len(args) != 4 {
			return fmt.Errorf("%w: want graph edge add <from> <to> [weight]", ErrUsage)
		}
		var opts []core.EdgeOption
		if len(args) == 4 {
			w, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a weight", ErrUsage, args[3])
			}
			opts = append(opts, core.WithWeight(w))
		}
		added, err := c.graph.AddEdge(args[1], args[2], opts...)
		if err != nil {
			return err
		}
		if !added {
			log.Infof("graph: edge %s→%s already exists", args[1], args[2])
			return nil
		}
		w, _ := c.graph.Weight(args[1], args[2])
		log.Infof("graph: added edge %s→%s (%g)", args[1], args[2], w)
	case "remove":
		if err := want(args, 3, "graph edge remove <from> <to>"); err != nil {
			return err
		}
		if c.graph.RemoveEdge(args[1], args[2]) {
			log.Infof("graph: removed edge %s→%s", args[1], args[2])
		}
	default:
		return fmt.Errorf("%w: graph edge %s", ErrUnknownCommand, args[0])
	}

	return nil
}

// execPreset replaces the graph with a generated symmetric topology whose
// integer weights are drawn from [1, 9] with the configured seed.
func (c *Console) execPreset(args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("%w: want graph preset <path|cycle|star|wheel|complete|grid|random> <n> [m|p]", ErrUsage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q is not a size", ErrUsage, args[1])
	}
	extra := ""
	if len(args) == 3 {
		extra = args[2]
	}

	var cons builder.Constructor
	switch args[0] {
	case "path":
		cons = builder.Path(n)
	case "cycle":
		cons = builder.Cycle(n)
	case "star":
		cons = builder.Star(n)
	case "wheel":
		cons = builder.Wheel(n)
	case "complete":
		cons = builder.Complete(n)
	case "grid":
		cols, err := strconv.Atoi(extra)
		if err != nil {
			return fmt.Errorf("%w: grid needs a column count", ErrUsage)
		}
		cons = builder.Grid(n, cols)
	case "random":
		p, err := strconv.ParseFloat(extra, 64)
		if err != nil {
			return fmt.Errorf("%w: random needs an edge probability", ErrUsage)
		}
		cons = builder.RandomSparse(n, p)
	default:
		return fmt.Errorf("%w: preset %q", ErrUnknownCommand, args[0])
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(c.cfg.GraphSeed),
		builder.WithWeightFn(builder.IntWeightFn(1, 9)),
		builder.WithSymmetric(),
	}, cons)
	if err != nil {
		return err
	}
	c.graph = g
	log.Infof("graph: preset %s with %d nodes and %d edges", args[0], g.NodeCount(), g.EdgeCount())

	return nil
}

// runAlgorithm plays one traversal at the configured interval and logs
// every step, then a summary.
func (c *Console) runAlgorithm(ctx context.Context, name, start string) error {
	var (
		seq     step.Sequence
		summary func()
	)
	switch name {
	case "bfs":
		w, err := bfs.Walk(c.graph, start, bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		seq, summary = w, func() { log.Infof("bfs: order %v", w.Result().Order) }
	case "dfs":
		w, err := dfs.Walk(c.graph, start, dfs.WithContext(ctx))
		if err != nil {
			return err
		}
		seq, summary = w, func() { log.Infof("dfs: order %v", w.Result().Order) }
	case "dijkstra":
		w, err := dijkstra.Walk(c.graph, start, dijkstra.WithContext(ctx))
		if err != nil {
			return err
		}
		seq, summary = w, func() { log.Infof("dijkstra: distances %s", renderDistances(c.graph.Nodes(), w.Result().Dist)) }
	case "prim":
		w, err := prim.Walk(c.graph, start, prim.WithContext(ctx))
		if err != nil {
			return err
		}
		seq, summary = w, func() {
			res := w.Result()
			log.Infof("prim: %d edges, total %g, spanning %t", len(res.Edges), res.Total, res.Spanning)
		}
	default:
		return fmt.Errorf("%w: algorithm %q", ErrUnknownCommand, name)
	}

	log.Infof("%s: starting from node %s", name, start)
	c.lastSteps = c.lastSteps[:0]
	p := player.New(seq, player.WithInterval(c.cfg.Interval), player.WithName(name))
	err := p.Run(ctx, func(s step.Step) error {
		c.lastSteps = append(c.lastSteps, s)
		log.Info(describe(name, s))
		return nil
	})
	if err != nil {
		return err
	}
	summary()

	return nil
}

func describe(alg string, s step.Step) string {
	switch s.Kind {
	case step.Visiting:
		if alg == "dijkstra" {
			return fmt.Sprintf("%s: visiting %s (distance %g)", alg, s.Node, s.Distance)
		}
		if len(s.Frontier) > 0 {
			return fmt.Sprintf("%s: visiting %s, frontier %v", alg, s.Node, s.Frontier)
		}
		return fmt.Sprintf("%s: visiting %s", alg, s.Node)
	case step.EdgeRelaxed:
		return fmt.Sprintf("%s: updated distance to %s: %g via %s", alg, s.To, s.Distance, s.From)
	case step.EdgeAdded:
		return fmt.Sprintf("%s: added edge %s → %s (weight: %g) to MST", alg, s.From, s.To, s.Weight)
	case step.Completed:
		return fmt.Sprintf("%s: completed", alg)
	default:
		return fmt.Sprintf("%s: %s %s → %s", alg, s.Kind, s.From, s.To)
	}
}

func renderDistances(order []string, dist map[string]float64) string {
	parts := make([]string, 0, len(order))
	for _, id := range order {
		d, ok := dist[id]
		if !ok || math.IsInf(d, 1) {
			parts = append(parts, id+"=∞")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%g", id, d))
	}

	return strings.Join(parts, " ")
}
