package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dsviz/avl"
	"github.com/katalvlaran/dsviz/binheap"
	"github.com/katalvlaran/dsviz/hashtable"
)

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrUsage, s)
	}

	return v, nil
}

func (c *Console) execHeap(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: heap needs a subcommand", ErrUsage)
	}
	switch args[0] {
	case "insert":
		if err := want(args, 2, "heap insert <int>"); err != nil {
			return err
		}
		v, err := parseInt(args[1])
		if err != nil {
			return err
		}
		c.heap.Insert(v)
		log.Infof("heap: inserted %d into %s heap", v, c.heap.Kind())
	case "extract":
		v, err := c.heap.ExtractRoot()
		if err != nil {
			return err
		}
		log.Infof("heap: extracted %d from %s heap", v, c.heap.Kind())
	case "clear":
		c.heap.Clear()
		log.Info("heap: cleared")
	case "show":
		log.Infof("heap (%s, %s): %v", c.heap.Kind(), c.heap.Backend(), c.heap.Values())
	case "type":
		if err := want(args, 2, "heap type <min|max>"); err != nil {
			return err
		}
		k, err := binheap.ParseKind(args[1])
		if err != nil {
			return err
		}
		c.heap = c.heap.Convert(k)
		log.Infof("heap: switched to %s heap: %v", k, c.heap.Values())
	default:
		return fmt.Errorf("%w: heap %s", ErrUnknownCommand, args[0])
	}

	return nil
}

func (c *Console) execAVL(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: avl needs a subcommand", ErrUsage)
	}
	switch args[0] {
	case "insert", "delete":
		if err := want(args, 2, "avl "+args[0]+" <int>"); err != nil {
			return err
		}
		v, err := parseInt(args[1])
		if err != nil {
			return err
		}
		if args[0] == "insert" {
			if err := c.tree.Insert(v); err != nil {
				return err
			}
			log.Infof("avl: inserted %d", v)
			return nil
		}
		if !c.tree.Delete(v) {
			log.Warningf("avl: %d not found", v)
			return nil
		}
		log.Infof("avl: deleted %d", v)
	case "clear":
		c.tree.Clear()
		log.Info("avl: cleared")
	case "show":
		log.Infof("avl: %s", renderAVL(c.tree.Root()))
	default:
		return fmt.Errorf("%w: avl %s", ErrUnknownCommand, args[0])
	}

	return nil
}

// renderAVL prints value[h=…,b=…] with children in parentheses.
func renderAVL(n *avl.Node[int]) string {
	if n == nil {
		return "·"
	}
	label := fmt.Sprintf("%d[h=%d,b=%d]", n.Value, n.Height, n.Balance)
	if n.Left == nil && n.Right == nil {
		return label
	}

	return fmt.Sprintf("%s(%s %s)", label, renderAVL(n.Left), renderAVL(n.Right))
}

func (c *Console) execHash(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: hash needs a subcommand", ErrUsage)
	}
	switch args[0] {
	case "insert":
		if err := want(args, 3, "hash insert <key> <value>"); err != nil {
			return err
		}
		p, err := c.table.Insert(args[1], args[2])
		if err != nil {
			return err
		}
		if p.Updated {
			log.Infof("hash: updated key %s at index %d", args[1], p.Index)
		} else {
			log.Infof("hash: inserted %s:%s at index %d", args[1], args[2], p.Index)
		}
	case "search":
		if err := want(args, 2, "hash search <key>"); err != nil {
			return err
		}
		v, idx, ok := c.table.Search(args[1])
		if !ok {
			log.Warningf("hash: key %s not found", args[1])
			return nil
		}
		log.Infof("hash: found %s:%s at index %d", args[1], v, idx)
	case "delete":
		if err := want(args, 2, "hash delete <key>"); err != nil {
			return err
		}
		idx, ok := c.table.Delete(args[1])
		if !ok {
			log.Warningf("hash: key %s not found", args[1])
			return nil
		}
		log.Infof("hash: deleted key %s from index %d", args[1], idx)
	case "clear":
		c.table.Clear()
		log.Info("hash: cleared")
	case "show":
		log.Infof("hash (%d, %s): %s", c.table.Capacity(), c.table.Strategy(), renderSlots(c.table.Slots()))
	case "resize":
		if err := want(args, 2, "hash resize <capacity>"); err != nil {
			return err
		}
		n, err := parseInt(args[1])
		if err != nil {
			return err
		}
		return c.rebuild(n, c.table.Strategy())
	case "strategy":
		if err := want(args, 2, "hash strategy <chaining|linear-probing>"); err != nil {
			return err
		}
		s, err := hashtable.ParseStrategy(args[1])
		if err != nil {
			return err
		}
		return c.rebuild(c.table.Capacity(), s)
	default:
		return fmt.Errorf("%w: hash %s", ErrUnknownCommand, args[0])
	}

	return nil
}

// rebuild swaps in a rebuilt table; on failure the current one stays.
func (c *Console) rebuild(capacity int, s hashtable.Strategy) error {
	t, err := c.table.Rebuild(capacity, s)
	if err != nil {
		if errors.Is(err, hashtable.ErrInvalidCapacity) {
			log.Warningf("hash: table size must be between %d and %d", hashtable.DefaultMinCapacity, hashtable.DefaultMaxCapacity)
		}
		return err
	}
	c.table = t
	log.Infof("hash: rebuilt as %d slots, %s", capacity, s)

	return nil
}

func renderSlots(slots []hashtable.Slot[string]) string {
	var b strings.Builder
	for i, s := range slots {
		if i > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "%d:", s.Index)
		switch {
		case s.Tombstone:
			b.WriteString("†")
		case len(s.Entries) == 0:
			b.WriteString("∅")
		}
		for j, e := range s.Entries {
			if j > 0 {
				b.WriteString("→")
			}
			fmt.Fprintf(&b, "%s=%s", e.Key, e.Value)
		}
	}

	return b.String()
}
