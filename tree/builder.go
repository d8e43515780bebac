package tree

import (
	"fmt"

	"github.com/arloliu/huffman/format"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/log"
	"github.com/arloliu/huffman/internal/options"
	"github.com/arloliu/huffman/ordered"
)

// BuilderConfig holds the Builder settings.
type BuilderConfig struct {
	queue  format.QueueType
	logger *log.Logger
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*BuilderConfig]

// WithQueue selects the priority structure used during construction.
// format.QueueHeap is the default; format.QueueList uses the ordered linked
// list. Both produce identical trees.
func WithQueue(q format.QueueType) BuilderOption {
	return options.New(func(c *BuilderConfig) error {
		switch q {
		case format.QueueHeap, format.QueueList:
			c.queue = q
			return nil
		default:
			return fmt.Errorf("invalid queue type: %v", q)
		}
	})
}

// WithLogger sets the logger that receives a summary of every built tree.
func WithLogger(l *log.Logger) BuilderOption {
	return options.NoError(func(c *BuilderConfig) {
		c.logger = l.OrDiscard()
	})
}

// Builder turns frequency tables into Huffman trees.
// A Builder is immutable and safe for concurrent use.
type Builder struct {
	queue  format.QueueType
	logger *log.Logger
}

// NewBuilder creates a Builder. It fails only for invalid options.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	cfg := &BuilderConfig{
		queue:  format.QueueHeap,
		logger: log.Discard,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Builder{queue: cfg.queue, logger: cfg.logger}, nil
}

var defaultBuilder = &Builder{queue: format.QueueHeap, logger: log.Discard}

// Build builds the tree for t with the default Builder.
func Build(t freq.Table) (*Node, error) {
	return defaultBuilder.Build(t)
}

// Queue returns the priority structure this Builder uses.
func (b *Builder) Queue() format.QueueType {
	return b.queue
}

// Build builds the Huffman tree for t.
//
// It returns a nil root for a table with no nonzero entries, and the lone
// leaf itself for a table with exactly one. Otherwise the two lowest nodes
// are merged repeatedly, the first popped becoming the left child, until a
// single root remains.
func (b *Builder) Build(t freq.Table) (*Node, error) {
	q := b.newQueue(t.Unique())
	for s, f := range t {
		if f != 0 {
			q.Push(&Node{Symbol: byte(s), Freq: f}) //nolint:gosec
		}
	}

	if q.Len() == 0 {
		b.logger.Debug("empty alphabet, no tree")
		return nil, nil
	}

	for q.Len() > 1 {
		left, err := q.PopMin()
		if err != nil {
			return nil, fmt.Errorf("pop left child: %w", err)
		}
		right, err := q.PopMin()
		if err != nil {
			return nil, fmt.Errorf("pop right child: %w", err)
		}
		if parent := merge(left, right); !q.Push(parent) {
			return nil, fmt.Errorf("queue rejected %v", parent)
		}
	}

	root, err := q.PopMin()
	if err != nil {
		return nil, fmt.Errorf("pop root: %w", err)
	}

	b.logger.Debug("built tree",
		"queue", b.queue.String(),
		"leaves", root.Leaves(),
		"depth", root.Depth(),
		"freq", root.Freq,
	)

	return root, nil
}

func (b *Builder) newQueue(capacity int) ordered.Queue[*Node] {
	if b.queue == format.QueueList {
		return ordered.NewList(Less, Equal)
	}
	return ordered.NewHeap(Less, capacity)
}
