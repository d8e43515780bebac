package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/huffman/bitstream"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/header"
	"github.com/arloliu/huffman/internal/log"
	"github.com/arloliu/huffman/internal/options"
	"github.com/arloliu/huffman/tree"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

// maxPrealloc caps the output capacity reserved up front, so a header that
// overstates the symbol count of a truncated stream costs no more memory
// than the stream actually decodes to.
const maxPrealloc = 1 << 20

type decodeState uint8

const (
	stateReadHeader decodeState = iota
	stateEmpty
	stateRepeat
	stateTreeWalk
	stateDone
)

func (s decodeState) String() string {
	switch s {
	case stateReadHeader:
		return "ReadHeader"
	case stateEmpty:
		return "Empty"
	case stateRepeat:
		return "Repeat"
	case stateTreeWalk:
		return "TreeWalk"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Decoder reads Huffman encoded streams.
type Decoder struct {
	builder    *tree.Builder
	logger     *log.Logger
	clock      clock.Clock
	maxSymbols uint64
}

// NewDecoder creates a Decoder. It fails only for invalid options.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	builder, err := tree.NewBuilder(tree.WithQueue(cfg.queue), tree.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	return &Decoder{
		builder:    builder,
		logger:     cfg.logger,
		clock:      cfg.clock,
		maxSymbols: cfg.maxSymbols,
	}, nil
}

// decodeRun is the state of a single Decode call.
type decodeRun struct {
	d     *Decoder
	src   bitstream.Source
	table freq.Table
	total uint64
	out   []byte
	stats Stats
}

// Decode reads a complete stream from src, closes it and returns the
// decoded bytes.
//
// A malformed header fails with errs.ErrFormat before any tree is built.
// A stream whose bits run out before every announced symbol is decoded
// fails with errs.ErrTruncatedStream, and no partial output is returned.
func (d *Decoder) Decode(src bitstream.Source) (out []byte, stats Stats, err error) {
	defer multierr.AppendInvoke(&err, multierr.Close(src))

	start := d.clock.Now()
	run := &decodeRun{d: d, src: src}

	state := stateReadHeader
	for state != stateDone {
		d.logger.Debug("decode", "state", state.String())

		switch state {
		case stateReadHeader:
			state, err = run.readHeader()
		case stateEmpty:
			state, err = run.empty()
		case stateRepeat:
			state, err = run.repeat()
		case stateTreeWalk:
			state, err = run.treeWalk()
		default:
			err = fmt.Errorf("unknown decode state %d", state)
		}
		if err != nil {
			return nil, Stats{}, err
		}
	}

	run.stats.Duration = d.clock.Since(start)
	d.logger.Debug("decoded", "stats", run.stats)

	return run.out, run.stats, nil
}

func (r *decodeRun) readHeader() (decodeState, error) {
	text, err := r.src.ReadText()
	if err != nil {
		return stateDone, err
	}

	r.table, err = header.Decode(text)
	if err != nil {
		return stateDone, err
	}

	total, ok := r.table.CheckedTotal()
	if !ok || total > math.MaxInt {
		return stateDone, fmt.Errorf("%w: header %.32q...", errs.ErrSymbolCountOverflow, text)
	}
	if limit := r.d.maxSymbols; total > limit {
		return stateDone, fmt.Errorf("%w: %d symbols exceed the limit of %d",
			errs.ErrSymbolCountOverflow, total, limit)
	}

	r.total = total
	r.stats.Symbols = total
	r.stats.Unique = r.table.Unique()
	r.stats.HeaderBytes = len(text)

	switch r.stats.Unique {
	case 0:
		return stateEmpty, nil
	case 1:
		return stateRepeat, nil
	default:
		return stateTreeWalk, nil
	}
}

func (r *decodeRun) empty() (decodeState, error) {
	r.out = []byte{}
	return stateDone, nil
}

func (r *decodeRun) repeat() (decodeState, error) {
	sym, n, _ := r.table.Single()

	r.out = make([]byte, n)
	for i := range r.out {
		r.out[i] = sym
	}

	return stateDone, nil
}

func (r *decodeRun) treeWalk() (decodeState, error) {
	root, err := r.d.builder.Build(r.table)
	if err != nil {
		return stateDone, err
	}

	out := make([]byte, 0, min(r.total, maxPrealloc))
	var bits uint64
	for i := uint64(0); i < r.total; i++ {
		n := root
		for !n.IsLeaf() {
			bit, err := r.src.ReadBit()
			if errors.Is(err, errs.ErrEndOfStream) {
				return stateDone, fmt.Errorf("%w: decoded %d of %d symbols", errs.ErrTruncatedStream, i, r.total)
			}
			if err != nil {
				return stateDone, err
			}
			bits++
			n = n.Child(bit)
		}
		out = append(out, n.Symbol)
	}

	r.out = out
	r.stats.DataBits = bits

	return stateDone, nil
}
