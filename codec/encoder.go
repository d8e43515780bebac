package codec

import (
	"io"

	"github.com/arloliu/huffman/bitstream"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/header"
	"github.com/arloliu/huffman/internal/log"
	"github.com/arloliu/huffman/internal/options"
	"github.com/arloliu/huffman/internal/pool"
	"github.com/arloliu/huffman/tree"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

// bitChunkSize is the number of code characters buffered before they are
// handed to the sink.
const bitChunkSize = 4096

// Plan is everything derived from a source before any output is written.
type Plan struct {
	Freq   freq.Table
	Header string
	Root   *tree.Node // nil for empty input
	Codes  tree.Table
}

// DataBits returns the number of data bits the plan encodes to.
func (p *Plan) DataBits() uint64 {
	return p.Codes.EncodedBits(p.Freq)
}

// Encoder writes Huffman encoded streams.
type Encoder struct {
	builder *tree.Builder
	logger  *log.Logger
	clock   clock.Clock
}

// NewEncoder creates an Encoder. It fails only for invalid options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	builder, err := tree.NewBuilder(tree.WithQueue(cfg.queue), tree.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	return &Encoder{
		builder: builder,
		logger:  cfg.logger,
		clock:   cfg.clock,
	}, nil
}

// Plan counts src and derives its header, tree and code table.
func (e *Encoder) Plan(src []byte) (Plan, error) {
	return e.plan(freq.Count(src))
}

func (e *Encoder) plan(t freq.Table) (Plan, error) {
	root, err := e.builder.Build(t)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		Freq:   t,
		Header: header.Encode(t),
		Root:   root,
		Codes:  tree.GenerateCodes(root),
	}, nil
}

// Encode writes the encoded form of src to sink and closes it.
//
// Empty input writes nothing. Input with a single distinct byte writes only
// the header. The sink is closed even when encoding fails.
func (e *Encoder) Encode(src []byte, sink bitstream.Sink) (stats Stats, err error) {
	defer multierr.AppendInvoke(&err, multierr.Close(sink))

	start := e.clock.Now()

	p, err := e.Plan(src)
	if err != nil {
		return Stats{}, err
	}

	stats = Stats{
		Symbols:     uint64(len(src)),
		Unique:      p.Freq.Unique(),
		HeaderBytes: len(p.Header),
	}
	if p.Root == nil {
		e.logger.Debug("empty input, nothing written")
		stats.Duration = e.clock.Since(start)
		return stats, nil
	}

	if err := sink.WriteText(p.Header); err != nil {
		return stats, err
	}

	if !p.Root.IsLeaf() {
		if err := writeCodes(sink, &p.Codes, src); err != nil {
			return stats, err
		}
		stats.DataBits = p.DataBits()
	}
	stats.Duration = e.clock.Since(start)

	e.logger.Debug("encoded", "stats", stats)

	return stats, nil
}

// EncodeReader reads r to the end and encodes it like Encode.
// Read errors are returned as-is after closing sink.
func (e *Encoder) EncodeReader(r io.Reader, sink bitstream.Sink) (Stats, error) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return Stats{}, multierr.Append(err, sink.Close())
	}

	return e.Encode(buf.Bytes(), sink)
}

func writeCodes(sink bitstream.Sink, codes *tree.Table, src []byte) error {
	chunk := make([]byte, 0, bitChunkSize)
	for _, b := range src {
		code := codes[b]
		if len(chunk)+len(code) > bitChunkSize {
			if err := sink.WriteBits(string(chunk)); err != nil {
				return err
			}
			chunk = chunk[:0]
		}
		chunk = append(chunk, code...)
	}

	if len(chunk) == 0 {
		return nil
	}

	return sink.WriteBits(string(chunk))
}
