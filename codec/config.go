package codec

import (
	"fmt"

	"github.com/arloliu/huffman/format"
	"github.com/arloliu/huffman/internal/log"
	"github.com/arloliu/huffman/internal/options"
	"github.com/benbjohnson/clock"
)

// Config holds the settings shared by Encoder and Decoder.
type Config struct {
	queue      format.QueueType
	logger     *log.Logger
	clock      clock.Clock
	maxSymbols uint64
}

// DefaultMaxSymbols is the decoder's default limit on the symbol count a
// header may announce. A single-symbol stream is only a header, so without a
// limit a few bytes of input could demand any amount of output.
const DefaultMaxSymbols = 1 << 30

func newConfig() *Config {
	return &Config{
		queue:      format.QueueHeap,
		logger:     log.Discard,
		clock:      clock.New(),
		maxSymbols: DefaultMaxSymbols,
	}
}

// Option configures an Encoder or a Decoder.
type Option = options.Option[*Config]

// EncoderOption and DecoderOption name the options accepted by NewEncoder
// and NewDecoder. Every Option applies to both.
type (
	EncoderOption = Option
	DecoderOption = Option
)

// WithQueue selects the priority structure used to build trees.
// The default is format.QueueHeap.
func WithQueue(q format.QueueType) Option {
	return options.New(func(c *Config) error {
		switch q {
		case format.QueueHeap, format.QueueList:
			c.queue = q
			return nil
		default:
			return fmt.Errorf("invalid queue type: %v", q)
		}
	})
}

// WithLogger sets the logger for pipeline diagnostics. Nil discards them.
func WithLogger(l *log.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = l.OrDiscard()
	})
}

// WithClock sets the clock used to time operations for Stats.Duration.
func WithClock(clk clock.Clock) Option {
	return options.New(func(c *Config) error {
		if clk == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.clock = clk
		return nil
	})
}

// WithMaxSymbols makes the decoder reject headers announcing more than n
// symbols, before any output is allocated. Zero selects DefaultMaxSymbols.
// Encoders ignore it.
func WithMaxSymbols(n uint64) Option {
	return options.NoError(func(c *Config) {
		if n == 0 {
			n = DefaultMaxSymbols
		}
		c.maxSymbols = n
	})
}
