package main

import (
	"flag"

	"github.com/arloliu/huffman/codec"
	"github.com/arloliu/huffman/format"
	"github.com/arloliu/huffman/frame"
	"github.com/arloliu/huffman/internal/log"
)

type config struct {
	Queue       queueFlag
	Compression compressionFlag
	Text        bool
	BigEndian   bool
	MaxSymbols  uint64
	LogFile     string
	Verbose     bool
}

func newConfig() config {
	return config{
		Queue:       queueFlag(format.QueueHeap),
		Compression: compressionFlag(format.CompressionNone),
	}
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.Var(&c.Queue, "queue", "")
	flag.Var(&c.Compression, "compression", "")
	flag.BoolVar(&c.Text, "text", false, "")
	flag.BoolVar(&c.BigEndian, "big-endian", false, "")
	flag.Uint64Var(&c.MaxSymbols, "max-symbols", 0, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

func (c *config) representation() format.Representation {
	if c.Text {
		return format.Text
	}
	return format.Packed
}

func (c *config) codecOptions(logger *log.Logger) []codec.Option {
	return []codec.Option{
		codec.WithQueue(format.QueueType(c.Queue)),
		codec.WithMaxSymbols(c.MaxSymbols),
		codec.WithLogger(logger.WithName("codec")),
	}
}

func (c *config) frameOptions(logger *log.Logger) []frame.Option {
	opts := []frame.Option{
		frame.WithCompression(format.CompressionType(c.Compression)),
		frame.WithCodecOptions(c.codecOptions(logger)...),
	}
	if c.BigEndian {
		opts = append(opts, frame.WithBigEndian())
	}
	return opts
}
