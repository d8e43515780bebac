package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/arloliu/huffman/format"
)

type compressionFlag format.CompressionType

var _ flag.Value = (*compressionFlag)(nil)

func (c *compressionFlag) String() string {
	return strings.ToLower(format.CompressionType(*c).String())
}

func (c *compressionFlag) Set(name string) error {
	ct, ok := format.ParseCompression(name)
	if !ok {
		return fmt.Errorf("unknown compression %q: want none, zstd, s2 or lz4", name)
	}
	*c = compressionFlag(ct)
	return nil
}

type queueFlag format.QueueType

var _ flag.Value = (*queueFlag)(nil)

func (q *queueFlag) String() string {
	return strings.ToLower(format.QueueType(*q).String())
}

func (q *queueFlag) Set(name string) error {
	switch strings.ToLower(name) {
	case "heap":
		*q = queueFlag(format.QueueHeap)
	case "list":
		*q = queueFlag(format.QueueList)
	default:
		return fmt.Errorf("unknown queue %q: want heap or list", name)
	}
	return nil
}
