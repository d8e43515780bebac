// huffman encodes and decodes files with a deterministic Huffman code.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/huffman"
	"github.com/arloliu/huffman/codec"
	"github.com/arloliu/huffman/frame"
	"github.com/arloliu/huffman/internal/log"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *mainCmd, args []string) error {
	cfg := newConfig()
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), _usage, flag.Name())
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffman version %v\n", _version)
		return nil
	}

	return cmd.Run(&cfg, flag.Args())
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer
}

const _name = "huffman"

const _usage = `usage: %v [options] COMMAND ARGS

Compresses files with a Huffman code built from their byte frequencies.

The following commands are available:

	encode IN OUT
		encode IN, writing the human-readable stream to OUT and the
		packed stream to OUT with "_compressed" before its extension.
			encode notes.txt notes.huf.txt  # + notes.huf_compressed.txt
	decode ENCODED OUT
		decode a packed stream, or a human-readable one with -text.
	seal IN OUT
		encode IN into a checksummed frame, compressed with
		-compression.
	open SEALED OUT
		verify and decode a frame written by seal.
	codes IN
		print the frequency header and code table of IN.

The following flags are available:

	-queue heap|list
		priority structure used to build trees.
		Both build identical trees. Defaults to heap.
	-compression none|zstd|s2|lz4
		payload compression for seal. Defaults to none.
	-big-endian
		write big-endian frame headers with seal.
	-text
		read the human-readable stream with decode.
	-max-symbols N
		refuse to decode streams announcing more than N bytes.
		Defaults to 1073741824.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.
`

func (cmd *mainCmd) Run(cfg *config, args []string) (err error) {
	stderr := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, openErr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
		if openErr != nil {
			return fmt.Errorf("open log %q: %w", file, openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		stderr = f
	}

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}
	logger := log.New(stderr, lvl)

	if len(args) == 0 {
		return errors.New("missing command: want encode, decode, seal, open or codes")
	}

	name, args := args[0], args[1:]
	c, ok := _commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) != c.nargs {
		return fmt.Errorf("%v: expected %d arguments, got %d", name, c.nargs, len(args))
	}

	return c.run(&app{
		Stdout: cmd.Stdout,
		Log:    logger,
		cfg:    cfg,
	}, args)
}

type command struct {
	nargs int
	run   func(*app, []string) error
}

var _commands = map[string]command{
	"encode": {2, (*app).encode},
	"decode": {2, (*app).decode},
	"seal":   {2, (*app).seal},
	"open":   {2, (*app).open},
	"codes":  {1, (*app).codes},
}

// app runs a single command.
type app struct {
	Stdout io.Writer
	Log    *log.Logger

	cfg *config
}

func (a *app) encode(args []string) error {
	in, out := args[0], args[1]

	stats, err := huffman.EncodeFile(in, out, a.cfg.codecOptions(a.Log)...)
	if err != nil {
		return err
	}

	a.Log.Info("encoded",
		"in", in,
		"text", out,
		"packed", huffman.CompressedPath(out),
		"bytes", stats.Symbols,
		"packedBytes", stats.PackedBytes(),
		"ratio", stats.Ratio(),
	)

	return nil
}

func (a *app) decode(args []string) error {
	encoded, out := args[0], args[1]

	stats, err := huffman.DecodeFileAs(a.cfg.representation(), encoded, out, a.cfg.codecOptions(a.Log)...)
	if err != nil {
		return err
	}

	a.Log.Info("decoded", "in", encoded, "out", out, "bytes", stats.Symbols)

	return nil
}

func (a *app) seal(args []string) error {
	in, out := args[0], args[1]

	s, err := frame.New(a.cfg.frameOptions(a.Log)...)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	sealed, stats, err := s.Seal(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, sealed, 0o644); err != nil { //nolint:gosec
		return err
	}

	a.Log.Info("sealed",
		"in", in,
		"out", out,
		"compression", a.cfg.Compression.String(),
		"bytes", stats.Symbols,
		"frameBytes", len(sealed),
	)

	return nil
}

func (a *app) open(args []string) error {
	in, out := args[0], args[1]

	s, err := frame.New(a.cfg.frameOptions(a.Log)...)
	if err != nil {
		return err
	}

	sealed, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	data, stats, err := s.Open(sealed)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil { //nolint:gosec
		return err
	}

	a.Log.Info("opened", "in", in, "out", out, "bytes", stats.Symbols)

	return nil
}

func (a *app) codes(args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	enc, err := codec.NewEncoder(a.cfg.codecOptions(a.Log)...)
	if err != nil {
		return err
	}
	p, err := enc.Plan(src)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "header: %q\n", p.Header)
	fmt.Fprintf(a.Stdout, "bits: %d\n", p.DataBits())
	_, err = p.Codes.Dump(a.Stdout)

	return err
}
