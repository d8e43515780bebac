package bitstream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingSink struct {
	Sink
	closeErr error
}

func (f failingSink) Close() error {
	_ = f.Sink.Close()
	return f.closeErr
}

func TestTee(t *testing.T) {
	var text, packed bytes.Buffer
	sink := NewTee(NewTextWriter(&text), NewPackedWriter(&packed))

	require.NoError(t, sink.WriteText("98 1 99 1"))
	require.NoError(t, sink.WriteBits("01"))
	require.NoError(t, sink.Close())

	require.Equal(t, "98 1 99 1\n01", text.String())
	require.Equal(t, append([]byte("98 1 99 1\n"), 0b01000000), packed.Bytes())
}

func TestTee_CloseCombinesErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	sink := NewTee(
		failingSink{NewTextWriter(&bytes.Buffer{}), errA},
		NewPackedWriter(&bytes.Buffer{}),
		failingSink{NewTextWriter(&bytes.Buffer{}), errB},
	)

	err := sink.Close()
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	require.Len(t, multierr.Errors(err), 2)
}
