package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type builderConfig struct {
	depth  int
	queue  string
	traced bool
}

var errTooDeep = errors.New("depth too large")

func withDepth(d int) Option[*builderConfig] {
	return New(func(c *builderConfig) error {
		if d > 256 {
			return errTooDeep
		}
		c.depth = d

		return nil
	})
}

func withQueue(q string) Option[*builderConfig] {
	return NoError(func(c *builderConfig) { c.queue = q })
}

func withTrace() Option[*builderConfig] {
	return NoError(func(c *builderConfig) { c.traced = true })
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &builderConfig{}
		err := Apply(cfg, withDepth(8), withQueue("heap"), withQueue("list"), withTrace())
		require.NoError(t, err)
		require.Equal(t, 8, cfg.depth)
		require.Equal(t, "list", cfg.queue)
		require.True(t, cfg.traced)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &builderConfig{}
		err := Apply(cfg, withQueue("heap"), withDepth(1000), withTrace())
		require.ErrorIs(t, err, errTooDeep)
		require.Equal(t, "heap", cfg.queue)
		require.False(t, cfg.traced)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &builderConfig{}
		require.NoError(t, Apply(cfg, nil, withTrace()))
		require.True(t, cfg.traced)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &builderConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, builderConfig{}, *cfg)
	})
}
