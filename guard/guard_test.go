package guard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct {
	closes   int
	closeErr error
}

func (c *countingCloser) Close() error {
	c.closes++
	return c.closeErr
}

var errBlock = errors.New("block failed")

func TestUseReleasesOnce(t *testing.T) {
	tests := map[string]struct {
		block  func(*countingCloser) error
		err    error
		panics bool
	}{
		"normal return": {block: func(*countingCloser) error { return nil }},
		"error return":  {block: func(*countingCloser) error { return errBlock }, err: errBlock},
		"panic":         {block: func(*countingCloser) error { panic("boom") }, panics: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := &countingCloser{}
			open := func() (*countingCloser, error) { return c, nil }

			if test.panics {
				assert.PanicsWithValue(t, "boom", func() { _ = Use(open, test.block) })
			} else {
				err := Use(open, test.block)
				if test.err != nil {
					assert.ErrorIs(t, err, test.err)
				} else {
					assert.NoError(t, err)
				}
			}
			assert.Equal(t, 1, c.closes)
		})
	}
}

func TestUseOpenFailureSkipsBlockAndRelease(t *testing.T) {
	errOpen := errors.New("cannot open")
	called := false
	err := Use(func() (*countingCloser, error) {
		return nil, errOpen
	}, func(*countingCloser) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, errOpen)
	assert.False(t, called)
}

func TestUseCombinesCloseError(t *testing.T) {
	errClose := errors.New("close failed")
	c := &countingCloser{closeErr: errClose}

	err := Use(func() (*countingCloser, error) { return c, nil }, func(*countingCloser) error {
		return errBlock
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errBlock)
	assert.ErrorIs(t, err, errClose)
	assert.Equal(t, 1, c.closes)
}

func TestUseReportsCloseError(t *testing.T) {
	errClose := errors.New("close failed")
	c := &countingCloser{closeErr: errClose}

	err := Use(func() (*countingCloser, error) { return c, nil }, func(*countingCloser) error {
		return nil
	})

	assert.Equal(t, errClose, err)
}
