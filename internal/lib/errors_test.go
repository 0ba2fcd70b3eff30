package lib

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapErrorMatchesBoth(t *testing.T) {
	sentinel := errors.New("cannot load settings")
	err := WrapError(sentinel, os.ErrNotExist)

	require.ErrorIs(t, err, sentinel)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, "cannot load settings: file does not exist", err.Error())
}

func TestWrapErrorNilCause(t *testing.T) {
	sentinel := errors.New("sentinel")
	require.Equal(t, sentinel, WrapError(sentinel, nil))
}
