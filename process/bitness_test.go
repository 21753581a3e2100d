package process

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitnessCacheMemoizesFirstSuccess(t *testing.T) {
	var cache BitnessCache
	calls := 0

	query := func() (bool, error) {
		calls++
		return true, nil
	}

	for i := 0; i < 5; i++ {
		is64, err := cache.Resolve(query)
		require.NoError(t, err)
		require.True(t, is64)
	}
	require.Equal(t, 1, calls, "query must run only once after the first success")
	require.True(t, cache.Resolved())
}

func TestBitnessCacheDoesNotCacheFailure(t *testing.T) {
	var cache BitnessCache
	calls := 0
	queryErr := errors.New("access denied")

	failing := func() (bool, error) {
		calls++
		return false, queryErr
	}

	_, err := cache.Resolve(failing)
	require.ErrorIs(t, err, queryErr)
	_, err = cache.Resolve(failing)
	require.ErrorIs(t, err, queryErr)
	require.Equal(t, 2, calls, "failed queries must be retried")
	require.False(t, cache.Resolved())

	// A later success is cached as usual.
	is64, err := cache.Resolve(func() (bool, error) { return false, nil })
	require.NoError(t, err)
	require.False(t, is64)
	require.True(t, cache.Resolved())

	is64, err = cache.Resolve(failing)
	require.NoError(t, err, "cached answer must win over the query")
	require.False(t, is64)
	require.Equal(t, 2, calls)
}
