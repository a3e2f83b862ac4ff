package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	values map[string][]byte
	closed bool
}

func (s *stubStore) Get(_ context.Context, key string) ([]byte, error) { return s.values[key], nil }

func (s *stubStore) Set(_ context.Context, key string, value []byte) error {
	s.values[key] = value
	return nil
}

func (s *stubStore) Close() error {
	s.closed = true
	return nil
}

func TestWithCloser(t *testing.T) {
	ctx := context.Background()
	inner := &stubStore{values: map[string][]byte{}}
	errClose := errors.New("close failed")

	calls := 0
	store := withCloser(inner, func() error {
		calls++
		return errClose
	})

	require.NoError(t, store.Set(ctx, "notes", []byte("[]")))
	value, err := store.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)

	assert.ErrorIs(t, store.Close(), errClose)
	assert.Equal(t, 1, calls)
	assert.False(t, inner.closed, "the owner closes the connection, not the adapter")
}
