package shutdown_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmemo/pkg/shutdown"
)

func TestRunExecutesHooks(t *testing.T) {
	var calls atomic.Int32

	hook := func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}

	require.NoError(t, shutdown.Run(time.Second, hook, hook))
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunJoinsErrors(t *testing.T) {
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	err := shutdown.Run(time.Second,
		func(context.Context) error { return errFirst },
		func(context.Context) error { return nil },
		func(context.Context) error { return errSecond },
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
}

func TestRunRespectsTimeout(t *testing.T) {
	start := time.Now()

	err := shutdown.Run(50*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, shutdown.ErrHooksTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestRunWithoutHooks(t *testing.T) {
	assert.NoError(t, shutdown.Run(time.Second))
}

func TestContextCancelledBySignal(t *testing.T) {
	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	process, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, process.Signal(syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
}

func TestContextStop(t *testing.T) {
	ctx, stop := shutdown.Context(context.Background())
	stop()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("stop must cancel the context")
	}
}
