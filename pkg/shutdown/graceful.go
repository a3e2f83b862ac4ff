// Package shutdown отменяет контекст по сигналам SIGINT и SIGTERM
// и выполняет хуки завершения в рамках заданного timeout.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// ErrHooksTimeout возвращается, если хуки не успели завершиться.
var ErrHooksTimeout = errors.New("shutdown hooks did not finish in time")

// Context возвращает контекст, отменяемый при получении SIGINT или SIGTERM.
// stop освобождает подписку на сигналы.
func Context(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Run выполняет все хуки параллельно и ждет их не дольше timeout.
// Ошибки хуков объединяются через errors.Join.
func Run(timeout time.Duration, hooks ...func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	errs := make([]error, len(hooks))

	var wgp sync.WaitGroup
	for i, hook := range hooks {
		wgp.Add(1)
		go func(i int, fn func(context.Context) error) {
			defer wgp.Done()
			errs[i] = fn(ctx)
		}(i, hook)
	}

	done := make(chan struct{})
	go func() {
		wgp.Wait()
		close(done)
	}()

	select {
	case <-done:
		return errors.Join(errs...)
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrHooksTimeout, ctx.Err())
	}
}
