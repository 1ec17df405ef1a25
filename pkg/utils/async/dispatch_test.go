package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/foundry/pkg/utils/async"
	"github.com/m-mizutani/gt"
)

func TestDispatcher(t *testing.T) {
	t.Run("executes handler and Wait drains it", func(t *testing.T) {
		d := async.New()
		executed := false

		d.Dispatch(context.Background(), func(ctx context.Context) error {
			executed = true
			return nil
		})

		gt.NoError(t, d.Wait(context.Background()))
		gt.True(t, executed)
	})

	t.Run("handler errors are absorbed", func(t *testing.T) {
		d := async.New()

		d.Dispatch(context.Background(), func(ctx context.Context) error {
			return errors.New("background failure")
		})

		gt.NoError(t, d.Wait(context.Background()))
	})

	t.Run("recovers from panic", func(t *testing.T) {
		d := async.New()

		d.Dispatch(context.Background(), func(ctx context.Context) error {
			panic("background panic")
		})

		gt.NoError(t, d.Wait(context.Background()))
	})

	t.Run("detaches from the request context", func(t *testing.T) {
		d := async.New()
		ctx, cancel := context.WithCancel(context.Background())

		canceled := make(chan bool, 1)
		d.Dispatch(ctx, func(newCtx context.Context) error {
			cancel()
			select {
			case <-newCtx.Done():
				canceled <- true
			default:
				canceled <- false
			}
			return nil
		})

		gt.NoError(t, d.Wait(context.Background()))
		gt.False(t, <-canceled)
	})

	t.Run("Wait honors context deadline while a unit runs", func(t *testing.T) {
		d := async.New()
		release := make(chan struct{})

		d.Dispatch(context.Background(), func(ctx context.Context) error {
			<-release
			return nil
		})

		waitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		gt.Error(t, d.Wait(waitCtx))

		close(release)
		gt.NoError(t, d.Wait(context.Background()))
	})

	t.Run("tracks multiple concurrent units", func(t *testing.T) {
		d := async.New()
		results := make(chan int, 3)

		for i := 0; i < 3; i++ {
			i := i
			d.Dispatch(context.Background(), func(ctx context.Context) error {
				results <- i
				return nil
			})
		}

		gt.NoError(t, d.Wait(context.Background()))
		gt.Equal(t, len(results), 3)
	})
}
