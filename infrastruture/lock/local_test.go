package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	t.Run("Serialises same key", func(t *testing.T) {
		l := NewLocalLocker()
		counter := 0
		var wg sync.WaitGroup
		for n := 0; n < 50; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(context.Background(), "board")
				if err != nil {
					return
				}
				defer unlock()
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
	})

	t.Run("Independent keys", func(t *testing.T) {
		l := NewLocalLocker()
		unlockA, err := l.Lock(context.Background(), "a")
		require.NoError(t, err)
		defer unlockA()

		unlockB, err := l.Lock(context.Background(), "b")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("Context cancels wait", func(t *testing.T) {
		l := NewLocalLocker()
		unlock, err := l.Lock(context.Background(), "a")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = l.Lock(ctx, "a")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		unlock()
		unlock()
		again, err := l.Lock(context.Background(), "a")
		require.NoError(t, err)
		again()

		assert.Empty(t, l.(*LocalLocker).slots)
	})
}
