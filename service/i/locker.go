package i

import "context"

// Locker serialises work on a key across goroutines or processes.
type Locker interface {
	// Lock blocks until the lock for key is held or ctx is done.
	// The returned func releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}
