// Package lock provides short-lived mutual exclusion keyed by string, used to
// serialize booking attempts for the same client and apartment.
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired is returned when the lock is still held by someone else
// after the wait budget is spent.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker hands out a release func for key once no other holder has it.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

const (
	DefaultTTL   = 5 * time.Second
	retryBackoff = 50 * time.Millisecond
)
