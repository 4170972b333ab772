package traffic

import (
	"context"

	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"
)

// Lock is a binary semaphore guarding a CongestionTable.
// It counts its holders so tests can check that the count never exceeds one.
type Lock struct {
	sem *semaphore.Weighted

	holders  atomic.Int32
	maxHeld  atomic.Int32
	acquired atomic.Int64
}

// NewLock returns an unlocked Lock.
func NewLock() *Lock {
	return &Lock{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the lock is free or ctx is done.
func (l *Lock) Acquire(ctx context.Context) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	n := l.holders.Inc()
	for {
		m := l.maxHeld.Load()
		if n <= m || l.maxHeld.CompareAndSwap(m, n) {
			break
		}
	}
	l.acquired.Inc()
	return nil
}

// Release gives the lock back. Releasing an unheld lock panics.
func (l *Lock) Release() {
	if l.holders.Dec() < 0 {
		panic("traffic: release of unheld lock")
	}
	l.sem.Release(1)
}

// Holders is the number of goroutines currently holding the lock.
func (l *Lock) Holders() int { return int(l.holders.Load()) }

// MaxHolders is the highest holder count ever observed.
func (l *Lock) MaxHolders() int { return int(l.maxHeld.Load()) }

// Acquisitions counts successful Acquire calls.
func (l *Lock) Acquisitions() int64 { return l.acquired.Load() }
