package semaphore

import (
	"context"
	"fmt"
)

// Semaphore bounds the number of concurrent holders.
type Semaphore struct {
	semaCh chan struct{}
}

func New(capacity uint64) *Semaphore {
	if capacity == 0 {
		capacity = 1
	}
	return &Semaphore{
		semaCh: make(chan struct{}, capacity),
	}
}

func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("semaphore acquire: %w", ctx.Err())
	case s.semaCh <- struct{}{}:
		return nil
	}
}

func (s *Semaphore) Release() {
	<-s.semaCh
}
