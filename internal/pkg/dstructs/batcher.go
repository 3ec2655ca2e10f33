package dstructs

import (
	"context"
	"sync"
)

// Batcher buffers items and hands them to flush in slices of at most size items.
// It is safe for concurrent use. Callers must call Close to flush the remainder.
type Batcher[T any] struct {
	mu      sync.Mutex
	size    int
	buf     []T
	flushed int
	flush   func(ctx context.Context, batch []T) error
}

func NewBatcher[T any](size int, flush func(ctx context.Context, batch []T) error) *Batcher[T] {
	if size < 1 {
		size = 1
	}
	return &Batcher[T]{
		size:  size,
		buf:   make([]T, 0, size),
		flush: flush,
	}
}

// Add appends items, flushing every time the buffer reaches size.
// On a flush error the failed batch is dropped from the buffer and the error returned.
func (b *Batcher[T]) Add(ctx context.Context, items ...T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range items {
		b.buf = append(b.buf, item)
		if len(b.buf) >= b.size {
			if err := b.flushLocked(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close flushes whatever is left in the buffer.
func (b *Batcher[T]) Close(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.buf) == 0 {
		return nil
	}
	return b.flushLocked(ctx)
}

// Flushed returns the number of items successfully handed to flush.
func (b *Batcher[T]) Flushed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushed
}

func (b *Batcher[T]) flushLocked(ctx context.Context) error {
	batch := b.buf
	b.buf = make([]T, 0, b.size)
	if err := b.flush(ctx, batch); err != nil {
		return err
	}
	b.flushed += len(batch)
	return nil
}
