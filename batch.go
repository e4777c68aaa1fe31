package takum

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// batchChunk is the number of elements processed by one goroutine at a time.
const batchChunk = 4096

// Apply sets dst[i] = fn(src[i]) for every i, splitting the work between
// GOMAXPROCS goroutines. dst and src may be the same slice.
// It stops early and returns the context's error if ctx is done.
func Apply[T Takum](ctx context.Context, dst, src []T, fn func(T) T) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	return parallel(ctx, len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(src[i])
		}
	})
}

// Apply2 sets dst[i] = fn(a[i], b[i]) for every i, like Apply.
func Apply2[T Takum](ctx context.Context, dst, a, b []T, fn func(T, T) T) error {
	if len(dst) != len(a) || len(dst) != len(b) {
		return ErrLengthMismatch
	}
	return parallel(ctx, len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(a[i], b[i])
		}
	})
}

func parallel(ctx context.Context, n int, work func(lo, hi int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < n && gctx.Err() == nil; lo += batchChunk {
		lo, hi := lo, min(lo+batchChunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			work(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
