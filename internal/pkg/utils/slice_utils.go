package utils

import "github.com/samber/lo"

// Batch splits items into consecutive batches of at most size elements.
// A non-positive size yields a single batch.
func Batch[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(items)
	}
	return lo.Chunk(items, size)
}
