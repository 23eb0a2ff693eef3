package queue_test

import (
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkErr error

func BenchmarkRing_EnqueueDequeue(b *testing.B) {
	q := queue.New[int](5)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var err error
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(i)
		val, err = q.Dequeue()
	}
	sinkInt = val
	sinkErr = err
}

// Play-and-refill pattern: the queue stays full and every step rotates it.
func BenchmarkRing_Rotate_Full(b *testing.B) {
	q := queue.New[int](5)
	for i := 0; i < 5; i++ {
		_ = q.Enqueue(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		val, _ = q.Dequeue()
		_ = q.Enqueue(i)
	}
	sinkInt = val
}

func BenchmarkRing_At(b *testing.B) {
	q := queue.New[int](5)
	for i := 0; i < 5; i++ {
		_ = q.Enqueue(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		val, _ = q.At(i % 5)
	}
	sinkInt = val
}

// Baseline: go-lock-free-ring with a single shard, used as a plain FIFO.
func BenchmarkShardedRing1_WriteRead(b *testing.B) {
	r, _ := ring.NewShardedRing(8, 1)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Write(0, i)
		r.TryRead()
	}
}
