package rbtree

import (
	"math/rand"
	"testing"
)

// ---------------- Basic Benchmarks ---------------- //

func BenchmarkInsertSequential(b *testing.B) {
	tree := NewOrdered[int, int](Config{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Insert(i, i)
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(max(b.N, 1))
	tree := NewOrdered[int, int](Config{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Insert(keys[i], i)
	}
}

func BenchmarkFind(b *testing.B) {
	const n = 1 << 16
	tree := NewOrdered[int, int](Config{})
	for i := 0; i < n; i++ {
		tree.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Find(i & (n - 1))
	}
}

// Insert/remove churn over a fixed key set, with and without node reuse.
func benchmarkChurn(b *testing.B, cfg Config) {
	const n = 1 << 12
	tree := NewOrdered[int, int](cfg)
	for i := 0; i < n; i++ {
		tree.Insert(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i & (n - 1)
		_, _ = tree.Remove(k)
		_ = tree.Insert(k, i)
	}
}

func BenchmarkChurn(b *testing.B)       { benchmarkChurn(b, Config{}) }
func BenchmarkChurnPooled(b *testing.B) { benchmarkChurn(b, Config{NodePool: 64}) }
