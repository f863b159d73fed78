package arr_test

import (
	"math/rand"
	"testing"

	"github.com/hasbyte1/go-array-utils/arr"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkSortNatural(b *testing.B) {
	src := makeInts(10_000)
	rand.New(rand.NewSource(1)).Shuffle(len(src), func(i, j int) { src[i], src[j] = src[j], src[i] })
	work := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		_ = arr.Sort(work, nil)
	}
}

func BenchmarkBinarySearch(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.BinarySearch(s, i%10_000, nil)
	}
}

func BenchmarkFindIndex(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.FindIndex(s, func(n int) bool { return n == 9_999 })
	}
}

func BenchmarkCopyWidening(b *testing.B) {
	src := make([]int32, 1_000)
	dst := make([]int64, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.Copy(src, dst, len(src))
	}
}
