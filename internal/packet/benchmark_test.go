package packet

import (
	"strings"
	"testing"
)

// deepList returns [[[...n...]]] nested depth times.
func deepList(depth, n int) string {
	return strings.Repeat("[", depth) + strings.Repeat("1,", n) + "1" + strings.Repeat("]", depth)
}

// BenchmarkParse covers flat, wide and deeply nested packets.
func BenchmarkParse(b *testing.B) {
	scenarios := map[string]string{
		"number": "12345",
		"flat":   "[1,1,3,1,1]",
		"sample": "[1,[2,[3,[4,[5,6,7]]]],8,9]",
		"wide":   deepList(1, 1000),
		"deep":   deepList(500, 1),
	}

	for name, input := range scenarios {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Parse(input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCompare measures the promotion path, which compares a number
// against a nested list at every level.
func BenchmarkCompare(b *testing.B) {
	left := MustParse(deepList(200, 0))
	right := MustParse("[" + deepList(199, 1) + "]")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Compare(left, right)
	}
}

func BenchmarkSort(b *testing.B) {
	values := randomValues(7, 300)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := append([]Value(nil), values...)
		b.StartTimer()
		Sort(work)
	}
}
