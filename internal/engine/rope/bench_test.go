package rope

import (
	"strings"
	"testing"
)

func BenchmarkConcatSmall(b *testing.B) {
	x := FromString("hello")
	y := FromString(" world")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Concat(y)
	}
}

func BenchmarkConcatLarge(b *testing.B) {
	x := ensureChunked(FromString(strings.Repeat("a", 1<<16)))
	y := ensureChunked(FromString(strings.Repeat("b", 1<<16)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Concat(y)
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	base := ensureChunked(FromString(strings.Repeat("x", 1<<16)))
	ins := FromString("Q")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := base.Insert(base.Length()/2, ins); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCharAtSequential(b *testing.B) {
	txt := ensureChunked(FromString(strings.Repeat("x", 1<<16)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := txt.CharAt(i % txt.Length()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	txt := ensureChunked(FromString(strings.Repeat("x", 1<<16)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = txt.String()
	}
}
