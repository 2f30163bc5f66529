package varseq

import "testing"

func BenchmarkVarSeq_Get(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := NewVarSeq("CONST")
		_ = s.Get(64)
	}
}

func BenchmarkRandStrLenSeq_Get(b *testing.B) {
	s := NewRandStrLenSeq(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Get(i)
	}
}
