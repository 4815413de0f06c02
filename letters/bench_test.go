package letters_test

import (
	"testing"

	"github.com/zillionlab/fourchain/letters"
	"github.com/zillionlab/fourchain/pnum"
)

// BenchmarkInName_Small measures the letter count of a machine-sized
// number.
func BenchmarkInName_Small(b *testing.B) {
	n, _ := pnum.FromInt64(1373373373)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = letters.InName(n)
	}
}

// BenchmarkInName_HugeRun measures the same count on a run of a
// septillion periods; the cost must not scale with the repeat.
func BenchmarkInName_HugeRun(b *testing.B) {
	n, _ := pnum.Parse("1[373]{1000000000000000000000000}")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = letters.InName(n)
	}
}
