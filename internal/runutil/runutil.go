// internal/runutil/runutil.go
package runutil

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"kmervec-core/kmer"
)

// DenseWarnBytes is the per-vector size above which a dense store draws a
// warning.
const DenseWarnBytes = 1 << 30

// MaxDenseBytes is the largest dense allocation CheckDense allows.
const MaxDenseBytes = 1 << 40

// EffectiveThreads returns threads, or the CPU count when threads <= 0.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	return runtime.NumCPU()
}

// ElementSize is the byte width of T.
func ElementSize[T kmer.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// DenseBytes estimates the memory of `vectors` dense count vectors of A^K
// elements of size elem. ok is false when A^K overflows.
func DenseBytes(a, k, elem, vectors int) (n uint64, ok bool) {
	size, err := kmer.Size(a, k)
	if err != nil {
		return 0, false
	}
	if vectors < 1 {
		vectors = 1
	}
	per := uint64(elem) * uint64(vectors)
	if uint64(size) > math.MaxUint64/per {
		return 0, false
	}
	return uint64(size) * per, true
}

// ErrDenseTooLarge marks a dense allocation refused by CheckDense.
var ErrDenseTooLarge = errors.New("dense counts too large")

// CheckDense refuses dense allocations that cannot be made at all.
func CheckDense(a, k, elem, vectors int) error {
	n, ok := DenseBytes(a, k, elem, vectors)
	if !ok || n > MaxDenseBytes {
		return fmt.Errorf("%w: %d vector(s) of %d^%d k-mers exceed %s; use --store sparse",
			ErrDenseTooLarge, vectors, a, k, HumanBytes(MaxDenseBytes))
	}
	return nil
}

// MemoryWarnings explains dense allocations that are likely too large.
// Sparse stores and small tables produce none.
func MemoryWarnings(a, k, elem, vectors int, sparse bool) []string {
	if sparse {
		return nil
	}
	n, ok := DenseBytes(a, k, elem, vectors)
	if !ok {
		return []string{fmt.Sprintf("%d^%d k-mers do not fit in memory as dense vectors; use --store sparse", a, k)}
	}
	if n >= DenseWarnBytes {
		return []string{fmt.Sprintf("dense counts need about %s; consider --store sparse or a smaller --type", HumanBytes(n))}
	}
	return nil
}

// HumanBytes renders n with a binary unit.
func HumanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
