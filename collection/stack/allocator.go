package stack

import (
	"github.com/dustin/go-humanize"
	"go.uber.org/atomic"

	"github.com/boundedstack/stackutils/commonerrors"
	"github.com/boundedstack/stackutils/safecast"
)

//go:generate go tool mockgen -destination=./mock_test.go -package=stack github.com/boundedstack/stackutils/collection/$GOPACKAGE IAllocator

// IAllocator accounts for the memory acquired by stacks: their slot storage and, for string stacks, the copy of each element.
// Every successful Allocate is matched by exactly one Free of the same size.
type IAllocator interface {
	// Allocate reserves size bytes. It fails with an error matching commonerrors.ErrOutOfMemory if the reservation cannot be satisfied.
	Allocate(size int) error
	// Free returns size bytes previously reserved.
	Free(size int)
}

type heapAllocator struct{}

func (heapAllocator) Allocate(size int) error {
	if size < 0 {
		return commonerrors.Newf(commonerrors.ErrOutOfMemory, "invalid allocation size %v", size)
	}
	return nil
}

func (heapAllocator) Free(int) {}

// NewHeapAllocator returns the allocator used by default. It leaves allocation to the Go runtime and never refuses a reservation.
func NewHeapAllocator() IAllocator {
	return heapAllocator{}
}

// CountingAllocator keeps track of reservations and refuses those which would exceed its limit.
// It is safe to share between goroutines.
type CountingAllocator struct {
	limit       int64
	inUse       atomic.Int64
	peak        atomic.Int64
	allocations atomic.Int64
	frees       atomic.Int64
	failures    atomic.Int64
}

// NewCountingAllocator returns a CountingAllocator allowing at most limit bytes in use. A limit <= 0 means unlimited.
func NewCountingAllocator(limit int) *CountingAllocator {
	return &CountingAllocator{limit: max(int64(limit), 0)}
}

func (a *CountingAllocator) Allocate(size int) error {
	if size < 0 {
		a.failures.Inc()
		return commonerrors.Newf(commonerrors.ErrOutOfMemory, "invalid allocation size %v", size)
	}
	requested := int64(size)
	for {
		current := a.inUse.Load()
		next := current + requested
		if a.limit > 0 && next > a.limit {
			a.failures.Inc()
			return commonerrors.Newf(commonerrors.ErrOutOfMemory, "cannot reserve %v: %v in use out of %v",
				humanize.IBytes(safecast.ToUint64(requested)), humanize.IBytes(safecast.ToUint64(current)), humanize.IBytes(safecast.ToUint64(a.limit)))
		}
		if a.inUse.CompareAndSwap(current, next) {
			a.updatePeak(next)
			break
		}
	}
	a.allocations.Inc()
	return nil
}

func (a *CountingAllocator) updatePeak(inUse int64) {
	for {
		peak := a.peak.Load()
		if inUse <= peak || a.peak.CompareAndSwap(peak, inUse) {
			return
		}
	}
}

func (a *CountingAllocator) Free(size int) {
	a.inUse.Sub(int64(size))
	a.frees.Inc()
}

// InUse returns the number of bytes currently reserved.
func (a *CountingAllocator) InUse() int {
	return safecast.ToInt(a.inUse.Load())
}

// Peak returns the highest number of bytes reserved at once.
func (a *CountingAllocator) Peak() int {
	return safecast.ToInt(a.peak.Load())
}

// Allocations returns the number of successful reservations.
func (a *CountingAllocator) Allocations() int {
	return safecast.ToInt(a.allocations.Load())
}

// Frees returns the number of released reservations.
func (a *CountingAllocator) Frees() int {
	return safecast.ToInt(a.frees.Load())
}

// Failures returns the number of refused reservations.
func (a *CountingAllocator) Failures() int {
	return safecast.ToInt(a.failures.Load())
}

// Outstanding returns the number of reservations not released yet.
func (a *CountingAllocator) Outstanding() int {
	return a.Allocations() - a.Frees()
}
