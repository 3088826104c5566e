package seq

import "time"

// A list of hook positions. A Sequence invokes its hooks at these positions
// after the corresponding mutation completes.
var (
	HookPosPush      = &HookPos{Name: "Sequence Push"}
	HookPosPop       = &HookPos{Name: "Sequence Pop"}
	HookPosPopHead   = &HookPos{Name: "Sequence Pop Head"}
	HookPosCut       = &HookPos{Name: "Sequence Cut"}
	HookPosMerge     = &HookPos{Name: "Sequence Merge"}
	HookPosReverse   = &HookPos{Name: "Sequence Reverse"}
	HookPosClear     = &HookPos{Name: "Sequence Clear"}
	HookPosFill      = &HookPos{Name: "Sequence Fill"}
	HookPosSortStart = &HookPos{Name: "Sequence Sort Start"}
	HookPosSortEnd   = &HookPos{Name: "Sequence Sort End"}
)

// A Sequence is a mutable numeric sequence with a fixed capacity. The
// backing storage is allocated once at construction and is exclusively
// owned by the Sequence. The populated prefix of the storage holds the
// meaningful elements; the suffix is kept zeroed.
type Sequence struct {
	HookableBase

	name    string
	storage []float64
	length  int
}

// New creates a Sequence with the given capacity. It fails with
// ErrCapacityTooSmall when the capacity is not greater than 1. The name
// must follow the naming convention checked by NameMustBeValid.
func New(name string, capacity int) (*Sequence, error) {
	NameMustBeValid(name)

	if capacity <= 1 {
		return nil, ErrCapacityTooSmall
	}

	return &Sequence{
		name:    name,
		storage: make([]float64, capacity),
	}, nil
}

// Name returns the name of the sequence.
func (s *Sequence) Name() string {
	return s.name
}

// Capacity returns the fixed maximum number of elements.
func (s *Sequence) Capacity() int {
	return len(s.storage)
}

// Length returns the number of populated elements.
func (s *Sequence) Length() int {
	return s.length
}

// IsEmpty returns true when no element is populated.
func (s *Sequence) IsEmpty() bool {
	return s.length == 0
}

// HasSingleElement returns true when exactly one element is populated.
func (s *Sequence) HasSingleElement() bool {
	return s.length == 1
}

// At returns the element at the given index. A negative index counts from
// the end of the populated region, Python style. It fails with
// ErrIndexOutOfBounds when the resolved index falls outside the populated
// region.
func (s *Sequence) At(index int) (float64, error) {
	if index < 0 {
		index += s.length
	}

	if index < 0 || index >= s.length {
		return 0, ErrIndexOutOfBounds
	}

	return s.storage[index], nil
}

// Push appends a value at the end of the populated region. It fails with
// ErrCapacityExceeded when the sequence is full.
func (s *Sequence) Push(v float64) error {
	if s.length+1 > len(s.storage) {
		return ErrCapacityExceeded
	}

	s.storage[s.length] = v
	s.length++

	s.invokeHookAt(HookPosPush, v)

	return nil
}

// Pop removes the last populated element and returns the new length. When
// the sequence is empty, Pop returns -1 without mutating. The -1 sentinel
// is indistinguishable from a real length only in the sense that no error
// is raised; callers that need to tell the cases apart must check IsEmpty
// first.
func (s *Sequence) Pop() int {
	if s.length == 0 {
		return -1
	}

	s.length--
	v := s.storage[s.length]
	s.storage[s.length] = 0

	s.invokeHookAt(HookPosPop, v)

	return s.length
}

// PopHead removes the first populated element, shifting the remaining
// elements left by one position, and returns the new length. When the
// sequence is empty, PopHead returns -1 without mutating.
func (s *Sequence) PopHead() int {
	if s.length == 0 {
		return -1
	}

	v := s.storage[0]
	copy(s.storage[:s.length-1], s.storage[1:s.length])
	s.length--
	s.storage[s.length] = 0

	s.invokeHookAt(HookPosPopHead, v)

	return s.length
}

// Clear removes all populated elements and zeroes their slots.
func (s *Sequence) Clear() {
	for i := 0; i < s.length; i++ {
		s.storage[i] = 0
	}
	s.length = 0

	s.invokeHookAt(HookPosClear, nil)
}

// Between returns a freshly allocated copy of the inclusive range
// [start, end] of the populated region, order preserved. It fails with
// ErrIndexOutOfBounds when start is negative or end is beyond the last
// populated index, and with ErrInvalidRange when start is greater than end.
// On an empty sequence every call fails with ErrIndexOutOfBounds.
func (s *Sequence) Between(start, end int) ([]float64, error) {
	if start < 0 || end > s.length-1 {
		return nil, ErrIndexOutOfBounds
	}

	if start > end {
		return nil, ErrInvalidRange
	}

	selected := make([]float64, end-start+1)
	copy(selected, s.storage[start:end+1])

	return selected, nil
}

// Cut removes the half-open range [from, to) of the populated region,
// shifting the elements at or after to down to close the gap. It fails with
// ErrIndexOutOfBounds when from is negative or to is beyond the populated
// length, and with ErrInvalidRange when from is not smaller than to.
func (s *Sequence) Cut(from, to int) error {
	if from < 0 || to > s.length {
		return ErrIndexOutOfBounds
	}

	if from >= to {
		return ErrInvalidRange
	}

	removed := to - from
	copy(s.storage[from:], s.storage[to:s.length])
	for i := s.length - removed; i < s.length; i++ {
		s.storage[i] = 0
	}
	s.length -= removed

	s.invokeHookAt(HookPosCut, [2]int{from, to})

	return nil
}

// Merge appends every element of values, in order. The capacity check runs
// before any write, so a merge that would exceed the capacity fails with
// ErrCapacityExceeded and leaves the sequence completely unmutated. It
// returns the new length.
func (s *Sequence) Merge(values []float64) (int, error) {
	if s.length+len(values) > len(s.storage) {
		return s.length, ErrCapacityExceeded
	}

	for _, v := range values {
		s.storage[s.length] = v
		s.length++
	}

	s.invokeHookAt(HookPosMerge, values)

	return s.length, nil
}

// Reverse reverses the populated region in place. Empty and single-element
// sequences are left untouched.
func (s *Sequence) Reverse() {
	if s.length < 2 {
		return
	}

	for i, j := 0, s.length-1; i < j; i, j = i+1, j-1 {
		s.storage[i], s.storage[j] = s.storage[j], s.storage[i]
	}

	s.invokeHookAt(HookPosReverse, nil)
}

// Sort sorts the populated region in place, ascending, using an adaptive
// pairwise comparison-and-swap that terminates as soon as a full pass
// performs no swap. Already sorted input therefore takes a single pass. It
// returns the elapsed wall-clock time of the sort, exactly 0 on the
// empty and single-element no-op paths.
func (s *Sequence) Sort() time.Duration {
	if s.length < 2 {
		return 0
	}

	s.invokeHookAt(HookPosSortStart, nil)

	start := time.Now()

	for {
		swapped := false

		for i := 1; i < s.length; i++ {
			if s.storage[i] < s.storage[i-1] {
				s.storage[i-1], s.storage[i] = s.storage[i], s.storage[i-1]
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	elapsed := time.Since(start)

	s.invokeHookAt(HookPosSortEnd, elapsed)

	return elapsed
}

// Fill assigns v to every slot and saturates the sequence to full capacity.
// It returns the sequence for chaining.
func (s *Sequence) Fill(v float64) *Sequence {
	for i := range s.storage {
		s.storage[i] = v
	}
	s.length = len(s.storage)

	s.invokeHookAt(HookPosFill, v)

	return s
}

// FillFunc assigns fn(i) to every slot i and saturates the sequence to full
// capacity. It returns the sequence for chaining.
func (s *Sequence) FillFunc(fn func(i int) float64) *Sequence {
	for i := range s.storage {
		s.storage[i] = fn(i)
	}
	s.length = len(s.storage)

	s.invokeHookAt(HookPosFill, nil)

	return s
}

// Map replaces every populated element with fn(element, index), in place.
// It returns the sequence for chaining.
func (s *Sequence) Map(fn func(v float64, i int) float64) *Sequence {
	for i := 0; i < s.length; i++ {
		s.storage[i] = fn(s.storage[i], i)
	}

	return s
}

// ForEach invokes fn(element, index) for every populated element. It
// returns the sequence for chaining.
func (s *Sequence) ForEach(fn func(v float64, i int)) *Sequence {
	for i := 0; i < s.length; i++ {
		fn(s.storage[i], i)
	}

	return s
}

// Min returns the smallest populated element, or 0 when the sequence is
// empty. NaN elements never win a comparison, so they are skipped once a
// non-NaN element starts the scan.
func (s *Sequence) Min() float64 {
	if s.length == 0 {
		return 0
	}

	min := s.storage[0]
	for _, v := range s.storage[1:s.length] {
		if v < min {
			min = v
		}
	}

	return min
}

// Max returns the largest populated element, or 0 when the sequence is
// empty. NaN elements never win a comparison, so they are skipped once a
// non-NaN element starts the scan.
func (s *Sequence) Max() float64 {
	if s.length == 0 {
		return 0
	}

	max := s.storage[0]
	for _, v := range s.storage[1:s.length] {
		if v > max {
			max = v
		}
	}

	return max
}

// Sum returns the sum of the populated elements, or 0 when the sequence is
// empty.
func (s *Sequence) Sum() float64 {
	sum := 0.0
	for _, v := range s.storage[:s.length] {
		sum += v
	}

	return sum
}

// Mean returns the arithmetic mean of the populated elements, or 0 when the
// sequence is empty.
func (s *Sequence) Mean() float64 {
	if s.length == 0 {
		return 0
	}

	return s.Sum() / float64(s.length)
}

func (s *Sequence) invokeHookAt(pos *HookPos, item interface{}) {
	if s.NumHooks() == 0 {
		return
	}

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    pos,
		Item:   item,
		Detail: nil,
	})
}
