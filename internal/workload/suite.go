// SPDX-License-Identifier: MPL-2.0

package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"ipsbench/internal/bench"
)

const (
	// DefaultSize is the array length used when none is configured.
	DefaultSize = 10000

	TaskSelectionSort = "selection sort"
	TaskInsertionSort = "insertion sort"
	TaskStdSort       = "std sort"
	TaskSlicesSort    = "slices sort"
)

// ErrInvalidSize is returned when an array size is not positive.
var ErrInvalidSize = errors.New("invalid workload size")

// Array is the shared input of the sorting suite.
type Array struct {
	data []int
	rng  *rand.Rand
}

// NewArray creates an array of n elements. The shuffle order is fully
// determined by seed.
func NewArray(n int, seed uint64) (*Array, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	a := &Array{
		data: make([]int, n),
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	a.Reset()
	return a, nil
}

// Reset refills the array with 0..n-1 and shuffles it. It is the suite's
// init hook.
func (a *Array) Reset() {
	for i := range a.data {
		a.data[i] = i
	}
	a.rng.Shuffle(len(a.data), func(i, j int) {
		a.data[i], a.data[j] = a.data[j], a.data[i]
	})
}

// Data exposes the backing slice.
func (a *Array) Data() []int {
	return a.data
}

// Tasks returns the sorting tasks over a, in report order.
func (a *Array) Tasks() []bench.Task {
	return []bench.Task{
		bench.NewTask(TaskSelectionSort, func() { SelectionSort(a.data) }),
		bench.NewTask(TaskInsertionSort, func() { InsertionSort(a.data) }),
		bench.NewTask(TaskStdSort, func() { StdSort(a.data) }),
		bench.NewTask(TaskSlicesSort, func() { SlicesSort(a.data) }),
	}
}

// Names returns the built-in task names in suite order.
func Names() []string {
	return []string{TaskSelectionSort, TaskInsertionSort, TaskStdSort, TaskSlicesSort}
}

// NewSuite builds the sorting suite over a fresh array of n elements.
func NewSuite(n int, seed uint64) (*bench.Suite, error) {
	a, err := NewArray(n, seed)
	if err != nil {
		return nil, err
	}
	return bench.NewSuite(a.Reset, a.Tasks()...), nil
}
