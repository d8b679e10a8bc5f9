// SPDX-License-Identifier: MPL-2.0

package workload

import (
	"errors"
	"slices"
	"testing"

	"ipsbench/internal/bench"
)

func TestNewArrayRejectsBadSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		if _, err := NewArray(n, 1); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewArray(%d) error = %v, want ErrInvalidSize", n, err)
		}
	}
}

func TestArrayResetIsPermutation(t *testing.T) {
	t.Parallel()

	a, err := NewArray(100, 7)
	if err != nil {
		t.Fatalf("NewArray() returned error: %v", err)
	}

	SlicesSort(a.Data())
	a.Reset()
	shuffled := slices.Clone(a.Data())
	if slices.IsSorted(shuffled) {
		t.Error("Reset() left the array sorted")
	}

	slices.Sort(shuffled)
	for i, v := range shuffled {
		if v != i {
			t.Fatalf("Reset() is not a permutation of 0..99: index %d holds %d", i, v)
		}
	}
}

func TestArrayResetDeterministic(t *testing.T) {
	t.Parallel()

	a, _ := NewArray(50, 42)
	b, _ := NewArray(50, 42)
	if !slices.Equal(a.Data(), b.Data()) {
		t.Error("arrays with the same seed shuffled differently")
	}
}

func TestTasksSortTheArray(t *testing.T) {
	t.Parallel()

	a, err := NewArray(64, 3)
	if err != nil {
		t.Fatalf("NewArray() returned error: %v", err)
	}

	tasks := a.Tasks()
	names := make([]string, 0, len(tasks))
	for i := range tasks {
		names = append(names, tasks[i].Name())
	}
	if !slices.Equal(names, Names()) {
		t.Fatalf("task names = %v, want %v", names, Names())
	}

	for i := range tasks {
		single := bench.NewSuite(a.Reset, tasks[i])
		if err := single.Run(t.Context(), bench.RunOptions{}); err != nil {
			t.Fatalf("%s: Run() returned error: %v", tasks[i].Name(), err)
		}
		if !slices.IsSorted(a.Data()) {
			t.Errorf("%s left the array unsorted", tasks[i].Name())
		}
	}

	suite, err := NewSuite(64, 3)
	if err != nil {
		t.Fatalf("NewSuite() returned error: %v", err)
	}
	if suite.Len() != len(Names()) {
		t.Errorf("suite has %d tasks, want %d", suite.Len(), len(Names()))
	}
}
