// SPDX-License-Identifier: MPL-2.0

package workload

import (
	"sort"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SelectionSort sorts s in place by repeatedly swapping the minimum of the
// unsorted tail into position.
func SelectionSort[T constraints.Ordered](s []T) {
	for i := range s {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		s[i], s[minIdx] = s[minIdx], s[i]
	}
}

// InsertionSort sorts s in place.
func InsertionSort[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for ; j >= 0 && s[j] > v; j-- {
			s[j+1] = s[j]
		}
		s[j+1] = v
	}
}

// StdSort sorts s with sort.Ints.
func StdSort(s []int) {
	sort.Ints(s)
}

// SlicesSort sorts s with the generic pattern-defeating quicksort.
func SlicesSort[T constraints.Ordered](s []T) {
	slices.Sort(s)
}
