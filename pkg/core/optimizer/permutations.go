package optimizer

import "math/big"

// forEachPermutation visits every ordering of 0..n-1 in lexicographic order.
// The slice passed to visit is reused between calls; visit returns false to stop.
func forEachPermutation(n int, visit func(perm []int) bool) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for {
		if !visit(perm) {
			return
		}

		// Find the rightmost ascent
		i := n - 2
		for i >= 0 && perm[i] > perm[i+1] {
			i--
		}
		if i < 0 {
			return
		}

		// Swap it with the smallest larger element to its right, then reverse the tail
		j := n - 1
		for perm[j] < perm[i] {
			j--
		}
		perm[i], perm[j] = perm[j], perm[i]
		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			perm[l], perm[r] = perm[r], perm[l]
		}
	}
}

// factorial returns n! for small n
func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// CircularArrangementCount returns the number of distinct circular tables for n
// guests ignoring rotation and reflection: (n-1)!/2, or 1 for n <= 2
func CircularArrangementCount(n int) *big.Int {
	if n <= 2 {
		return big.NewInt(1)
	}
	count := new(big.Int).MulRange(1, int64(n-1))
	return count.Div(count, big.NewInt(2))
}
