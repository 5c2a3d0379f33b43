package optimizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEachPermutation(t *testing.T) {
	var got []string
	forEachPermutation(3, func(perm []int) bool {
		got = append(got, fmt.Sprint(perm))
		return true
	})

	assert.Equal(t, []string{
		"[0 1 2]", "[0 2 1]", "[1 0 2]", "[1 2 0]", "[2 0 1]", "[2 1 0]",
	}, got)
}

func TestForEachPermutation_Count(t *testing.T) {
	for n := 1; n <= 6; n++ {
		count := 0
		seen := map[string]bool{}
		forEachPermutation(n, func(perm []int) bool {
			count++
			seen[fmt.Sprint(perm)] = true
			return true
		})
		assert.Equal(t, factorial(n), count, "n=%d", n)
		assert.Len(t, seen, factorial(n), "n=%d", n)
	}
}

func TestForEachPermutation_Stops(t *testing.T) {
	count := 0
	forEachPermutation(5, func(perm []int) bool {
		count++
		return count < 10
	})
	assert.Equal(t, 10, count)
}

func TestCircularArrangementCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{2, "1"},
		{3, "1"},
		{4, "3"},
		{5, "12"},
		{8, "2520"},
		{30, "4420880996869850977271808000000"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, CircularArrangementCount(tt.n).String())
		})
	}
}
