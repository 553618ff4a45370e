package famrisk

// Choose k from n items can be done in this many ways. The result is exact as
// long as it fits in an int. Originally derived from github.com/limix/bgen
// /src/util/choose.c
func Choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	} else if k == 0 || k == n {
		return 1
	} else if k == 1 {
		return n
	}

	ans := 1

	if k > n-k {
		k = n - k
	}

	// After step j, ans == C(n0, j), so the division is always exact.
	for j := 1; j <= k; j++ {
		if n%j == 0 {
			ans *= n / j
		} else if ans%j == 0 {
			ans = ans / j * n
		} else {
			ans = (ans * n) / j
		}

		n--
	}

	return ans
}
