package famrisk

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialProb is the probability of exactly x successes in n trials with
// success probability p. Unlike distuv.Binomial, it is exact (and not NaN) at
// p = 0, p = 1 and n = 0.
func BinomialProb(x, n int, p float64) float64 {
	if x < 0 || x > n {
		return 0
	}

	switch {
	case n == 0:
		return 1
	case p <= 0:
		if x == 0 {
			return 1
		}
		return 0
	case p >= 1:
		if x == n {
			return 1
		}
		return 0
	}

	return distuv.Binomial{N: float64(n), P: p}.Prob(float64(x))
}

// BinomialTail is P(X >= x) for X ~ Binomial(n, p). The upper tail is summed
// term by term rather than taken as 1 - CDF(x-1), which would lose all
// precision when the tail is small.
func BinomialTail(x, n int, p float64) float64 {
	if x <= 0 {
		return 1
	}
	if x > n {
		return 0
	}

	terms := make([]float64, 0, n-x+1)
	for j := x; j <= n; j++ {
		terms = append(terms, BinomialProb(j, n, p))
	}

	tail := floats.Sum(terms)
	if tail > 1 {
		return 1
	}
	return tail
}

// BinomialLogProb is the log of BinomialProb. It stays finite for large n
// where BinomialProb underflows to 0.
func BinomialLogProb(x, n int, p float64) float64 {
	if x < 0 || x > n || n == 0 || p <= 0 || p >= 1 {
		return math.Log(BinomialProb(x, n, p))
	}

	return distuv.Binomial{N: float64(n), P: p}.LogProb(float64(x))
}

// BinomialLogTail is the log of BinomialTail, accumulated on the log scale.
func BinomialLogTail(x, n int, p float64) float64 {
	if x <= 0 || x > n || p <= 0 || p >= 1 {
		return math.Log(BinomialTail(x, n, p))
	}

	terms := make([]float64, 0, n-x+1)
	for j := x; j <= n; j++ {
		terms = append(terms, BinomialLogProb(j, n, p))
	}

	return math.Min(0, floats.LogSumExp(terms))
}
