// Package datasets implements shared dataset helpers.
package datasets

import "math/rand"

// Permutation returns the order of n elements after a Fisher-Yates shuffle
// driven by seed. The same seed and n always produce the same order, on
// every platform.
func Permutation(seed int64, n int) (o []int) {
	o = make([]int, n)
	for i := range o {
		o[i] = i
	}
	rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) { o[i], o[j] = o[j], o[i] })
	return o
}

// Split cuts a permutation into a train prefix of trainCount elements and a
// test remainder. Together the two slices cover the permutation exactly once.
func Split(perm []int, trainCount int) (train, test []int) {
	if trainCount < 0 {
		trainCount = 0
	}
	if trainCount > len(perm) {
		trainCount = len(perm)
	}
	return perm[:trainCount], perm[trainCount:]
}
