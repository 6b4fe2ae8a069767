package datasets

import "testing"

// determinism test
func TestPermutationDeterministic(t *testing.T) {
	const n = 600
	a := Permutation(12345, n)
	b := Permutation(12345, n)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("permutation differs at %d: %d != %d", i, a[i], b[i])
		}
	}
	c := Permutation(54321, n)
	var same = true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced the same permutation")
	}
}

// every index appears exactly once
func TestPermutationComplete(t *testing.T) {
	const n = 1000
	perm := Permutation(7, n)
	if len(perm) != n {
		t.Fatalf("wrong length %d", len(perm))
	}
	var seen = make([]bool, n, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("bad or repeated index %d", v)
		}
		seen[v] = true
	}
}

func TestSplit(t *testing.T) {
	perm := Permutation(12345, 600)
	train, test := Split(perm, 450)
	if len(train) != 450 || len(test) != 150 {
		t.Fatalf("wrong partition sizes %d/%d", len(train), len(test))
	}
	var seen = make(map[int]struct{})
	for _, v := range train {
		seen[v] = struct{}{}
	}
	for _, v := range test {
		if _, ok := seen[v]; ok {
			t.Fatalf("index %d in both partitions", v)
		}
		seen[v] = struct{}{}
	}
	if len(seen) != 600 {
		t.Fatalf("partitions cover %d of 600 records", len(seen))
	}
}

func TestSplitClamps(t *testing.T) {
	perm := Permutation(1, 10)
	train, test := Split(perm, -5)
	if len(train) != 0 || len(test) != 10 {
		t.Fatalf("negative trainCount not clamped: %d/%d", len(train), len(test))
	}
	train, test = Split(perm, 99)
	if len(train) != 10 || len(test) != 0 {
		t.Fatalf("oversized trainCount not clamped: %d/%d", len(train), len(test))
	}
}
