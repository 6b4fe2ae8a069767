package seqfiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writePartition materializes numbered feature/label pairs under dir and
// returns the two directories.
func writePartition(t *testing.T, dir string, seqs [][]float64, labels []int) (string, string) {
	t.Helper()
	fdir := filepath.Join(dir, "features")
	ldir := filepath.Join(dir, "labels")
	require.NoError(t, os.MkdirAll(fdir, 0o755))
	require.NoError(t, os.MkdirAll(ldir, 0o755))
	for i, seq := range seqs {
		var sb strings.Builder
		for _, v := range seq {
			fmt.Fprintf(&sb, "%g\n", v)
		}
		require.NoError(t, os.WriteFile(filepath.Join(fdir, fmt.Sprintf("%d.csv", i)), []byte(sb.String()), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(ldir, fmt.Sprintf("%d.csv", i)), []byte(fmt.Sprint(labels[i])), 0o644))
	}
	return fdir, ldir
}

func TestReaderBatches(t *testing.T) {
	fdir, ldir := writePartition(t, t.TempDir(),
		[][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		[]int{0, 1, 0})

	r, err := NewReader(fdir, ldir)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	b, err := r.Next(2)
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
	require.Equal(t, []float64{1, 2, 3}, b.Sequences[0])
	require.Equal(t, []float64{4, 5, 6}, b.Sequences[1])
	require.Equal(t, []int{0, 1}, b.Labels)

	b, err = r.Next(2)
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())
	require.Equal(t, []float64{7, 8, 9}, b.Sequences[0])
	require.Equal(t, []int{0}, b.Labels)

	_, err = r.Next(2)
	require.Equal(t, io.EOF, err)

	r.Reset()
	b, err = r.Next(10)
	require.NoError(t, err)
	require.Equal(t, 3, b.Len())
}

func TestReaderBadBatchSize(t *testing.T) {
	fdir, ldir := writePartition(t, t.TempDir(), [][]float64{{1}}, []int{0})
	r, err := NewReader(fdir, ldir)
	require.NoError(t, err)
	_, err = r.Next(0)
	require.Error(t, err)
}

func TestReaderEmptyPartition(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "features"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "labels"), 0o755))
	_, err := NewReader(filepath.Join(dir, "features"), filepath.Join(dir, "labels"))
	require.Error(t, err)
}

func TestReaderMissingLabel(t *testing.T) {
	fdir, ldir := writePartition(t, t.TempDir(), [][]float64{{1}}, []int{0})
	require.NoError(t, os.Remove(filepath.Join(ldir, "0.csv")))
	_, err := NewReader(fdir, ldir)
	require.Error(t, err)
}

func TestReaderMalformedFeature(t *testing.T) {
	fdir, ldir := writePartition(t, t.TempDir(), [][]float64{{1}}, []int{0})
	require.NoError(t, os.WriteFile(filepath.Join(fdir, "0.csv"), []byte("not-a-number\n"), 0o644))
	r, err := NewReader(fdir, ldir)
	require.NoError(t, err)
	_, err = r.Next(1)
	require.Error(t, err)
}

func TestReaderMalformedLabel(t *testing.T) {
	fdir, ldir := writePartition(t, t.TempDir(), [][]float64{{1}}, []int{0})
	require.NoError(t, os.WriteFile(filepath.Join(ldir, "0.csv"), []byte("zero"), 0o644))
	r, err := NewReader(fdir, ldir)
	require.NoError(t, err)
	_, err = r.Next(1)
	require.Error(t, err)
}
