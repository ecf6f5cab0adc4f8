package edgelist_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/core"
	"github.com/katalvlaran/nullnet/edgelist"
)

func TestRead(t *testing.T) {
	in := strings.Join([]string{
		"# network",
		"1\t2",
		"",
		"  2 3  ",
		"3 4 0.5 extra",
		"   # indented comment",
		"4 4",
		"2 1",
		"-7 9",
	}, "\n")

	got, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Pair{
		{I: 1, J: 2}, {I: 2, J: 3}, {I: 3, J: 4}, {I: 4, J: 4}, {I: 2, J: 1}, {I: -7, J: 9},
	}, got, "loops and reversed duplicates are kept raw")
}

func TestRead_Empty(t *testing.T) {
	got, err := edgelist.Read(strings.NewReader("# only a header\n\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_Malformed(t *testing.T) {
	tests := map[string]struct {
		in   string
		line string
	}{
		"one field":    {"1 2\n3\n", "line 2"},
		"not a number": {"1 2\n2 3\nx 4\n", "line 3"},
		"float id":     {"1.5 2\n", "line 1"},
		"overflow":     {"99999999999999999999 1\n", "line 1"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := edgelist.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, edgelist.ErrMalformedEdge)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRead_IOError(t *testing.T) {
	_, err := edgelist.Read(failingReader{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, edgelist.ErrMalformedEdge)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, []core.Edge{{U: 1, V: 2}, {U: 3, V: 10}, {U: -1, V: 4}}))
	assert.Equal(t, "1\t2\n3\t10\n-1\t4", buf.String())

	buf.Reset()
	require.NoError(t, edgelist.Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tsv")
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}}

	require.NoError(t, edgelist.WriteFile(path, edges))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\t2\n2\t3", string(raw))

	pairs, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []core.Pair{{I: 1, J: 2}, {I: 2, J: 3}}, pairs)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteFile_MissingDirLeavesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.tsv")
	require.Error(t, edgelist.WriteFile(path, []core.Edge{{U: 1, V: 2}}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := edgelist.ReadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
