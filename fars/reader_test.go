package fars

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable_MissingFile(t *testing.T) {
	a := newTestAnalyzer(t.TempDir(), nil, nil)
	path := filepath.Join(a.dataDir, Filename(1993))

	_, err := a.ReadTable(path)

	var notFound *FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, path, notFound.Path)
	assert.EqualError(t, err, fmt.Sprintf("file '%s' does not exist", path))
}

func TestReadTable_CompressedCSV(t *testing.T) {
	dir := t.TempDir()
	writeYear(t, dir, 2013, 48, []int{1, 2, 12}, -98.44, 31.02)

	a := newTestAnalyzer(dir, nil, nil)
	df, err := a.ReadTable(filepath.Join(dir, Filename(2013)))

	require.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())
	assert.Contains(t, df.Names(), "MONTH")
	assert.Contains(t, df.Names(), "STATE")
	assert.Contains(t, df.Names(), "LONGITUD")
	assert.Contains(t, df.Names(), "LATITUDE")

	months, err := df.Col("MONTH").Int()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 12}, months)
}

func TestReadTable_PlainCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accident_2013.csv")
	data := "STATE,MONTH,LONGITUD,LATITUDE\n48,3,-98.44,31.02\n48,7,-97.10,32.55\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	a := newTestAnalyzer(dir, nil, nil)
	df, err := a.ReadTable(path)

	require.NoError(t, err)
	assert.Equal(t, 2, df.Nrow())
}

func TestReadTable_NoCachingBetweenCalls(t *testing.T) {
	dir := t.TempDir()
	writeYear(t, dir, 2014, 6, []int{4}, -120.5, 37.2)
	a := newTestAnalyzer(dir, nil, nil)
	path := filepath.Join(dir, Filename(2014))

	df, err := a.ReadTable(path)
	require.NoError(t, err)
	require.Equal(t, 1, df.Nrow())

	writeYear(t, dir, 2014, 6, []int{4, 5, 6}, -120.5, 37.2)

	df, err = a.ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())
}
