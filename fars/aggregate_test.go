package fars

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadYears_MixedPresentAndAbsent(t *testing.T) {
	dir := t.TempDir()
	writeYear(t, dir, 2013, 48, []int{1, 1, 2}, -98.44, 31.02)
	writeYear(t, dir, 2015, 48, []int{3}, -98.44, 31.02)

	var logBuf bytes.Buffer
	a := newTestAnalyzer(dir, nil, &logBuf)

	tables := a.ReadYears(context.Background(), []string{"2013", "1994", "2015"})

	require.Len(t, tables, 3)

	require.True(t, tables[0].OK())
	assert.Equal(t, "2013", tables[0].Year)
	assert.Equal(t, []string{"MONTH", "year"}, tables[0].Data.Names())
	years, err := tables[0].Data.Col("year").Int()
	require.NoError(t, err)
	assert.Equal(t, []int{2013, 2013, 2013}, years)

	require.False(t, tables[1].OK())
	var notFound *FileNotFoundError
	assert.ErrorAs(t, tables[1].Err, &notFound)

	require.True(t, tables[2].OK())
	assert.Equal(t, 1, tables[2].Data.Nrow())

	logged := logBuf.String()
	assert.Contains(t, logged, "invalid year: 1994")
	assert.Equal(t, 1, strings.Count(logged, "invalid year:"))
}

func TestReadYears_SingleAbsentYear(t *testing.T) {
	var logBuf bytes.Buffer
	a := newTestAnalyzer(t.TempDir(), nil, &logBuf)

	tables := a.ReadYears(context.Background(), []string{"1993"})

	require.Len(t, tables, 1)
	assert.False(t, tables[0].OK())
	assert.Contains(t, logBuf.String(), "invalid year: 1993")
}

func TestReadYears_NonIntegerLabel(t *testing.T) {
	var logBuf bytes.Buffer
	a := newTestAnalyzer(t.TempDir(), nil, &logBuf)

	tables := a.ReadYears(context.Background(), []string{"abc"})

	require.Len(t, tables, 1)
	var mismatch *TypeMismatchError
	assert.ErrorAs(t, tables[0].Err, &mismatch)
	assert.Contains(t, logBuf.String(), "invalid year: abc")
}

func TestReadYears_OneWarningPerAbsentYear(t *testing.T) {
	dir := t.TempDir()
	writeYear(t, dir, 2014, 6, []int{5}, -120.5, 37.2)

	var logBuf bytes.Buffer
	a := newTestAnalyzer(dir, nil, &logBuf)

	tables := a.ReadYears(context.Background(), []string{"1991", "2014", "1992"})

	require.Len(t, tables, 3)
	assert.False(t, tables[0].OK())
	assert.True(t, tables[1].OK())
	assert.False(t, tables[2].OK())
	assert.Equal(t, 2, strings.Count(logBuf.String(), "invalid year:"))
}

func TestReadYears_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAnalyzer(t.TempDir(), nil, nil)
	tables := a.ReadYears(ctx, []string{"2013", "2014"})

	require.Len(t, tables, 2)
	for _, yt := range tables {
		assert.ErrorIs(t, yt.Err, context.Canceled)
	}
}
