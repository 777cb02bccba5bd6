package fixture

import (
	"compress/bzip2"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteYearFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	rows := []Accident{
		{State: 48, County: 21, Month: 1, Day: 14, Hour: 16, Minute: 30, Latitude: 31.02, Longitude: -98.44, Persons: 2, Fatals: 1},
		{State: 6, County: 3, Month: 12, Day: 2, Hour: 8, Minute: 5, Latitude: 37.2, Longitude: -120.5, Persons: 1, Fatals: 1},
	}

	path, err := WriteYearFile(dir, 2013, rows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "accident_2013.csv.bz2"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(bzip2.NewReader(f)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, header, records[0])
	assert.Equal(t, "48", records[1][0])   // STATE
	assert.Equal(t, "1", records[1][3])    // MONTH
	assert.Equal(t, "2013", records[1][5]) // YEAR
	assert.Equal(t, "31.0200", records[1][8])
	assert.Equal(t, "-98.4400", records[1][9])
	assert.Equal(t, "12", records[2][3])
}

func TestWriteYearFile_EmptyRows(t *testing.T) {
	path, err := WriteYearFile(t.TempDir(), 2014, nil)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(bzip2.NewReader(f)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}
