// Package fixture writes synthetic FARS accident files. It backs both the
// genfars data generator and the package test suites.
package fixture

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dsnet/compress/bzip2"
)

// Accident is one synthetic accident record. Field names follow the FARS
// column vocabulary.
type Accident struct {
	State     int
	County    int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Latitude  float64
	Longitude float64
	Persons   int
	Fatals    int
}

// header matches the column subset emitted by WriteYearFile. Consumers only
// require MONTH, STATE, LONGITUD and LATITUDE; the rest ride along the way
// unused columns do in real FARS extracts.
var header = []string{
	"STATE", "ST_CASE", "COUNTY", "MONTH", "DAY", "YEAR",
	"HOUR", "MINUTE", "LATITUDE", "LONGITUD", "PERSONS", "FATALS",
}

// WriteYearFile writes rows as accident_<year>.csv.bz2 under dir and
// returns the file path.
func WriteYearFile(dir string, year int, rows []Accident) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("accident_%d.csv.bz2", year))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	if err != nil {
		f.Close()
		return "", fmt.Errorf("bzip2 writer: %w", err)
	}

	if err := writeRows(bz, year, rows); err != nil {
		f.Close()
		return "", err
	}
	if err := bz.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("close bzip2 stream: %w", err)
	}
	return path, f.Close()
}

func writeRows(bz *bzip2.Writer, year int, rows []Accident) error {
	w := csv.NewWriter(bz)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range rows {
		row := []string{
			strconv.Itoa(rec.State),
			strconv.Itoa(rec.State*10000 + i + 1), // ST_CASE: unique within state and year
			strconv.Itoa(rec.County),
			strconv.Itoa(rec.Month),
			strconv.Itoa(rec.Day),
			strconv.Itoa(year),
			strconv.Itoa(rec.Hour),
			strconv.Itoa(rec.Minute),
			strconv.FormatFloat(rec.Latitude, 'f', 4, 64),
			strconv.FormatFloat(rec.Longitude, 'f', 4, 64),
			strconv.Itoa(rec.Persons),
			strconv.Itoa(rec.Fatals),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
