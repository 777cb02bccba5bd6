package fars

import "fmt"

// Filename returns the canonical FARS accident file name for a year,
// e.g. Filename(2015) == "accident_2015.csv.bz2".
func Filename(year int) string {
	return fmt.Sprintf("accident_%d.csv.bz2", year)
}

// FilenameForLabel coerces a year label and returns its canonical file name.
func FilenameForLabel(label string) (string, error) {
	year, err := ParseYear(label)
	if err != nil {
		return "", err
	}
	return Filename(year), nil
}
