package fars

import (
	"strconv"
	"strings"
)

// ParseYear coerces a year label to an integer. Labels arrive as strings
// from callers that read them out of reports or user input; surrounding
// whitespace is tolerated.
func ParseYear(label string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return 0, &TypeMismatchError{Field: "year", Value: label}
	}
	return year, nil
}

// ParseStateID coerces a state label to an integer FIPS code.
func ParseStateID(label string) (int, error) {
	state, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return 0, &TypeMismatchError{Field: "state", Value: label}
	}
	return state, nil
}
