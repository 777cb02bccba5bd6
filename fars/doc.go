// Package fars loads and analyzes yearly accident files from the NHTSA
// Fatality Analysis Reporting System (FARS).
//
// # Data Source
//
// FARS publishes one compressed CSV per calendar year, named
//
//	accident_<year>.csv.bz2  →  e.g. accident_2015.csv.bz2
//
// with a header row followed by one record per reported fatal accident.
// The columns consumed by this package:
//
//	MONTH     integer 1–12
//	STATE     integer FIPS state code (1 = Alabama … 56 = Wyoming)
//	LONGITUD  decimal degrees, west negative
//	LATITUDE  decimal degrees
//
// All other columns pass through unread.
//
// # Sentinel Coordinates
//
// FARS encodes unknown locations with out-of-range coordinate values
// (e.g. 777.7777 "not reported", 999.9999 "unknown"). Any LONGITUD above
// 900 or LATITUDE above 90 is treated as missing: it contributes neither
// to plot extents nor to rendered markers.
//
// # Failure Model
//
// Single-file and single-value operations fail fast with typed errors
// ([FileNotFoundError], [TypeMismatchError], [InvalidStateError]).
// Multi-year aggregation isolates failures per year: a year that cannot
// be loaded is logged as a warning and reported as an errored slot in the
// result sequence, and the remaining years are still processed. Zero
// matching rows for a state/year pair is not an error.
package fars
