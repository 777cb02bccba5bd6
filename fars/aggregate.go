package fars

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// YearTable is one slot in a multi-year aggregation result. Either Data
// holds a {MONTH, year} projection of that year's accident file, or Err
// records why the year could not be loaded.
type YearTable struct {
	Year string // the literal requested label
	Data dataframe.DataFrame
	Err  error
}

// OK reports whether the year loaded successfully.
func (yt YearTable) OK() bool { return yt.Err == nil }

// ReadYears loads the accident file for each requested year label and
// projects it down to the MONTH and year columns. The year column carries
// the literal requested value on every row of that slot.
//
// Failures are isolated per year: a bad label or missing file produces an
// errored slot and one warning on the logger, and the remaining years are
// still processed. The result preserves the input order and length.
func (a *Analyzer) ReadYears(ctx context.Context, labels []string) []YearTable {
	out := make([]YearTable, 0, len(labels))
	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			out = append(out, YearTable{Year: label, Err: err})
			continue
		}
		yt := a.readYear(label)
		if yt.Err != nil {
			a.logger.Warn(fmt.Sprintf("invalid year: %s", label), "error", yt.Err)
			a.metrics.YearsSkipped.Inc()
		}
		out = append(out, yt)
	}
	return out
}

func (a *Analyzer) readYear(label string) YearTable {
	year, err := ParseYear(label)
	if err != nil {
		return YearTable{Year: label, Err: err}
	}

	df, err := a.ReadTable(filepath.Join(a.dataDir, Filename(year)))
	if err != nil {
		return YearTable{Year: label, Err: err}
	}
	if err := requireColumns(df, "MONTH"); err != nil {
		return YearTable{Year: label, Err: err}
	}

	yearVals := make([]int, df.Nrow())
	for i := range yearVals {
		yearVals[i] = year
	}
	proj := df.Select("MONTH").Mutate(series.New(yearVals, series.Int, "year"))
	if proj.Err != nil {
		return YearTable{Year: label, Err: fmt.Errorf("project year %d: %w", year, proj.Err)}
	}
	return YearTable{Year: label, Data: proj}
}
