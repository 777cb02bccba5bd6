package fars

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

type summaryKey struct {
	year  int
	month int
}

// Summary is a month × year occurrence-count matrix. Months and Years are
// sorted ascending and cover only observed values; a (year, month) pair
// with no observed records is absent, not zero.
type Summary struct {
	Months      []int
	Years       []int
	GeneratedAt time.Time

	cells map[summaryKey]int
}

// Count returns the number of accidents observed for a (year, month) pair.
// The second return value is false when the pair was never observed.
func (s *Summary) Count(year, month int) (int, bool) {
	n, ok := s.cells[summaryKey{year: year, month: month}]
	return n, ok
}

// Total returns the record count summed over every cell.
func (s *Summary) Total() int {
	total := 0
	for _, n := range s.cells {
		total += n
	}
	return total
}

// Empty reports whether no year contributed any records.
func (s *Summary) Empty() bool { return len(s.cells) == 0 }

// DataFrame renders the summary as a wide table: one MONTH column plus one
// column per year (named by the year), with NaN for absent cells.
func (s *Summary) DataFrame() dataframe.DataFrame {
	cols := make([]series.Series, 0, len(s.Years)+1)
	cols = append(cols, series.New(s.Months, series.Int, "MONTH"))
	for _, year := range s.Years {
		vals := make([]float64, len(s.Months))
		for i, month := range s.Months {
			if n, ok := s.Count(year, month); ok {
				vals[i] = float64(n)
			} else {
				vals[i] = math.NaN()
			}
		}
		cols = append(cols, series.New(vals, series.Float, strconv.Itoa(year)))
	}
	return dataframe.New(cols...)
}

// SummarizeYears loads the requested years, concatenates their {MONTH, year}
// projections, and pivots the result into a Summary. Years that fail to load
// contribute no rows (and have already been warned about by ReadYears); if
// every year fails the Summary is empty, which is not an error.
func (a *Analyzer) SummarizeYears(ctx context.Context, labels []string) (*Summary, error) {
	tables := a.ReadYears(ctx, labels)

	var combined dataframe.DataFrame
	loaded := false
	for _, yt := range tables {
		if !yt.OK() {
			continue
		}
		if !loaded {
			combined = yt.Data
			loaded = true
			continue
		}
		combined = combined.RBind(yt.Data)
		if combined.Err != nil {
			return nil, fmt.Errorf("concatenate year tables: %w", combined.Err)
		}
	}

	s := &Summary{cells: make(map[summaryKey]int), GeneratedAt: clock.Now()}
	if !loaded || combined.Nrow() == 0 {
		return s, nil
	}

	months, err := combined.Col("MONTH").Int()
	if err != nil {
		return nil, fmt.Errorf("MONTH column: %w", err)
	}
	years, err := combined.Col("year").Int()
	if err != nil {
		return nil, fmt.Errorf("year column: %w", err)
	}
	for i := range months {
		s.cells[summaryKey{year: years[i], month: months[i]}]++
	}

	monthSet := make(map[int]bool)
	yearSet := make(map[int]bool)
	for key := range s.cells {
		monthSet[key.month] = true
		yearSet[key.year] = true
	}
	for month := range monthSet {
		s.Months = append(s.Months, month)
	}
	for year := range yearSet {
		s.Years = append(s.Years, year)
	}
	sort.Ints(s.Months)
	sort.Ints(s.Years)

	return s, nil
}
