package fars

import (
	"io"
	"log/slog"
	"testing"

	"github.com/couchcryptid/fars-analytics/internal/fixture"
	"github.com/couchcryptid/fars-analytics/internal/observability"
	"github.com/stretchr/testify/require"
)

// newTestAnalyzer builds an Analyzer over dir with unregistered metrics.
// Log output goes to w (pass nil to discard).
func newTestAnalyzer(dir string, renderer Renderer, w io.Writer) *Analyzer {
	if w == nil {
		w = io.Discard
	}
	return &Analyzer{
		dataDir:  dir,
		renderer: renderer,
		logger:   slog.New(slog.NewTextHandler(w, nil)),
		metrics:  observability.NewMetricsForTesting(),
	}
}

// writeYear writes a fixture accident file for year under dir, one row per
// entry in months, all in the given state at the given coordinates.
func writeYear(t *testing.T, dir string, year, state int, months []int, lon, lat float64) {
	t.Helper()
	rows := make([]fixture.Accident, 0, len(months))
	for _, month := range months {
		rows = append(rows, fixture.Accident{
			State:     state,
			County:    21,
			Month:     month,
			Day:       14,
			Hour:      16,
			Minute:    30,
			Longitude: lon,
			Latitude:  lat,
			Persons:   2,
			Fatals:    1,
		})
	}
	_, err := fixture.WriteYearFile(dir, year, rows)
	require.NoError(t, err)
}
