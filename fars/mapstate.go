package fars

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FARS sentinel thresholds: coordinate values beyond these are "unknown
// location" codes, not positions.
const (
	maxValidLongitude = 900.0
	maxValidLatitude  = 90.0
)

// MapState loads one year's accident file, filters it to a single state,
// and hands the sanitized accident locations to the configured renderer.
//
// A state code absent from the year's data is *InvalidStateError. Zero
// plottable rows is not an error; it is logged and no plot is produced.
func (a *Analyzer) MapState(ctx context.Context, stateLabel, yearLabel string) error {
	stateID, err := ParseStateID(stateLabel)
	if err != nil {
		return err
	}
	year, err := ParseYear(yearLabel)
	if err != nil {
		return err
	}

	df, err := a.ReadTable(filepath.Join(a.dataDir, Filename(year)))
	if err != nil {
		return err
	}
	if err := requireColumns(df, "STATE", "LONGITUD", "LATITUDE"); err != nil {
		return err
	}

	states, err := df.Col("STATE").Int()
	if err != nil {
		return fmt.Errorf("STATE column: %w", err)
	}
	if !slices.Contains(states, stateID) {
		return &InvalidStateError{State: stateID}
	}

	sub := df.Filter(dataframe.F{Colname: "STATE", Comparator: series.Eq, Comparando: stateID})
	if sub.Err != nil {
		return fmt.Errorf("filter STATE == %d: %w", stateID, sub.Err)
	}
	if sub.Nrow() == 0 {
		a.logger.Info("no accidents to plot", "state", stateID, "year", year)
		return nil
	}

	bounds, points := sanitizeCoordinates(sub.Col("LONGITUD").Float(), sub.Col("LATITUDE").Float())
	if len(points) == 0 {
		a.logger.Info("no accidents to plot", "state", stateID, "year", year,
			"reason", "all coordinates are unknown-location sentinels")
		return nil
	}

	m := StateMap{
		StateID:     stateID,
		Year:        year,
		Bounds:      bounds,
		Points:      points,
		GeneratedAt: clock.Now(),
	}

	if a.renderer == nil {
		a.logger.Info("rendering disabled, skipping plot", "state", stateID, "year", year, "points", len(points))
		return nil
	}
	if err := a.renderer.RenderStateMap(ctx, m); err != nil {
		return fmt.Errorf("render state map: %w", err)
	}
	a.metrics.PlotsRendered.Inc()
	a.logger.Info("state map rendered", "state", stateID, "year", year, "points", len(points))
	return nil
}

// sanitizeCoordinates drops sentinel values: extents are computed per axis
// over in-range values only, and a marker is produced only for rows where
// both coordinates are in range.
func sanitizeCoordinates(lons, lats []float64) (Bounds, []Point) {
	b := Bounds{
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
	}
	var points []Point
	for i := range lons {
		lonOK := validLongitude(lons[i])
		latOK := validLatitude(lats[i])
		if lonOK {
			b.MinLon = math.Min(b.MinLon, lons[i])
			b.MaxLon = math.Max(b.MaxLon, lons[i])
		}
		if latOK {
			b.MinLat = math.Min(b.MinLat, lats[i])
			b.MaxLat = math.Max(b.MaxLat, lats[i])
		}
		if lonOK && latOK {
			points = append(points, Point{Lon: lons[i], Lat: lats[i]})
		}
	}
	return b, points
}

func validLongitude(v float64) bool { return !math.IsNaN(v) && v <= maxValidLongitude }

func validLatitude(v float64) bool { return !math.IsNaN(v) && v <= maxValidLatitude }
