package fars

import (
	"context"
	"time"
)

// Point is a plottable accident location in decimal degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Bounds is the geographic extent of a state map, computed per axis over
// non-missing coordinate values.
type Bounds struct {
	MinLon float64
	MaxLon float64
	MinLat float64
	MaxLat float64
}

// StateMap holds everything a rendering backend needs to draw one state's
// accident scatter map.
type StateMap struct {
	StateID     int
	Year        int
	Bounds      Bounds
	Points      []Point
	GeneratedAt time.Time
}

// Renderer draws a state map to some output surface. Implementations own
// pixel and vector concerns; this package only supplies coordinates and
// extents.
type Renderer interface {
	RenderStateMap(ctx context.Context, m StateMap) error
}

// BoundaryProvider supplies a state outline for the base map layer.
// Implementations are optional rendering collaborators.
type BoundaryProvider interface {
	// StateBoundary returns the outline polyline for a FIPS state code.
	StateBoundary(stateID int) ([]Point, error)
}
