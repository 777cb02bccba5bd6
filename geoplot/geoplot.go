// Package geoplot renders state accident maps with gonum/plot. It
// implements the fars.Renderer interface, drawing one marker per accident
// location over an optional state-outline base layer, and writes the result
// as a PNG file.
package geoplot

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/fars-analytics/fars"
)

// Renderer draws state maps to PNG files under a fixed output directory.
type Renderer struct {
	outDir     string
	boundaries fars.BoundaryProvider
	logger     *slog.Logger
	width      vg.Length
	height     vg.Length
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBoundaries sets the base-map outline provider. Without one, maps are
// rendered as bare scatter plots.
func WithBoundaries(bp fars.BoundaryProvider) Option {
	return func(r *Renderer) { r.boundaries = bp }
}

// WithSize sets the output size in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(r *Renderer) {
		r.width = vg.Length(widthIn) * vg.Inch
		r.height = vg.Length(heightIn) * vg.Inch
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// New creates a Renderer writing PNG files into outDir.
func New(outDir string, opts ...Option) *Renderer {
	r := &Renderer{
		outDir: outDir,
		logger: slog.Default(),
		width:  8 * vg.Inch,
		height: 6 * vg.Inch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderStateMap draws the accident scatter map and saves it as
// accident_map_<state>_<year>.png.
func (r *Renderer) RenderStateMap(ctx context.Context, m fars.StateMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("FARS accidents, state %d, %d", m.StateID, m.Year)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.X.Min, p.X.Max = pad(m.Bounds.MinLon, m.Bounds.MaxLon)
	p.Y.Min, p.Y.Max = pad(m.Bounds.MinLat, m.Bounds.MaxLat)

	if r.boundaries != nil {
		outline, err := r.boundaries.StateBoundary(m.StateID)
		if err != nil {
			return fmt.Errorf("state boundary %d: %w", m.StateID, err)
		}
		line, err := plotter.NewLine(toXYs(outline))
		if err != nil {
			return fmt.Errorf("boundary line: %w", err)
		}
		line.Color = color.Gray{Y: 128}
		p.Add(line)
	}

	scatter, err := plotter.NewScatter(toXYs(m.Points))
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = color.Black
	p.Add(scatter)

	out := filepath.Join(r.outDir, fmt.Sprintf("accident_map_%d_%d.png", m.StateID, m.Year))
	if err := p.Save(r.width, r.height, out); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	r.logger.Debug("state map written", "path", out, "points", len(m.Points))
	return nil
}

func toXYs(points []fars.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.Lon
		xys[i].Y = pt.Lat
	}
	return xys
}

// pad widens a degenerate extent so single-point maps still get a visible
// plotting area.
func pad(minV, maxV float64) (float64, float64) {
	if minV < maxV {
		return minV, maxV
	}
	const eps = 0.05
	return minV - eps, maxV + eps
}
