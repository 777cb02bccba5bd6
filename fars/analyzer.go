package fars

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/fars-analytics/internal/config"
	"github.com/couchcryptid/fars-analytics/internal/observability"
	"github.com/go-gota/gota/dataframe"
)

// Analyzer runs the FARS analysis operations against a directory of yearly
// accident files. Each call re-reads its input from storage; no state is
// retained between calls.
type Analyzer struct {
	dataDir  string
	renderer Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates an Analyzer reading accident files from dataDir. A nil
// renderer disables map rendering (MapState still validates and filters).
// A nil logger falls back to slog.Default.
func New(dataDir string, renderer Renderer, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		dataDir:  dataDir,
		renderer: renderer,
		logger:   logger,
		metrics:  observability.Default(),
	}
}

// NewFromEnv builds an Analyzer from environment configuration
// (FARS_DATA_DIR, LOG_LEVEL, LOG_FORMAT). The renderer is left nil;
// callers wire one explicitly, e.g. geoplot.New.
func NewFromEnv() (*Analyzer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return New(cfg.DataDir, nil, observability.NewLogger(cfg)), nil
}

// requireColumns verifies that a loaded table carries the named columns.
func requireColumns(df dataframe.DataFrame, cols ...string) error {
	have := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, col := range cols {
		if !have[col] {
			return fmt.Errorf("missing required column %q", col)
		}
	}
	return nil
}
