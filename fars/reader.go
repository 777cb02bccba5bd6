package fars

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ReadTable loads one accident file into a dataframe. Files ending in .bz2
// are decompressed transparently. Column types are detected from the header
// row and data. Every call re-reads the file; nothing is cached.
//
// A missing file is reported as *FileNotFoundError.
func (a *Analyzer) ReadTable(path string) (dataframe.DataFrame, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		a.metrics.LoadErrors.Inc()
		if errors.Is(err, fs.ErrNotExist) {
			return dataframe.DataFrame{}, &FileNotFoundError{Path: path}
		}
		return dataframe.DataFrame{}, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		a.metrics.LoadErrors.Inc()
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		a.metrics.LoadErrors.Inc()
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}

	a.metrics.FilesLoaded.Inc()
	a.metrics.RecordsRead.Add(float64(df.Nrow()))
	a.metrics.LoadDuration.Observe(time.Since(start).Seconds())

	return df, nil
}
