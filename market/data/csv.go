// Package data loads tick files into a market.Series.
//
// The expected layout is CSV with at least three columns per row:
// time, price, volume. Timestamps may be RFC3339, RFC3339Nano, or integer
// Unix seconds/milliseconds. Files ending in .gz or .lzma are decompressed
// transparently. Rows that fail to parse, or carry a non-finite or
// non-positive price, are skipped and counted rather than aborting the load.
package data

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/ticklab/market"
	"github.com/ulikunitz/xz/lzma"
)

// LoadStats reports what happened during a load.
type LoadStats struct {
	Rows    int // data rows seen (header excluded)
	Skipped int // rows dropped as malformed
}

// Load reads the tick file at path into a finalized Series.
func Load(path string) (*market.Series, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer f.Close()

	var in io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, LoadStats{}, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		in = zr
	case strings.HasSuffix(path, ".lzma"):
		lr, err := lzma.NewReader(f)
		if err != nil {
			return nil, LoadStats{}, fmt.Errorf("lzma %s: %w", path, err)
		}
		in = lr
	}

	return Read(in)
}

// Read parses CSV tick rows from r. The first row may be a header; it is
// detected by a non-numeric time field and skipped.
func Read(r io.Reader) (*market.Series, LoadStats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	series := market.NewSeries(1024)
	stats := LoadStats{}
	first := true

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return series, stats, nil
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read ticks: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		tick, perr := parseRow(row)
		if first {
			first = false
			if perr != nil && looksLikeHeader(row) {
				continue
			}
		}
		stats.Rows++
		if perr != nil {
			stats.Skipped++
			continue
		}
		series.Append(tick)
	}
}

func looksLikeHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	if err == nil {
		return false
	}
	_, err = time.Parse(time.RFC3339, strings.TrimSpace(row[0]))
	return err != nil
}

func parseRow(row []string) (market.Tick, error) {
	if len(row) < 3 {
		return market.Tick{}, fmt.Errorf("need at least 3 cols time,price,volume: %v", row)
	}

	ts, err := parseTime(strings.TrimSpace(row[0]))
	if err != nil {
		return market.Tick{}, err
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return market.Tick{}, fmt.Errorf("bad price %q: %w", row[1], err)
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return market.Tick{}, fmt.Errorf("price out of range: %v", price)
	}

	vol, err := parseVolume(strings.TrimSpace(row[2]))
	if err != nil {
		return market.Tick{}, err
	}

	return market.Tick{Time: ts, Price: price, Volume: vol}, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q", s)
	}
	// Heuristic: values past ~5138 AD in seconds are really milliseconds.
	if n > 99_999_999_999 {
		return time.UnixMilli(n).UTC(), nil
	}
	return time.Unix(n, 0).UTC(), nil
}

func parseVolume(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad volume %q: %w", s, err)
	}
	return int64(f), nil
}
