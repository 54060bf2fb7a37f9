package market

import "time"

// Tick is one timestamped price/volume observation. Ticks are created once at
// ingestion and shared read-only across every strategy run.
type Tick struct {
	Time   time.Time
	Price  float64
	Volume int64
}
