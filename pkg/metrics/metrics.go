// Package metrics keeps operational gauges for the admin dashboard in an
// embedded time-series store under the application workdir.
package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/nakabonne/tstorage"
)

const (
	SystemCpuUse  = "system_cpuuse"
	SystemMemUse  = "system_memuse"
	CartItems     = "cart_items"
	CartTotal     = "cart_total_cents"
	ContactsTotal = "contacts_total"
	ContactsNew   = "contacts_new"
)

var (
	mu      sync.Mutex
	storage tstorage.Storage
)

// InitMetrics opens the metrics store under workdir/data/metrics.
func InitMetrics(workdir string) error {
	mu.Lock()
	defer mu.Unlock()
	st, err := tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "data", "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithRetention(7*24*time.Hour),
	)
	if err != nil {
		return err
	}
	storage = st
	return nil
}

// SetGauge records the current value of a gauge metric.
func SetGauge(name string, value int64) {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return
	}
	_ = storage.InsertRows([]tstorage.Row{
		{
			Metric:    name,
			DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: float64(value)},
		},
	})
}

// Latest returns the most recent value of a gauge within the last day,
// or 0 when no sample exists.
func Latest(name string) float64 {
	points := selectRange(name, time.Now().Add(-24*time.Hour))
	if len(points) == 0 {
		return 0
	}
	return points[len(points)-1].Value
}

// Mean returns the average value of a gauge since the given time.
func Mean(name string, since time.Time) float64 {
	points := selectRange(name, since)
	if len(points) == 0 {
		return 0
	}
	values := make([]float64, 0, len(points))
	for _, p := range points {
		values = append(values, p.Value)
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func selectRange(name string, since time.Time) []*tstorage.DataPoint {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil
	}
	points, err := storage.Select(name, nil, since.Unix(), time.Now().Unix()+1)
	if err != nil {
		return nil
	}
	return points
}

// Close flushes and closes the metrics store.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil
	}
	err := storage.Close()
	storage = nil
	return err
}
