// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/ManuGH/lifeordeath/internal/cell"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pressesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifeordeath_presses_total",
		Help: "Total number of button presses handled",
	})

	cellsAppendedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifeordeath_cells_appended_total",
		Help: "Total number of entries appended to the log by kind",
	}, []string{"kind"}) // kind=dead|live|marker

	markerRemovalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifeordeath_marker_removals_total",
		Help: "Dead streak threshold hits by outcome",
	}, []string{"outcome"}) // outcome=removed|noop

	logEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lifeordeath_log_entries",
		Help: "Number of entries currently in the log",
	})

	liveStreak = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lifeordeath_live_streak",
		Help: "Current live streak after the last press",
	})

	deadStreak = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lifeordeath_dead_streak",
		Help: "Current dead streak after the last press",
	})
)

// RecordPress records the effects of one trigger and the resulting log size.
func RecordPress(out cell.Outcome, logLen int) {
	pressesTotal.Inc()
	for _, e := range out.Appended {
		cellsAppendedTotal.WithLabelValues(kindLabel(e.Kind)).Inc()
	}
	switch {
	case out.Removed != nil:
		markerRemovalsTotal.WithLabelValues("removed").Inc()
	case out.Drawn == cell.KindDead && out.DeadStreak == 0:
		// A dead draw only leaves the streak at zero when the threshold fired.
		markerRemovalsTotal.WithLabelValues("noop").Inc()
	}
	logEntries.Set(float64(logLen))
	liveStreak.Set(float64(out.LiveStreak))
	deadStreak.Set(float64(out.DeadStreak))
}

func kindLabel(k cell.Kind) string {
	switch k {
	case cell.KindDead, cell.KindLive, cell.KindMarker:
		return k.String()
	default:
		return "unknown"
	}
}
