package metrics

import (
	"database/sql"
	"time"
)

// RecordStorageOp records duration and outcome for one storage operation
// against a collection, regardless of which backend served it.
func (m *Metrics) RecordStorageOp(operation, collection string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOp", func() {
		m.StorageOpDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
		if err != nil {
			m.StorageOpErrors.WithLabelValues(operation, collection).Inc()
		}
	})
}

// UpdateDBStats updates database connection pool gauges
func (m *Metrics) UpdateDBStats(stats interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		dbStats, ok := stats.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(dbStats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(dbStats.InUse))
		m.DBConnectionsIdle.Set(float64(dbStats.Idle))
		m.DBConnectionsMax.Set(float64(dbStats.MaxOpenConnections))
	})
}
