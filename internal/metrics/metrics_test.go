package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gatherMetric(t *testing.T, registry *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func TestRecordHTTPRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	m.RecordHTTPRequest("GET", "/api/issues", 200, 42*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/issues", 201, 10*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/issues", 500, 5*time.Millisecond)

	family := gatherMetric(t, registry, "issue_tracker_http_requests_total")
	require.NotNil(t, family)
	assert.Len(t, family.GetMetric(), 3)

	var total float64
	for _, metric := range family.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	assert.EqualValues(t, 3, total)
}

func TestCategorizeStatus(t *testing.T) {
	assert.Equal(t, "2xx", categorizeStatus(200))
	assert.Equal(t, "2xx", categorizeStatus(204))
	assert.Equal(t, "3xx", categorizeStatus(301))
	assert.Equal(t, "4xx", categorizeStatus(404))
	assert.Equal(t, "5xx", categorizeStatus(503))
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.False(t, ShouldSkipEndpoint("/api/issues"))
}

func TestRecordStorageOp(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	m.RecordStorageOp("list", "issues", 5*time.Millisecond, nil)
	m.RecordStorageOp("insert", "issues", 2*time.Millisecond, errors.New("disk full"))

	duration := gatherMetric(t, registry, "issue_tracker_storage_op_duration_seconds")
	require.NotNil(t, duration)
	assert.Len(t, duration.GetMetric(), 2)

	errCount := gatherMetric(t, registry, "issue_tracker_storage_op_errors_total")
	require.NotNil(t, errCount)
	require.Len(t, errCount.GetMetric(), 1)
	assert.EqualValues(t, 1, errCount.GetMetric()[0].GetCounter().GetValue())
}

func TestUpdateDBStats(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	m.UpdateDBStats(sql.DBStats{
		OpenConnections:    7,
		InUse:              3,
		Idle:               4,
		MaxOpenConnections: 25,
	})

	family := gatherMetric(t, registry, "issue_tracker_db_connections_open")
	require.NotNil(t, family)
	assert.EqualValues(t, 7, family.GetMetric()[0].GetGauge().GetValue())
}

func TestBusinessCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	m.IncrementIssueCreated()
	m.IncrementIssueCreated()
	m.IncrementIssueDeleted()
	m.SetIssuesByStatus("todo", 5)
	m.SetProjectsTotal(3)

	created := gatherMetric(t, registry, "issue_tracker_issue_created_total")
	require.NotNil(t, created)
	assert.EqualValues(t, 2, created.GetMetric()[0].GetCounter().GetValue())

	byStatus := gatherMetric(t, registry, "issue_tracker_issues_by_status")
	require.NotNil(t, byStatus)
	assert.EqualValues(t, 5, byStatus.GetMetric()[0].GetGauge().GetValue())

	projects := gatherMetric(t, registry, "issue_tracker_projects_total")
	require.NotNil(t, projects)
	assert.EqualValues(t, 3, projects.GetMetric()[0].GetGauge().GetValue())
}
