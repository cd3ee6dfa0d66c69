package metrics

// IncrementIssueCreated increments the issue creation counter
func (m *Metrics) IncrementIssueCreated() {
	m.safeExecute("IncrementIssueCreated", func() {
		m.IssueCreatedTotal.Inc()
	})
}

// IncrementIssueUpdated increments the issue update counter
func (m *Metrics) IncrementIssueUpdated() {
	m.safeExecute("IncrementIssueUpdated", func() {
		m.IssueUpdatedTotal.Inc()
	})
}

// IncrementIssueDeleted increments the issue deletion counter
func (m *Metrics) IncrementIssueDeleted() {
	m.safeExecute("IncrementIssueDeleted", func() {
		m.IssueDeletedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// SetIssuesByStatus sets the board column gauge for one status
func (m *Metrics) SetIssuesByStatus(status string, count int) {
	m.safeExecute("SetIssuesByStatus", func() {
		m.IssuesByStatus.WithLabelValues(status).Set(float64(count))
	})
}

// SetProjectsTotal sets the projects gauge
func (m *Metrics) SetProjectsTotal(count int) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}
