package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"issue-tracker-api/internal/domain"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty string", "", nil},
		{"single element", "backend", []string{"backend"}},
		{"multiple elements", "backend,urgent,db", []string{"backend", "urgent", "db"}},
		{"whitespace trimmed", " backend , urgent ", []string{"backend", "urgent"}},
		{"empty elements dropped", "backend,,urgent,", []string{"backend", "urgent"}},
		{"only separators", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", JoinList(nil))
	assert.Equal(t, "backend", JoinList([]string{"backend"}))
	assert.Equal(t, "backend,urgent", JoinList([]string{"backend", "urgent"}))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	original := []string{"backend", "urgent", "needs-triage"}
	assert.Equal(t, original, SplitList(JoinList(original)))
}

func TestToIssueResponse(t *testing.T) {
	now := time.Now().UTC()
	raised := now.Add(-time.Hour)

	issue := &domain.Issue{
		ID:         "abc",
		Title:      "Login broken",
		Type:       domain.IssueTypeBug,
		Priority:   domain.PriorityHigh,
		Status:     domain.StatusTodo,
		Labels:     []string{"auth", "urgent"},
		CreatedAt:  now,
		UpdatedAt:  now,
		StatusDate: now,
		RaisedDate: &raised,
	}

	resp := ToIssueResponse(issue)

	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, "bug", resp.Type)
	assert.Equal(t, "high", resp.Priority)
	assert.Equal(t, "todo", resp.Status)
	assert.Equal(t, "auth,urgent", resp.Labels)
	assert.Equal(t, &raised, resp.RaisedDate)
	assert.Nil(t, resp.ClosedDate)
}
