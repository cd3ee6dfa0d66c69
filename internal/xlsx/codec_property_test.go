package xlsx

import (
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"issue-tracker-api/internal/domain"
)

// TestProperty_IssueCodecRoundTrip verifies that any issue written as a
// workbook row decodes back to the same record. Field values avoid
// commas, which separate list elements in their cells.
func TestProperty_IssueCodecRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("encode then decode is identity", prop.ForAll(
		func(id, title string, labels []string, typeIdx, priorityIdx, statusIdx int, unixSec int64, hasRaised bool) bool {
			types := []domain.IssueType{domain.IssueTypeStory, domain.IssueTypeBug, domain.IssueTypeTask, domain.IssueTypeEpic}
			priorities := []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical}
			statuses := []domain.Status{domain.StatusTodo, domain.StatusProgress, domain.StatusDone}

			createdAt := time.Unix(unixSec, unixSec%1_000_000_000).UTC()
			issue := &domain.Issue{
				ID:          id,
				Title:       title,
				Description: title,
				Type:        types[typeIdx],
				Priority:    priorities[priorityIdx],
				Status:      statuses[statusIdx],
				Labels:      labels,
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
				StatusDate:  createdAt,
			}
			if hasRaised {
				raised := createdAt.Add(-time.Hour)
				issue.RaisedDate = &raised
			}

			decoded, err := decodeIssue(encodeIssue(issue))
			if err != nil {
				t.Logf("decode failed for issue %q: %v", id, err)
				return false
			}
			return reflect.DeepEqual(encodeIssue(decoded), encodeIssue(issue))
		},
		gen.Identifier(),
		gen.RegexMatch(`[a-zA-Z0-9 _.-]{1,20}`),
		gen.SliceOfN(3, gen.RegexMatch(`[a-zA-Z0-9_-]{1,10}`)),
		gen.IntRange(0, 3),
		gen.IntRange(0, 3),
		gen.IntRange(0, 2),
		gen.Int64Range(0, 4_000_000_000),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
