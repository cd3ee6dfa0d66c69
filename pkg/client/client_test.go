package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuePayload(id, title string) map[string]interface{} {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return map[string]interface{}{
		"id":          id,
		"title":       title,
		"type":        "task",
		"priority":    "medium",
		"status":      "todo",
		"labels":      "backend,urgent",
		"created_at":  now,
		"updated_at":  now,
		"status_date": now,
	}
}

func TestListIssues_ParsesAndCaches(t *testing.T) {
	var listCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/issues", r.URL.Path)
		atomic.AddInt32(&listCalls, 1)
		json.NewEncoder(w).Encode([]map[string]interface{}{issuePayload("1", "cached")})
	}))
	defer srv.Close()

	c := New(srv.URL)

	issues, err := c.ListIssues(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "cached", issues[0].Title)
	assert.Equal(t, []string{"backend", "urgent"}, issues[0].Labels)

	// Second read is served from cache
	_, err = c.ListIssues(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&listCalls))
}

func TestCreateIssue_InvalidatesListCache(t *testing.T) {
	var listCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/issues":
			atomic.AddInt32(&listCalls, 1)
			json.NewEncoder(w).Encode([]map[string]interface{}{})
		case r.Method == http.MethodPost && r.URL.Path == "/api/issues":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a,b", body["labels"])
			json.NewEncoder(w).Encode(issuePayload("new", body["title"].(string)))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.ListIssues(ctx)
	require.NoError(t, err)

	issue, err := c.CreateIssue(ctx, CreateIssueParams{Title: "fresh", Labels: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "new", issue.ID)

	// The write evicted the cached list, so this hits the server again
	_, err = c.ListIssues(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&listCalls))
}

func TestCreateIssue_RejectsCommaInLabels(t *testing.T) {
	c := New("http://unused.invalid")

	_, err := c.CreateIssue(context.Background(), CreateIssueParams{
		Title:  "bad labels",
		Labels: []string{"ok", "not,ok"},
	})
	assert.ErrorIs(t, err, ErrListElementComma)
}

func TestListIssues_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]map[string]string{
				"error": {"code": "STORAGE_ERROR", "message": "transient"},
			})
			return
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{issuePayload("1", "eventually")})
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetries(2, 10*time.Millisecond))

	issues, err := c.ListIssues(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "eventually", issues[0].Title)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestListIssues_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"error": {"code": "NOT_FOUND", "message": "nope"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetries(2, 10*time.Millisecond))

	_, err := c.ListIssues(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestTimeoutMapsToBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTimeout(20*time.Millisecond), WithRetries(0, 0))

	_, err := c.ListIssues(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestDeleteIssue_InvalidatesCommentCache(t *testing.T) {
	var commentCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/comments/abc":
			atomic.AddInt32(&commentCalls, 1)
			json.NewEncoder(w).Encode([]map[string]interface{}{})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/issues/abc":
			json.NewEncoder(w).Encode(map[string]string{"message": "Issue deleted successfully"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.ListComments(ctx, "abc")
	require.NoError(t, err)
	_, err = c.ListComments(ctx, "abc")
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&commentCalls))

	require.NoError(t, c.DeleteIssue(ctx, "abc"))

	_, err = c.ListComments(ctx, "abc")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&commentCalls))
}

func TestListProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects", r.URL.Path)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "1", "name": "Student Learning Platform", "code": "SLP", "user_role": "student", "created_at": now, "updated_at": now},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "SLP", projects[0].Code)
	assert.Equal(t, "student", projects[0].UserRole)
}

func TestCreateComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/comments", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		now := time.Now().UTC().Format(time.RFC3339Nano)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":           "c1",
			"issue_id":     body["issue_id"],
			"comment_text": body["comment_text"],
			"created_at":   now,
			"updated_at":   now,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	comment, err := c.CreateComment(context.Background(), CreateCommentParams{
		IssueID:     "abc",
		CommentText: "root cause found",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", comment.ID)
	assert.Equal(t, "abc", comment.IssueID)
}
