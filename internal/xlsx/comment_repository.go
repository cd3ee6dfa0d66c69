package xlsx

import (
	"context"
	"sort"
	"time"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/repository"
)

var commentHeaders = []string{
	"id", "issue_id", "comment_text", "action_taken", "solution_summary",
	"created_by", "created_at", "updated_at",
}

// commentRepository is the workbook implementation of repository.CommentRepository
type commentRepository struct {
	store *Store
}

// NewCommentRepository creates a workbook-backed comment repository
func NewCommentRepository(store *Store) repository.CommentRepository {
	return &commentRepository{store: store}
}

// FindByIssueID returns the comments for one issue, oldest first
func (r *commentRepository) FindByIssueID(ctx context.Context, issueID string) (comments []*domain.Comment, err error) {
	start := time.Now()
	defer func() { r.store.observe("list", "comments", start, err) }()

	r.store.commentsMu.Lock()
	defer r.store.commentsMu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}
	comments = make([]*domain.Comment, 0)
	for _, comment := range all {
		if comment.IssueID == issueID {
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

// Create appends a new comment and rewrites the collection
func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) (err error) {
	start := time.Now()
	defer func() { r.store.observe("insert", "comments", start, err) }()

	r.store.commentsMu.Lock()
	defer r.store.commentsMu.Unlock()

	comments, err := r.readAll()
	if err != nil {
		return err
	}
	comments = append(comments, comment)
	return r.writeAll(comments)
}

// DeleteByIssueID removes all comments belonging to an issue
func (r *commentRepository) DeleteByIssueID(ctx context.Context, issueID string) (err error) {
	start := time.Now()
	defer func() { r.store.observe("delete", "comments", start, err) }()

	r.store.commentsMu.Lock()
	defer r.store.commentsMu.Unlock()

	comments, err := r.readAll()
	if err != nil {
		return err
	}
	remaining := comments[:0]
	for _, comment := range comments {
		if comment.IssueID != issueID {
			remaining = append(remaining, comment)
		}
	}
	if len(remaining) == len(comments) {
		return nil
	}
	return r.writeAll(remaining)
}

func (r *commentRepository) readAll() ([]*domain.Comment, error) {
	records, err := r.store.readSheet(commentsFile)
	if err != nil {
		return nil, err
	}
	comments := make([]*domain.Comment, 0, len(records))
	for _, record := range records {
		comment, err := decodeComment(record)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func (r *commentRepository) writeAll(comments []*domain.Comment) error {
	records := make([]map[string]string, 0, len(comments))
	for _, comment := range comments {
		records = append(records, encodeComment(comment))
	}
	return r.store.writeSheet(commentsFile, commentHeaders, records)
}

func encodeComment(comment *domain.Comment) map[string]string {
	return map[string]string{
		"id":               comment.ID,
		"issue_id":         comment.IssueID,
		"comment_text":     comment.CommentText,
		"action_taken":     comment.ActionTaken,
		"solution_summary": comment.SolutionSummary,
		"created_by":       comment.CreatedBy,
		"created_at":       formatTime(comment.CreatedAt),
		"updated_at":       formatTime(comment.UpdatedAt),
	}
}

func decodeComment(record map[string]string) (*domain.Comment, error) {
	createdAt, err := parseTime(record["created_at"])
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(record["updated_at"])
	if err != nil {
		return nil, err
	}
	return &domain.Comment{
		ID:              record["id"],
		IssueID:         record["issue_id"],
		CommentText:     record["comment_text"],
		ActionTaken:     record["action_taken"],
		SolutionSummary: record["solution_summary"],
		CreatedBy:       record["created_by"],
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
