package domain

import "time"

// Comment is a note attached to an issue. Comments are create-only.
type Comment struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	IssueID         string    `gorm:"type:varchar(36);not null;index:idx_comments_issue_id" json:"issue_id"`
	CommentText     string    `gorm:"type:text;not null" json:"comment_text"`
	ActionTaken     string    `gorm:"type:text" json:"action_taken"`
	SolutionSummary string    `gorm:"type:text" json:"solution_summary"`
	CreatedBy       string    `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt       time.Time `gorm:"type:timestamp;not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:timestamp;not null" json:"updated_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
