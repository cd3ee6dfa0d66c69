package domain

import (
	"time"

	"gorm.io/datatypes"
)

// IssueType classifies an issue on the board
type IssueType string

const (
	IssueTypeStory IssueType = "story"
	IssueTypeBug   IssueType = "bug"
	IssueTypeTask  IssueType = "task"
	IssueTypeEpic  IssueType = "epic"
)

// IsValid reports whether the issue type is one of the known values
func (t IssueType) IsValid() bool {
	switch t {
	case IssueTypeStory, IssueTypeBug, IssueTypeTask, IssueTypeEpic:
		return true
	}
	return false
}

// Priority represents the urgency of an issue
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid reports whether the priority is one of the known values
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Status is the kanban column key for an issue
type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

// IsValid reports whether the status is one of the three column values
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusDone:
		return true
	}
	return false
}

// Issue represents a tracked issue. Project and EpicLink are advisory
// references by code/name and are not enforced against other records.
type Issue struct {
	ID               string                       `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title            string                       `gorm:"type:varchar(255);not null" json:"title"`
	Description      string                       `gorm:"type:text" json:"description"`
	Type             IssueType                    `gorm:"type:varchar(20);not null" json:"type"`
	Priority         Priority                     `gorm:"type:varchar(20);not null" json:"priority"`
	Status           Status                       `gorm:"type:varchar(20);not null;index:idx_issues_status" json:"status"`
	Assignee         string                       `gorm:"type:varchar(255)" json:"assignee"`
	ReportedBy       string                       `gorm:"type:varchar(255)" json:"reported_by"`
	Project          string                       `gorm:"type:varchar(50)" json:"project"`
	Environment      string                       `gorm:"type:varchar(255)" json:"environment"`
	Labels           datatypes.JSONSlice[string]  `json:"labels"`
	Sprint           string                       `gorm:"type:varchar(255)" json:"sprint"`
	EpicLink         string                       `gorm:"type:varchar(255)" json:"epic_link"`
	StepsToReproduce string                       `gorm:"type:text" json:"steps_to_reproduce"`
	ActualResult     string                       `gorm:"type:text" json:"actual_result"`
	ExpectedResult   string                       `gorm:"type:text" json:"expected_result"`
	Attachments      datatypes.JSONSlice[string]  `json:"attachments"`
	CreatedAt        time.Time                    `gorm:"type:timestamp;not null;index:idx_issues_created_at" json:"created_at"`
	UpdatedAt        time.Time                    `gorm:"type:timestamp;not null" json:"updated_at"`
	StatusDate       time.Time                    `gorm:"type:timestamp;not null" json:"status_date"`
	RaisedDate       *time.Time                   `gorm:"type:timestamp" json:"raised_date,omitempty"`
	ClosedDate       *time.Time                   `gorm:"type:timestamp" json:"closed_date,omitempty"`
}

// TableName specifies the table name for Issue
func (Issue) TableName() string {
	return "issues"
}
