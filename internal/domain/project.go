package domain

import "time"

// UserRole tags a project with the audience it belongs to
type UserRole string

const (
	UserRoleTrainer UserRole = "trainer"
	UserRoleStudent UserRole = "student"
)

// IsValid reports whether the role is one of the known values
func (r UserRole) IsValid() bool {
	return r == UserRoleTrainer || r == UserRoleStudent
}

// Project represents a project whose code prefixes human-facing issue keys
type Project struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Code        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_projects_code" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	UserRole    UserRole  `gorm:"type:varchar(20)" json:"user_role"`
	CreatedAt   time.Time `gorm:"type:timestamp;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp;not null" json:"updated_at"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// DefaultProjects returns the rows seeded into an empty project store.
func DefaultProjects(now time.Time) []*Project {
	return []*Project{
		{
			ID:          "1",
			Name:        "Student Learning Platform",
			Code:        "SLP",
			Description: "Issues related to student learning activities and coursework",
			UserRole:    UserRoleStudent,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Training Management System",
			Code:        "TMS",
			Description: "Issues related to training content and instructor tools",
			UserRole:    UserRoleTrainer,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Tekstac Core Platform",
			Code:        "TCP",
			Description: "Core platform issues affecting all users",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
