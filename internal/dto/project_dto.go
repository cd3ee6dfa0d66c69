package dto

import (
	"time"

	"issue-tracker-api/internal/domain"
)

// ProjectResponse is the wire form of a project
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	UserRole    string    `json:"user_role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProjectResponse converts a domain project to its wire form
func ToProjectResponse(project *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Code:        project.Code,
		Description: project.Description,
		UserRole:    string(project.UserRole),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectResponses converts a slice of domain projects
func ToProjectResponses(projects []*domain.Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for _, project := range projects {
		out = append(out, ToProjectResponse(project))
	}
	return out
}
