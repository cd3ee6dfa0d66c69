package xlsx

import (
	"context"
	"sort"
	"time"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/repository"
)

var projectHeaders = []string{
	"id", "name", "code", "description", "user_role", "created_at", "updated_at",
}

// projectRepository is the workbook implementation of repository.ProjectRepository
type projectRepository struct {
	store *Store
}

// NewProjectRepository creates a workbook-backed project repository
func NewProjectRepository(store *Store) repository.ProjectRepository {
	return &projectRepository{store: store}
}

// List returns all projects ordered by name ascending
func (r *projectRepository) List(ctx context.Context) (projects []*domain.Project, err error) {
	start := time.Now()
	defer func() { r.store.observe("list", "projects", start, err) }()

	r.store.projectsMu.Lock()
	defer r.store.projectsMu.Unlock()

	projects, err = r.readAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}

// Count returns the number of stored projects
func (r *projectRepository) Count(ctx context.Context) (count int64, err error) {
	start := time.Now()
	defer func() { r.store.observe("count", "projects", start, err) }()

	r.store.projectsMu.Lock()
	defer r.store.projectsMu.Unlock()

	projects, err := r.readAll()
	if err != nil {
		return 0, err
	}
	return int64(len(projects)), nil
}

// CreateBatch appends multiple projects and rewrites the collection
func (r *projectRepository) CreateBatch(ctx context.Context, batch []*domain.Project) (err error) {
	start := time.Now()
	defer func() { r.store.observe("insert", "projects", start, err) }()

	if len(batch) == 0 {
		return nil
	}

	r.store.projectsMu.Lock()
	defer r.store.projectsMu.Unlock()

	projects, err := r.readAll()
	if err != nil {
		return err
	}
	projects = append(projects, batch...)
	return r.writeAll(projects)
}

func (r *projectRepository) readAll() ([]*domain.Project, error) {
	records, err := r.store.readSheet(projectsFile)
	if err != nil {
		return nil, err
	}
	projects := make([]*domain.Project, 0, len(records))
	for _, record := range records {
		project, err := decodeProject(record)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *projectRepository) writeAll(projects []*domain.Project) error {
	records := make([]map[string]string, 0, len(projects))
	for _, project := range projects {
		records = append(records, encodeProject(project))
	}
	return r.store.writeSheet(projectsFile, projectHeaders, records)
}

func encodeProject(project *domain.Project) map[string]string {
	return map[string]string{
		"id":          project.ID,
		"name":        project.Name,
		"code":        project.Code,
		"description": project.Description,
		"user_role":   string(project.UserRole),
		"created_at":  formatTime(project.CreatedAt),
		"updated_at":  formatTime(project.UpdatedAt),
	}
}

func decodeProject(record map[string]string) (*domain.Project, error) {
	createdAt, err := parseTime(record["created_at"])
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(record["updated_at"])
	if err != nil {
		return nil, err
	}
	return &domain.Project{
		ID:          record["id"],
		Name:        record["name"],
		Code:        record["code"],
		Description: record["description"],
		UserRole:    domain.UserRole(record["user_role"]),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
