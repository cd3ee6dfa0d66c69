package client

import "context"

// ListProjects returns all projects ordered by name. Results are cached
// briefly.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var cached []Project
	if c.cacheGet(projectsCacheKey, &cached) {
		return cached, nil
	}

	var wire []wireProject
	if err := c.get(ctx, "/api/projects", &wire); err != nil {
		return nil, err
	}
	projects := make([]Project, 0, len(wire))
	for i := range wire {
		projects = append(projects, wire[i].toProject())
	}
	c.cacheSet(projectsCacheKey, projects)
	return projects, nil
}
