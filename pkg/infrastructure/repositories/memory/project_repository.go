package memory

import (
	"fmt"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/repositories"
)

// ProjectRepository provides in-memory project storage
type ProjectRepository struct {
	projects    []entities.Project
	projectsMap map[entities.ProjectID]int
}

// NewProjectRepository creates a new in-memory project repository
func NewProjectRepository(expectedProjects int) *ProjectRepository {
	return &ProjectRepository{
		projects:    make([]entities.Project, 0, expectedProjects),
		projectsMap: make(map[entities.ProjectID]int, expectedProjects),
	}
}

// Verify interface compliance
var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// LoadProjects loads projects into the repository, rejecting duplicate ids
func (r *ProjectRepository) LoadProjects(projects []*entities.Project) error {
	var duplicates []entities.ProjectID
	for _, project := range projects {
		if _, exists := r.projectsMap[project.ID]; exists {
			duplicates = append(duplicates, project.ID)
			continue
		}
		r.projectsMap[project.ID] = len(r.projects)
		r.projects = append(r.projects, *project)
	}
	if len(duplicates) > 0 {
		return fmt.Errorf("duplicate project ids found: %v", duplicates)
	}
	return nil
}

// GetProject returns a project by id
func (r *ProjectRepository) GetProject(id entities.ProjectID) (*entities.Project, error) {
	index, exists := r.projectsMap[id]
	if !exists {
		return nil, fmt.Errorf("project %s: %w", id, repositories.ErrNotFound)
	}
	project := r.projects[index]
	return &project, nil
}

// GetAllProjects returns all projects in load order
func (r *ProjectRepository) GetAllProjects() []entities.Project {
	return r.projects
}
