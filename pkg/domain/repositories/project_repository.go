package repositories

import "github.com/vsinha/siteorders/pkg/domain/entities"

// ProjectRepository provides access to project reference data
type ProjectRepository interface {
	GetProject(id entities.ProjectID) (*entities.Project, error)
	GetAllProjects() []entities.Project
	LoadProjects(projects []*entities.Project) error
}
