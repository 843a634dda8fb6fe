package entities

import "fmt"

// ProjectID identifies a project
type ProjectID string

// Project is a client site the contractor works on
type Project struct {
	ID          ProjectID `json:"id"`
	ClientName  string    `json:"clientName"`
	SiteName    string    `json:"siteName"`
	ProjectCode string    `json:"projectCode"`
}

// NewProject creates a validated Project
func NewProject(id ProjectID, clientName, siteName, projectCode string) (*Project, error) {
	if id == "" {
		return nil, fmt.Errorf("project id cannot be empty")
	}
	if projectCode == "" {
		return nil, fmt.Errorf("project code cannot be empty")
	}

	return &Project{
		ID:          id,
		ClientName:  clientName,
		SiteName:    siteName,
		ProjectCode: projectCode,
	}, nil
}

// DisplayName is the "client - site" heading used in listings and order documents
func (p Project) DisplayName() string {
	return p.ClientName + " - " + p.SiteName
}
