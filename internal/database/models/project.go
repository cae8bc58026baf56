package models

// ProjectType represents the type of a project
type ProjectType string

const (
	ProjectTypeGestion    ProjectType = "gestion"
	ProjectTypeMultimedia ProjectType = "multimedia"
)

// IsValid checks if the ProjectType is valid
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeGestion, ProjectTypeMultimedia:
		return true
	}
	return false
}

// Project represents a software project. The multimedia and gestion variant
// columns are mutually exclusive by ProjectType; the inactive variant stays
// NULL.
type Project struct {
	BaseModel
	Name          string      `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description   string      `json:"description" gorm:"type:text"`
	EstimatedTime int         `json:"estimated_time" gorm:"not null" validate:"required,gt=0"` // days
	Price         float64     `json:"price" gorm:"not null" validate:"gte=0"`
	ProjectType   ProjectType `json:"type" gorm:"type:varchar(20);not null;index" validate:"required,oneof=gestion multimedia"`

	// Multimedia fields
	IsFlash    *bool `json:"is_flash,omitempty"`
	IsDirector *bool `json:"is_director,omitempty"`

	// Gestion fields
	DBType    *string `json:"db_type,omitempty" gorm:"size:100"`
	Language  *string `json:"language,omitempty" gorm:"size:100"`
	Framework *string `json:"framework,omitempty" gorm:"size:100"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
