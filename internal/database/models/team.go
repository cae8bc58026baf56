package models

import (
	"github.com/google/uuid"
)

// Team binds at most one leader and one project to a set of programmers.
// The unique indexes on LeaderID and ProjectID enforce the one-leader-per-team
// and one-project-per-team invariants at the storage layer.
type Team struct {
	BaseModel
	ProjectID *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;uniqueIndex"`
	LeaderID  *uuid.UUID `json:"leader_id,omitempty" gorm:"type:uuid;uniqueIndex"`

	// Relationships
	Project     *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Leader      *Worker  `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	Programmers []Worker `json:"programmers,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
