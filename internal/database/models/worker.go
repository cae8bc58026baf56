package models

import (
	"github.com/google/uuid"
)

// WorkerType discriminates the two worker variants stored in the workers table
type WorkerType string

const (
	WorkerTypeProgrammer WorkerType = "programmer"
	WorkerTypeLeader     WorkerType = "leader"
)

// IsValid checks if the WorkerType is valid
func (t WorkerType) IsValid() bool {
	switch t {
	case WorkerTypeProgrammer, WorkerTypeLeader:
		return true
	}
	return false
}

// ProgrammerCategory represents the seniority category of a programmer
type ProgrammerCategory string

const (
	ProgrammerCategoryA ProgrammerCategory = "A"
	ProgrammerCategoryB ProgrammerCategory = "B"
	ProgrammerCategoryC ProgrammerCategory = "C"
)

// IsValid checks if the ProgrammerCategory is valid
func (c ProgrammerCategory) IsValid() bool {
	switch c {
	case ProgrammerCategoryA, ProgrammerCategoryB, ProgrammerCategoryC:
		return true
	}
	return false
}

// Worker represents a staff member. Programmer and leader share the workers
// table; WorkerType tags which variant columns are meaningful, the columns of
// the other variant stay NULL.
type Worker struct {
	BaseModel
	Name       string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Age        int        `json:"age" gorm:"not null" validate:"required,gt=0"`
	Gender     string     `json:"gender" gorm:"not null;size:20" validate:"required,max=20"`
	BaseSalary float64    `json:"base_salary" gorm:"not null" validate:"gte=0"`
	WorkerType WorkerType `json:"worker_type" gorm:"type:varchar(20);not null;index" validate:"required,oneof=programmer leader"`

	// Programmer fields
	Category *ProgrammerCategory `json:"category,omitempty" gorm:"type:varchar(1)"`
	TeamID   *uuid.UUID          `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Leader fields
	ExperienceYears  *int `json:"experience_years,omitempty"`
	DirectedProjects *int `json:"directed_projects,omitempty"`

	// Relationships. Team is the programmer's membership via workers.team_id,
	// LedTeam is the leader's team via teams.leader_id.
	Languages []Language `json:"languages,omitempty" gorm:"many2many:worker_languages"`
	Team      *Team      `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	LedTeam   *Team      `json:"led_team,omitempty" gorm:"foreignKey:LeaderID"`
}

// TableName returns the table name for Worker
func (Worker) TableName() string {
	return "workers"
}

// IsProgrammer reports whether the worker is the programmer variant
func (w *Worker) IsProgrammer() bool {
	return w.WorkerType == WorkerTypeProgrammer
}

// IsLeader reports whether the worker is the leader variant
func (w *Worker) IsLeader() bool {
	return w.WorkerType == WorkerTypeLeader
}

// ActiveProject returns the project of the worker's active team, or nil when
// the worker has no team or the team has no project
func (w *Worker) ActiveProject() *Project {
	switch w.WorkerType {
	case WorkerTypeProgrammer:
		if w.Team != nil {
			return w.Team.Project
		}
	case WorkerTypeLeader:
		if w.LedTeam != nil {
			return w.LedTeam.Project
		}
	}
	return nil
}

// LanguageNames returns the names of the worker's languages in stored order
func (w *Worker) LanguageNames() []string {
	names := make([]string, len(w.Languages))
	for i, lang := range w.Languages {
		names[i] = lang.Name
	}
	return names
}
