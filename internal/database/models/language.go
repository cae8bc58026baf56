package models

// Language represents a programming language shared across programmers
type Language struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`

	// Relationships
	Programmers []Worker `json:"programmers,omitempty" gorm:"many2many:worker_languages"`
}

// TableName returns the table name for Language
func (Language) TableName() string {
	return "languages"
}
