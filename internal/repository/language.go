package repository

import (
	"staffing-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// LanguageRepository handles database operations for languages
type LanguageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository creates a new language repository
func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

// GetAll retrieves all languages
func (r *LanguageRepository) GetAll() ([]models.Language, error) {
	var languages []models.Language
	err := r.db.Order("name ASC").Find(&languages).Error
	return languages, err
}

// GetByName retrieves a language by its unique name
func (r *LanguageRepository) GetByName(name string) (*models.Language, error) {
	var language models.Language
	err := r.db.First(&language, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &language, nil
}

// FindOrCreateByName returns the language with the given name, creating it
// if it does not exist yet
func (r *LanguageRepository) FindOrCreateByName(name string) (*models.Language, error) {
	var language models.Language
	err := r.db.Where(models.Language{Name: name}).FirstOrCreate(&language).Error
	if err != nil {
		return nil, err
	}
	return &language, nil
}
