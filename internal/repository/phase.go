package repository

import (
	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhaseRepository handles database operations for the fixed phase catalog
type PhaseRepository struct {
	db *gorm.DB
}

// NewPhaseRepository creates a new phase repository
func NewPhaseRepository(db *gorm.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// Create creates a new phase
func (r *PhaseRepository) Create(phase *models.Phase) error {
	return r.db.Create(phase).Error
}

// GetByID retrieves a phase by ID
func (r *PhaseRepository) GetByID(id uuid.UUID) (*models.Phase, error) {
	var phase models.Phase
	err := r.db.First(&phase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &phase, nil
}

// ListOrdered retrieves all phases ordered by their catalog index
func (r *PhaseRepository) ListOrdered() ([]models.Phase, error) {
	var phases []models.Phase
	err := r.db.Order("order_index ASC").Find(&phases).Error
	if err != nil {
		return nil, err
	}
	return phases, nil
}
