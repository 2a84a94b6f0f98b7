package holdings

import (
	"context"

	"gorm.io/gorm"

	"tradex-backend/internal/models"
)

// Service reads the holdings ledger.
type Service struct {
	DB *gorm.DB
}

// List returns all holdings.
func (s *Service) List(ctx context.Context) ([]models.Holding, error) {
	out := []models.Holding{}
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByName returns the holding for a ticker, or nil when absent. Absence is
// not an error.
func (s *Service) GetByName(ctx context.Context, name string) (*models.Holding, error) {
	var h models.Holding
	err := s.DB.WithContext(ctx).Where("name = ?", name).First(&h).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}
