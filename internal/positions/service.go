package positions

import (
	"context"

	"gorm.io/gorm"

	"tradex-backend/internal/models"
)

// Service reads the positions projection.
type Service struct {
	DB *gorm.DB
}

// List returns all positions.
func (s *Service) List(ctx context.Context) ([]models.Position, error) {
	out := []models.Position{}
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
