package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Position is a read-only snapshot view, structurally similar to Holding.
// Rows are seeded out-of-band; no write path is exposed.
type Position struct {
	PositionID uuid.UUID `gorm:"column:position_id;type:uuid;primaryKey" json:"id"`
	Product    string    `gorm:"column:product" json:"product"`
	Name       string    `gorm:"column:name;not null;index" json:"name"`
	Qty        int       `gorm:"column:qty;not null" json:"qty"`
	Avg        float64   `gorm:"column:avg;not null" json:"avg"`
	Price      float64   `gorm:"column:price;not null" json:"price"`
	Net        float64   `gorm:"column:net;not null;default:0" json:"net"`
	Day        float64   `gorm:"column:day;not null;default:0" json:"day"`
	IsLoss     bool      `gorm:"column:is_loss;not null;default:false" json:"isLoss"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Position) TableName() string {
	return "Positions"
}

func (p *Position) BeforeCreate(tx *gorm.DB) error {
	if p.PositionID == uuid.Nil {
		p.PositionID = uuid.New()
	}
	return nil
}
