package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Holding is the aggregate position for one ticker. Name is a global key.
// A holding with qty 0 must not exist; it is hard-deleted so a later BUY can
// recreate the row under the unique index.
type Holding struct {
	HoldingID uuid.UUID `gorm:"column:holding_id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Qty       int       `gorm:"column:qty;not null" json:"qty"`
	Avg       float64   `gorm:"column:avg;not null" json:"avg"`
	Price     float64   `gorm:"column:price;not null" json:"price"`
	Net       float64   `gorm:"column:net;not null;default:0" json:"net"`
	Day       float64   `gorm:"column:day;not null;default:0" json:"day"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Holding) TableName() string {
	return "Holdings"
}

func (h *Holding) BeforeCreate(tx *gorm.DB) error {
	if h.HoldingID == uuid.Nil {
		h.HoldingID = uuid.New()
	}
	return nil
}
