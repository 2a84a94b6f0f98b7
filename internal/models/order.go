package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order modes.
const (
	ModeBuy  = "BUY"
	ModeSell = "SELL"
)

// Order is one executed BUY/SELL instruction. Immutable once recorded, except
// for the approved flag flipped by the background sweep.
type Order struct {
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;index" json:"name"`
	Qty       int       `gorm:"column:qty;not null" json:"qty"`
	Price     float64   `gorm:"column:price;not null" json:"price"`
	Mode      string    `gorm:"column:mode;not null" json:"mode"`
	Approved  bool      `gorm:"column:approved;not null;default:false" json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Order) TableName() string {
	return "Orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == uuid.Nil {
		o.OrderID = uuid.New()
	}
	return nil
}
