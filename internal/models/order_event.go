package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderEvent is an audit row written in the same transaction as an order
// placement, carrying a JSON snapshot of the resulting holding state.
type OrderEvent struct {
	EventID   uuid.UUID      `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	OrderID   uuid.UUID      `gorm:"column:order_id;type:uuid;not null;index" json:"order_id"`
	EventType string         `gorm:"column:event_type;not null" json:"event_type"`
	EventData datatypes.JSON `gorm:"column:event_data" json:"event_data"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (OrderEvent) TableName() string {
	return "OrderEvents"
}

func (e *OrderEvent) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
