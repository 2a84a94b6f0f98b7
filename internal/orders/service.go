package orders

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tradex-backend/internal/models"
)

// Domain errors. Both roll the whole placement back: no order row survives a
// rejected sell.
var (
	ErrOversell = errors.New("cannot sell more than owned quantity")
	ErrNotOwned = errors.New("cannot sell stock that is not owned")
)

// ValidationError is an input rejection; first violation wins.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Service places orders and maintains the holdings ledger.
type Service struct {
	DB *gorm.DB

	// locks serializes all mutations for one ticker: single writer per name,
	// so concurrent SELLs cannot both pass the oversell check.
	locks sync.Map
}

// PlaceOrderInput matches the newOrder request body.
type PlaceOrderInput struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
	Mode  string  `json:"mode"`
}

func validate(in PlaceOrderInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return &ValidationError{msg: "name is required"}
	case in.Qty <= 0:
		return &ValidationError{msg: "qty must be a positive integer"}
	case in.Price <= 0:
		return &ValidationError{msg: "price must be a positive number"}
	case in.Mode != models.ModeBuy && in.Mode != models.ModeSell:
		return &ValidationError{msg: "mode must be BUY or SELL"}
	}
	return nil
}

// PlaceOrder appends the order and folds it into the holding for its ticker
// in one transaction. On BUY the average cost is the quantity-weighted mean of
// old and new cost and the price field takes the trade price. On SELL the
// quantity decrements, avg is untouched, and the holding is deleted when the
// quantity reaches exactly zero. The returned holding is nil when the sell
// emptied it.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, *models.Holding, error) {
	if err := validate(in); err != nil {
		return nil, nil, err
	}
	name := strings.TrimSpace(in.Name)

	mu := s.lockFor(name)
	mu.Lock()
	defer mu.Unlock()

	var order models.Order
	var holding *models.Holding

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order = models.Order{Name: name, Qty: in.Qty, Price: in.Price, Mode: in.Mode}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var h models.Holding
		err := tx.Where("name = ?", name).First(&h).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if in.Mode == models.ModeSell {
				return ErrNotOwned
			}
			h = models.Holding{Name: name, Qty: in.Qty, Avg: in.Price, Price: in.Price}
			if err := tx.Create(&h).Error; err != nil {
				return err
			}
			holding = &h
		case err != nil:
			return err
		case in.Mode == models.ModeBuy:
			total := h.Qty + in.Qty
			h.Avg = (h.Avg*float64(h.Qty) + in.Price*float64(in.Qty)) / float64(total)
			h.Qty = total
			h.Price = in.Price
			if err := tx.Save(&h).Error; err != nil {
				return err
			}
			holding = &h
		default: // SELL against an existing holding
			remaining := h.Qty - in.Qty
			if remaining < 0 {
				return ErrOversell
			}
			if remaining == 0 {
				if err := tx.Delete(&h).Error; err != nil {
					return err
				}
				holding = nil
			} else {
				h.Qty = remaining
				h.Price = in.Price
				if err := tx.Save(&h).Error; err != nil {
					return err
				}
				holding = &h
			}
		}

		return writeEvent(tx, &order, holding)
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, holding, nil
}

// ListOrders returns all orders, oldest first.
func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	out := []models.Order{}
	if err := s.DB.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) lockFor(name string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(name, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func writeEvent(tx *gorm.DB, order *models.Order, holding *models.Holding) error {
	snapshot := map[string]interface{}{
		"mode":  order.Mode,
		"qty":   order.Qty,
		"price": order.Price,
	}
	if holding != nil {
		snapshot["holding_qty"] = holding.Qty
		snapshot["holding_avg"] = holding.Avg
	} else {
		snapshot["holding_deleted"] = true
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return tx.Create(&models.OrderEvent{
		OrderID:   order.OrderID,
		EventType: "PLACED",
		EventData: datatypes.JSON(data),
	}).Error
}
