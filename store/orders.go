package store

import (
	"fmt"
	"time"

	"github.com/osenco/osen-wc-tingg/models"

	"gorm.io/gorm"
)

// GormOrderStore is the MySQL-backed order store. Per-order write
// serialization is delegated to the database; payment and stock mutations
// are flag-guarded so replayed webhook deliveries are no-ops.
type GormOrderStore struct {
	DB *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{DB: db}
}

func (s *GormOrderStore) FetchByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkPaid marks the order completed and paid. Calling it on an already
// paid order changes nothing.
func (s *GormOrderStore) MarkPaid(order *models.Order) error {
	if order.Paid {
		return nil
	}

	now := time.Now()
	if err := s.DB.Model(order).Updates(map[string]interface{}{
		"paid":    true,
		"paid_at": now,
		"status":  "completed",
	}).Error; err != nil {
		return fmt.Errorf("failed to mark order #%d paid: %w", order.ID, err)
	}

	order.Paid = true
	order.PaidAt = &now
	order.Status = "completed"
	return nil
}

// ReduceStock decrements product stock for every line item, once per order.
func (s *GormOrderStore) ReduceStock(order *models.Order) error {
	if order.StockReduced {
		return nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return tx.Model(order).Update("stock_reduced", true).Error
	})
	if err != nil {
		return fmt.Errorf("failed to reduce stock for order #%d: %w", order.ID, err)
	}

	order.StockReduced = true
	return nil
}

func (s *GormOrderStore) AppendNote(order *models.Order, note string) error {
	record := models.OrderNote{OrderID: order.ID, Note: note}
	if err := s.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to add note to order #%d: %w", order.ID, err)
	}
	order.Notes = append(order.Notes, record)
	return nil
}
