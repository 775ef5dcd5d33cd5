package repository

import (
	"shakti_backend/internal/model"

	"gorm.io/gorm"
)

// OrderStore is the persistence surface the order workflow runs against.
// Place reserves stock and creates the order atomically; it returns
// gorm.ErrRecordNotFound when the product has too little stock left.
type OrderStore interface {
	Place(o *model.Order) error
	FindByID(id uint) (*model.Order, error)
	ListByBuyer(buyerID uint) ([]model.Order, error)
	ListBySeller(sellerID uint) ([]model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) error
}

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Place decrements the product's stock and inserts the order in one
// transaction, so a concurrent buyer can never oversell the listing.
func (r *OrderRepository) Place(o *model.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		products := &ProductRepository{DB: tx}
		if err := products.DecrementStock(o.ProductID, o.Quantity); err != nil {
			return err
		}
		return tx.Create(o).Error
	})
}

func (r *OrderRepository) FindByID(id uint) (*model.Order, error) {
	var o model.Order
	err := r.DB.First(&o, id).Error
	return &o, err
}

func (r *OrderRepository) ListByBuyer(buyerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.DB.Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListBySeller(sellerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.DB.Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(id uint, status model.OrderStatus) error {
	return r.DB.Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
