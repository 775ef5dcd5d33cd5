package repository

import (
	"shakti_backend/internal/model"

	"gorm.io/gorm"
)

// ProductReader is the read-only product lookup order placement needs.
type ProductReader interface {
	FindByID(id uint) (*model.Product, error)
}

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *model.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*model.Product, error) {
	var p model.Product
	err := r.DB.First(&p, id).Error
	return &p, err
}

// ListPublished returns buyer-visible products, optionally filtered by category.
func (r *ProductRepository) ListPublished(category string, page, limit int) ([]model.Product, int64, error) {
	q := r.DB.Model(&model.Product{}).Where("published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) ListBySeller(sellerID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.DB.Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) Update(p *model.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Product{}, id).Error
}

// DecrementStock reduces stock atomically and fails when not enough remains.
func (r *ProductRepository) DecrementStock(productID uint, quantity int) error {
	res := r.DB.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
