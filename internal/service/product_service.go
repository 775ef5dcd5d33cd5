package service

import (
	"errors"

	"shakti_backend/internal/model"
	"shakti_backend/internal/repository"
	"shakti_backend/internal/util"

	"gorm.io/gorm"
)

type ProductService struct {
	ProductRepo *repository.ProductRepository
}

func NewProductService(productRepo *repository.ProductRepository) *ProductService {
	return &ProductService{ProductRepo: productRepo}
}

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	Stock       int    `json:"stock" binding:"gte=0"`
	Published   bool   `json:"published"`
}

func (s *ProductService) Create(sellerID uint, req ProductRequest) (*model.Product, error) {
	p := &model.Product{
		SellerID:    sellerID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Published:   req.Published,
	}
	if err := s.ProductRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Get(id uint) (*model.Product, error) {
	p, err := s.ProductRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProductNotFound
	}
	return p, err
}

func (s *ProductService) ListPublished(category string, page, limit int) ([]model.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ProductRepo.ListPublished(category, page, limit)
}

func (s *ProductService) ListBySeller(sellerID uint) ([]model.Product, error) {
	return s.ProductRepo.ListBySeller(sellerID)
}

// Update lets a seller edit only their own listing.
func (s *ProductService) Update(sellerID, productID uint, req ProductRequest) (*model.Product, error) {
	p, err := s.Get(productID)
	if err != nil {
		return nil, err
	}
	if p.SellerID != sellerID {
		return nil, util.ErrPermissionDenied
	}

	p.Name = req.Name
	p.Category = req.Category
	p.Description = req.Description
	p.Price = req.Price
	p.Stock = req.Stock
	p.Published = req.Published

	if err := s.ProductRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(sellerID, productID uint) error {
	p, err := s.Get(productID)
	if err != nil {
		return err
	}
	if p.SellerID != sellerID {
		return util.ErrPermissionDenied
	}
	return s.ProductRepo.Delete(productID)
}

func (s *ProductService) SetImage(sellerID, productID uint, imageURL string) (*model.Product, error) {
	p, err := s.Get(productID)
	if err != nil {
		return nil, err
	}
	if p.SellerID != sellerID {
		return nil, util.ErrPermissionDenied
	}
	p.ImageURL = imageURL
	if err := s.ProductRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
