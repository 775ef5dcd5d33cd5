package service

import (
	"errors"

	"shakti_backend/internal/model"
	"shakti_backend/internal/repository"
	"shakti_backend/internal/util"

	"gorm.io/gorm"
)

type OrderService struct {
	Orders   repository.OrderStore
	Products repository.ProductReader
}

func NewOrderService(orders repository.OrderStore, products repository.ProductReader) *OrderService {
	return &OrderService{Orders: orders, Products: products}
}

type PlaceOrderRequest struct {
	ProductID    uint   `json:"productId" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,gt=0"`
	ContactPhone string `json:"contactPhone" binding:"required"`
	Address      string `json:"address" binding:"required"`
}

// Place creates an order against a published product. Stock is reserved
// by the store's guarded decrement, so the early stock check here is only
// a fast reject.
func (s *OrderService) Place(buyerID uint, req PlaceOrderRequest) (*model.Order, error) {
	product, err := s.Products.FindByID(req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if !product.Published {
		return nil, util.ErrProductNotFound
	}
	if product.Stock < req.Quantity {
		return nil, util.ErrOutOfStock
	}

	order := &model.Order{
		BuyerID:      buyerID,
		SellerID:     product.SellerID,
		ProductID:    product.ID,
		Quantity:     req.Quantity,
		UnitPrice:    product.Price,
		Total:        product.Price * int64(req.Quantity),
		Status:       model.OrderPending,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	}

	if err := s.Orders.Place(order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrOutOfStock
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListByBuyer(buyerID uint) ([]model.Order, error) {
	return s.Orders.ListByBuyer(buyerID)
}

func (s *OrderService) ListBySeller(sellerID uint) ([]model.Order, error) {
	return s.Orders.ListBySeller(sellerID)
}

// UpdateStatus advances an order along its lifecycle. Only the owning
// seller may do so, and only legal transitions are accepted.
func (s *OrderService) UpdateStatus(sellerID, orderID uint, next model.OrderStatus) (*model.Order, error) {
	order, err := s.Orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, util.ErrPermissionDenied
	}
	if !order.CanTransition(next) {
		return nil, util.ErrInvalidTransition
	}

	if err := s.Orders.UpdateStatus(orderID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}
