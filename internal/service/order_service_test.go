package service

import (
	"testing"

	"shakti_backend/internal/model"
	"shakti_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProducts serves product lookups from a map, returning copies so a
// test can mutate stock without aliasing surprises.
type fakeProducts struct {
	products map[uint]*model.Product
}

func (f *fakeProducts) FindByID(id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

// fakeOrders mimics the transactional store: Place decrements stock with
// the same guard the SQL path uses and fails with gorm.ErrRecordNotFound
// when not enough remains.
type fakeOrders struct {
	products  *fakeProducts
	orders    map[uint]*model.Order
	nextID    uint
	failPlace error
}

func newOrderFixture() (*fakeOrders, *fakeProducts) {
	products := &fakeProducts{products: map[uint]*model.Product{}}
	orders := &fakeOrders{products: products, orders: map[uint]*model.Order{}}
	return orders, products
}

func (f *fakeOrders) Place(o *model.Order) error {
	if f.failPlace != nil {
		return f.failPlace
	}
	p, ok := f.products.products[o.ProductID]
	if !ok || p.Stock < o.Quantity {
		return gorm.ErrRecordNotFound
	}
	p.Stock -= o.Quantity
	f.nextID++
	o.ID = f.nextID
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrders) FindByID(id uint) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) ListByBuyer(buyerID uint) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) ListBySeller(sellerID uint) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.SellerID == sellerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(id uint, status model.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func sareeListing() *model.Product {
	return &model.Product{
		Model:     gorm.Model{ID: 1},
		SellerID:  9,
		Name:      "Handwoven saree",
		Price:     120000,
		Stock:     5,
		Published: true,
	}
}

func TestPlaceOrder(t *testing.T) {
	orders, products := newOrderFixture()
	products.products[1] = sareeListing()
	svc := NewOrderService(orders, products)

	order, err := svc.Place(4, PlaceOrderRequest{
		ProductID:    1,
		Quantity:     2,
		ContactPhone: "9876543210",
		Address:      "Ward 3, Rampur",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(4), order.BuyerID)
	assert.Equal(t, uint(9), order.SellerID)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, int64(240000), order.Total)
	assert.Equal(t, 3, products.products[1].Stock, "stock decremented by the ordered quantity")
}

func TestPlaceOrder_OutOfStock(t *testing.T) {
	orders, products := newOrderFixture()
	listing := sareeListing()
	listing.Stock = 1
	products.products[1] = listing
	svc := NewOrderService(orders, products)

	_, err := svc.Place(4, PlaceOrderRequest{ProductID: 1, Quantity: 2, ContactPhone: "9876543210", Address: "Rampur"})
	assert.ErrorIs(t, err, util.ErrOutOfStock)
	assert.Equal(t, 1, products.products[1].Stock, "failed order must not touch stock")
}

func TestPlaceOrder_ConcurrentSaleMapsToOutOfStock(t *testing.T) {
	// The listing looks in stock at read time but the guarded decrement
	// loses the race inside the store.
	orders, products := newOrderFixture()
	products.products[1] = sareeListing()
	orders.failPlace = gorm.ErrRecordNotFound
	svc := NewOrderService(orders, products)

	_, err := svc.Place(4, PlaceOrderRequest{ProductID: 1, Quantity: 2, ContactPhone: "9876543210", Address: "Rampur"})
	assert.ErrorIs(t, err, util.ErrOutOfStock)
}

func TestPlaceOrder_UnpublishedProductHidden(t *testing.T) {
	orders, products := newOrderFixture()
	listing := sareeListing()
	listing.Published = false
	products.products[1] = listing
	svc := NewOrderService(orders, products)

	_, err := svc.Place(4, PlaceOrderRequest{ProductID: 1, Quantity: 1, ContactPhone: "9876543210", Address: "Rampur"})
	assert.ErrorIs(t, err, util.ErrProductNotFound)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	orders, products := newOrderFixture()
	svc := NewOrderService(orders, products)

	_, err := svc.Place(4, PlaceOrderRequest{ProductID: 42, Quantity: 1, ContactPhone: "9876543210", Address: "Rampur"})
	assert.ErrorIs(t, err, util.ErrProductNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	orders, products := newOrderFixture()
	products.products[1] = sareeListing()
	svc := NewOrderService(orders, products)

	placed, err := svc.Place(4, PlaceOrderRequest{ProductID: 1, Quantity: 1, ContactPhone: "9876543210", Address: "Rampur"})
	require.NoError(t, err)

	t.Run("another seller is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(8, placed.ID, model.OrderConfirmed)
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("skipping ahead is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(9, placed.ID, model.OrderDelivered)
		assert.ErrorIs(t, err, util.ErrInvalidTransition)
	})

	t.Run("owning seller confirms", func(t *testing.T) {
		order, err := svc.UpdateStatus(9, placed.ID, model.OrderConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.OrderConfirmed, order.Status)

		stored, err := orders.FindByID(placed.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OrderConfirmed, stored.Status)
	})

	t.Run("confirmed order cannot be cancelled", func(t *testing.T) {
		_, err := svc.UpdateStatus(9, placed.ID, model.OrderCancelled)
		assert.ErrorIs(t, err, util.ErrInvalidTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.UpdateStatus(9, 999, model.OrderConfirmed)
		assert.ErrorIs(t, err, util.ErrOrderNotFound)
	})
}
