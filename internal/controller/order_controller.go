package controller

import (
	"errors"
	"strconv"

	"shakti_backend/internal/model"
	"shakti_backend/internal/service"
	"shakti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	OrderService *service.OrderService
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{OrderService: orderService}
}

type orderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.PlaceOrderRequest true "order fields"
// @Success 201 {object} util.Response
// @Router /api/orders [post]
func (c *OrderController) Place(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	order, err := c.OrderService.Place(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProductNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrOutOfStock):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, order)
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/orders [get]
func (c *OrderController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	orders, err := c.OrderService.ListByBuyer(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, orders)
}

// @Summary List orders on my listings
// @Tags seller
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/seller/orders [get]
func (c *OrderController) ListForSeller(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	orders, err := c.OrderService.ListBySeller(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, orders)
}

// @Summary Advance an order's status
// @Description Moves the order forward in its lifecycle. Cancelling is only allowed while the order is pending.
// @Tags seller
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param orderId path int true "order id"
// @Param request body orderStatusRequest true "next status"
// @Success 200 {object} util.Response
// @Router /api/seller/orders/{orderId}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("orderId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid order id")
		return
	}

	var req orderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	order, err := c.OrderService.UpdateStatus(claims.UserID, uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrOrderNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrInvalidTransition):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, order)
}
