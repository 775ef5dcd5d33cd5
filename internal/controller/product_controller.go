package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"shakti_backend/internal/service"
	"shakti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	ProductService *service.ProductService
	StorageService *service.StorageService
}

func NewProductController(productService *service.ProductService, storageService *service.StorageService) *ProductController {
	return &ProductController{ProductService: productService, StorageService: storageService}
}

// @Summary Browse published products
// @Tags products
// @Produce json
// @Param category query string false "category filter"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	products, total, err := c.ProductService.ListPublished(ctx.Query("category"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: products, Total: total, Page: page, Limit: limit})
}

// @Summary Product detail
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} util.Response
// @Router /api/products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid product id")
		return
	}

	product, err := c.ProductService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrProductNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, product)
}

// @Summary Create a product listing
// @Tags seller
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.ProductRequest true "product fields"
// @Success 201 {object} util.Response
// @Router /api/seller/products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	product, err := c.ProductService.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, product)
}

// @Summary List my product listings
// @Tags seller
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/seller/products [get]
func (c *ProductController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	products, err := c.ProductService.ListBySeller(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, products)
}

// @Summary Update a product listing
// @Tags seller
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "product id"
// @Param request body service.ProductRequest true "product fields"
// @Success 200 {object} util.Response
// @Router /api/seller/products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid product id")
		return
	}

	var req service.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	product, err := c.ProductService.Update(claims.UserID, uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProductNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, product)
}

// @Summary Delete a product listing
// @Tags seller
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "product id"
// @Success 200 {object} util.Response
// @Router /api/seller/products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid product id")
		return
	}

	if err := c.ProductService.Delete(claims.UserID, uint(id)); err != nil {
		switch {
		case errors.Is(err, util.ErrProductNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// @Summary Upload a product image
// @Tags seller
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "product id"
// @Param file formData file true "product image"
// @Success 200 {object} util.Response
// @Router /api/seller/products/{id}/image [post]
func (c *ProductController) UploadImage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid product id")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("products/%d%s", id, filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	product, err := c.ProductService.SetImage(claims.UserID, uint(id), url)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProductNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, product)
}
