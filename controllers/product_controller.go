package controllers

import (
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub000/models"
	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{Products: svc}
}

// GetProducts handles GET /api/products?active=true
func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.Products.GetAll(ctx.Query("active") == "true")
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	product, err := c.Products.GetByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Products.Create(&product); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, product)
}

// UpdateProduct handles PATCH /api/products/:id
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Products.Update(id, fields); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "product updated"})
}

// DeleteProduct handles DELETE /api/products/:id
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	if err := c.Products.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "product deleted"})
}
