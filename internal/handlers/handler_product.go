package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// productHandler handles HTTP requests for products and their sales.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := &productHandler{productService: productService}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:product_id", h.getProduct)
		products.PUT("/:product_id", h.updateProduct)
		products.DELETE("/:product_id", h.deactivateProduct)
		products.POST("/:product_id/stock", h.adjustStock)
		products.GET("/:product_id/sales", h.listProductSales)
	}

	sales := rg.Group("/product-sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:sale_id", h.getSale)
		sales.PUT("/:sale_id", h.updateSale)
		sales.DELETE("/:sale_id", h.removeSale)
	}
}

func (h *productHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *productHandler) listProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), c.Query("branch_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("product_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) deactivateProduct(c *gin.Context) {
	if err := h.productService.DeactivateProduct(c.Request.Context(), c.Param("product_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *productHandler) adjustStock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.productService.AdjustStock(c.Request.Context(), c.Param("product_id"), req.Quantity, req.Operation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) createSale(c *gin.Context) {
	var req dto.CreateProductSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sale, err := h.productService.CreateSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *productHandler) listProductSales(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	sales, err := h.productService.ListSales(c.Request.Context(), c.Param("product_id"), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *productHandler) listSales(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	sales, err := h.productService.ListSales(c.Request.Context(), c.Query("product_id"), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *productHandler) getSale(c *gin.Context) {
	sale, err := h.productService.GetSaleByID(c.Request.Context(), c.Param("sale_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *productHandler) updateSale(c *gin.Context) {
	var req dto.UpdateProductSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sale, err := h.productService.UpdateSale(c.Request.Context(), c.Param("sale_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *productHandler) removeSale(c *gin.Context) {
	if err := h.productService.RemoveSale(c.Request.Context(), c.Param("sale_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
