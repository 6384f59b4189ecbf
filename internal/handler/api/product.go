package api

import (
	"errors"
	"net/http"

	"sneakdrop/internal/domain/product"
	reqdto "sneakdrop/internal/handler/dto/request"
	resdto "sneakdrop/internal/handler/dto/response"
	"sneakdrop/internal/handler/httperr"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productCommands commands.ProductCommands
	productQueries  queries.ProductQueries
}

func NewProductHandler(productCommands commands.ProductCommands, productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productCommands: productCommands,
		productQueries:  productQueries,
	}
}

// @Summary List products
// @Description All products on the ballot with their all-time vote counts
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	views, err := h.productQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Get product
// @Description One product with its all-time vote count
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	view, err := h.productQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgProductNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Create product
// @Description Add a product to the ballot (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product request"
// @Success 201 {object} resdto.CreateProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	result, err := h.productCommands.Create(c.Request.Context(), commands.CreateProductRequest{
		Name:      req.Name,
		Brand:     req.Brand,
		GoalLikes: req.GoalLikes,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if isProductValidationErr(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateProductResponse{ID: result.ProductID})
}

// @Summary Update product
// @Description Update a ballot product (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Product request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	err = h.productCommands.Update(c.Request.Context(), id, commands.UpdateProductRequest{
		Name:      req.Name,
		Brand:     req.Brand,
		GoalLikes: req.GoalLikes,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgProductNotFound)
		case isProductValidationErr(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func isProductValidationErr(err error) bool {
	return errors.Is(err, product.ErrEmptyName) ||
		errors.Is(err, product.ErrNameTooLong) ||
		errors.Is(err, product.ErrEmptyBrand) ||
		errors.Is(err, product.ErrInvalidGoalLikes)
}
