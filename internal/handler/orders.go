package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/middleware"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler { return &OrdersHandler{svc: svc} }

// Create godoc
// @Summary Record a sale against the caller's active shift
// @Tags orders
// @Accept json
// @Produce json
// @Param body body dto.CreateOrderRequest true "Order"
// @Success 201 {object} dto.OrderResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdersHandler) ListByShift(c *gin.Context) {
	resp, err := h.svc.ListByShift(c.Request.Context(), c.Param("shiftId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) ListByLocation(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListByLocation(c.Request.Context(), claims.BusinessID, c.Param("locationId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
