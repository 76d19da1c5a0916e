package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/middleware"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

type LocationsHandler struct{ svc service.LocationService }

func NewLocationsHandler(svc service.LocationService) *LocationsHandler {
	return &LocationsHandler{svc: svc}
}

func (h *LocationsHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Create(c.Request.Context(), claims.BusinessID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LocationsHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Get(c.Request.Context(), claims.BusinessID, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LocationsHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.BusinessID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LocationsHandler) Update(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Update(c.Request.Context(), claims.BusinessID, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LocationsHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := h.svc.Delete(c.Request.Context(), claims.BusinessID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
