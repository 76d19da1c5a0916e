package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wellify-Group/wellify-business-sub000/internal/apierror"
	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/middleware"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

// StaffHandler manages managers and employees within the caller's business.
// The :role URL segment selects the staff pool.
type StaffHandler struct{ svc service.StaffService }

func NewStaffHandler(svc service.StaffService) *StaffHandler { return &StaffHandler{svc: svc} }

// staffRole validates the :role path param. Directors are not staff — they
// own the business and are managed through signup only.
func staffRole(c *gin.Context) (string, bool) {
	role := c.Param("role")
	if role != model.RoleManager && role != model.RoleEmployee {
		c.JSON(http.StatusBadRequest, apierror.New("Role must be manager or employee"))
		return "", false
	}
	return role, true
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
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

func (h *StaffHandler) List(c *gin.Context) {
	role, ok := staffRole(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.BusinessID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StaffHandler) Update(c *gin.Context) {
	role, ok := staffRole(c)
	if !ok {
		return
	}
	var req dto.UpdateStaffRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Update(c.Request.Context(), claims.BusinessID, role, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	role, ok := staffRole(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Delete(c.Request.Context(), claims.BusinessID, role, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
