package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/middleware"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

type ShiftsHandler struct{ svc service.ShiftService }

func NewShiftsHandler(svc service.ShiftService) *ShiftsHandler { return &ShiftsHandler{svc: svc} }

// ClockIn godoc
// @Summary Open a shift for the authenticated employee
// @Tags shifts
// @Accept json
// @Produce json
// @Param body body dto.ClockInRequest true "Location"
// @Success 201 {object} dto.ShiftResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/shifts/clock-in [post]
func (h *ShiftsHandler) ClockIn(c *gin.Context) {
	var req dto.ClockInRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ClockIn(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ShiftsHandler) ClockOut(c *gin.Context) {
	var req dto.ClockOutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ClockOut(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShiftsHandler) Active(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Active(c.Request.Context(), claims.UserID, c.Query("location_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List returns shifts for a location (directors and managers) or the
// caller's own shifts when no location_id is given.
func (h *ShiftsHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	locationID := c.Query("location_id")
	if locationID == "" {
		resp, err := h.svc.ListByEmployee(c.Request.Context(), claims.UserID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	resp, err := h.svc.ListByLocation(c.Request.Context(), claims.BusinessID, locationID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
