package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wellify-Group/wellify-business-sub000/internal/apierror"
	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

// TerminalHandler serves the point-of-sale terminal bootstrap flow:
// resolving a pasted access code, then logging an employee in with code + PIN.
type TerminalHandler struct {
	auth   service.AuthService
	access service.AccessService
}

func NewTerminalHandler(auth service.AuthService, access service.AccessService) *TerminalHandler {
	return &TerminalHandler{auth: auth, access: access}
}

// Login godoc
// @Summary Employee terminal login with access code + PIN
// @Tags terminal
// @Accept json
// @Produce json
// @Param body body dto.TerminalLoginRequest true "Code and PIN"
// @Success 200 {object} dto.TerminalLoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/terminal/login [post]
func (h *TerminalHandler) Login(c *gin.Context) {
	var req dto.TerminalLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.LoginTerminal(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResolveCode godoc
// @Summary Resolve a 16-digit access code to a business or location
// @Tags terminal
// @Accept json
// @Produce json
// @Param body body dto.ResolveCodeRequest true "Access code"
// @Success 200 {object} dto.AccessCodeResult
// @Failure 404 {object} apierror.APIError
// @Router /v1/terminal/resolve-code [post]
func (h *TerminalHandler) ResolveCode(c *gin.Context) {
	var req dto.ResolveCodeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, err := h.access.Resolve(c.Request.Context(), req.Code)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, apierror.New("Unknown access code"))
		return
	}
	c.JSON(http.StatusOK, result)
}
