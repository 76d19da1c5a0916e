package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wellify-Group/wellify-business-sub000/internal/middleware"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

type SyncHandler struct{ svc service.SyncService }

func NewSyncHandler(svc service.SyncService) *SyncHandler { return &SyncHandler{svc: svc} }

// Get godoc
// @Summary Aggregate bootstrap payload for the authenticated user
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncResponse
// @Router /v1/sync [get]
func (h *SyncHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.GetUserData(c.Request.Context(), claims.UserID, claims.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
