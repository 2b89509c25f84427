package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/app/services"
	"github.com/dquispe/sufragio/internal/middleware"
)

// PartidoController handles political party operations
type PartidoController struct {
	partidoService services.PartidoService
}

// NewPartidoController creates a new PartidoController
func NewPartidoController(partidoService services.PartidoService) *PartidoController {
	return &PartidoController{
		partidoService: partidoService,
	}
}

// GetAllPartidos handles GET /api/partidos.
func (c *PartidoController) GetAllPartidos(ctx *gin.Context) {
	partidos, err := c.partidoService.ListPartidos(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, partidos)
}
