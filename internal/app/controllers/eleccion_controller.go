package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/app/services"
	"github.com/dquispe/sufragio/internal/middleware"
)

// EleccionController handles election operations
type EleccionController struct {
	eleccionService services.EleccionService
}

// NewEleccionController creates a new EleccionController
func NewEleccionController(eleccionService services.EleccionService) *EleccionController {
	return &EleccionController{
		eleccionService: eleccionService,
	}
}

// GetAllElecciones handles GET /api/elecciones.
func (c *EleccionController) GetAllElecciones(ctx *gin.Context) {
	elecciones, err := c.eleccionService.ListElecciones(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, elecciones)
}
