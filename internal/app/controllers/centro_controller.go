package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/app/repositories"
	"github.com/dquispe/sufragio/internal/app/services"
	"github.com/dquispe/sufragio/internal/middleware"
)

// CentroController handles voting center operations
type CentroController struct {
	centroService services.CentroService
}

// NewCentroController creates a new CentroController
func NewCentroController(centroService services.CentroService) *CentroController {
	return &CentroController{
		centroService: centroService,
	}
}

// GetAllCentros handles GET /api/centros with optional distrito, nombre and
// dni query filters.
func (c *CentroController) GetAllCentros(ctx *gin.Context) {
	filter := repositories.CentroFilter{
		Distrito:       ctx.Query("distrito"),
		Nombre:         ctx.Query("nombre"),
		DNIResponsable: ctx.Query("dni"),
	}

	centros, err := c.centroService.ListCentros(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, centros)
}

// GetMesasByCentro handles GET /api/mesas/:centroId. An unknown center
// returns an empty list.
func (c *CentroController) GetMesasByCentro(ctx *gin.Context) {
	centroID := ctx.Param("centroId")

	mesas, err := c.centroService.ListMesas(ctx, centroID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mesas)
}
